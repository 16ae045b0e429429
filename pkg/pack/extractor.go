package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// BodyExtractor recognizes one inclusion directive form and produces the
// included content together with its resolved target path.
//
// Matches is a pure test against the start of the line. Extract must only be
// called after Matches returned true for the same line and may assume the
// directive pattern is present.
type BodyExtractor interface {
	Matches(line string) bool
	Extract(parentDir, root, line string) (body []string, target string, err error)
}

// InputExtractor handles \input{stem} directives. The target resolves against
// the project root and the whole target file becomes the body.
type InputExtractor struct {
	pat *regexp.Regexp
}

// NewInputExtractor returns an extractor for \input directives.
func NewInputExtractor() *InputExtractor {
	return &InputExtractor{pat: regexp.MustCompile(`^\\input\{(.*)\}`)}
}

// Matches reports whether line starts with an \input directive.
func (e *InputExtractor) Matches(line string) bool {
	return e.pat.MatchString(line)
}

// Extract reads the whole target file and returns its lines verbatim.
func (e *InputExtractor) Extract(parentDir, root, line string) ([]string, string, error) {
	stem := e.pat.FindStringSubmatch(line)[1]
	// \input resolves against the entry file's directory, no matter how
	// deeply nested the including file is.
	target := filepath.Join(root, stem+texExt)
	text, err := readText(target)
	if err != nil {
		return nil, "", err
	}
	return strings.Split(text, "\n"), target, nil
}

const (
	docBegin = `\begin{document}`
	docEnd   = `\end{document}`
)

// SubfileExtractor handles \subfile{stem} directives. The target resolves
// against the including file's own directory, and only the lines strictly
// between the \begin{document} and \end{document} markers form the body.
type SubfileExtractor struct {
	pat *regexp.Regexp
}

// NewSubfileExtractor returns an extractor for \subfile directives.
func NewSubfileExtractor() *SubfileExtractor {
	return &SubfileExtractor{pat: regexp.MustCompile(`^\\subfile\{(.*)\}`)}
}

// Matches reports whether line starts with a \subfile directive.
func (e *SubfileExtractor) Matches(line string) bool {
	return e.pat.MatchString(line)
}

// Extract reads the target file and collects its document body. Both marker
// lines are excluded. A file without a begin marker yields an empty body; a
// begin marker without an end marker includes all remaining lines.
func (e *SubfileExtractor) Extract(parentDir, root, line string) ([]string, string, error) {
	stem := e.pat.FindStringSubmatch(line)[1]
	target := filepath.Join(parentDir, stem+texExt)
	text, err := readText(target)
	if err != nil {
		return nil, "", err
	}

	var body []string
	inBody := false
	for _, l := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(l, docBegin):
			inBody = true
		case strings.HasSuffix(l, docEnd):
			inBody = false
		case inBody:
			body = append(body, l)
		}
	}
	return body, target, nil
}

// readText reads a UTF-8 text file into a single string.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
