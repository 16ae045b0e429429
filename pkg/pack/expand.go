package pack

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Expander performs the depth-first expansion of inclusion directives. The
// project root is fixed at construction and never changes afterwards; the
// current directory and nesting depth travel as call parameters.
type Expander struct {
	root       string
	extractors []BodyExtractor
	logger     *zap.Logger

	visited []treeEntry // every expanded file, in expansion order
}

type treeEntry struct {
	relPath string
	depth   int
}

// NewExpander creates an Expander anchored at the given project root.
// \input takes priority over \subfile; their literal prefixes are mutually
// exclusive per line, so the order only fixes determinism.
func NewExpander(root string, logger *zap.Logger) *Expander {
	return &Expander{
		root:       root,
		extractors: []BodyExtractor{NewInputExtractor(), NewSubfileExtractor()},
		logger:     logger,
	}
}

// extractAny runs the first extractor whose directive matches line. The third
// return value reports whether any extractor matched at all.
func (x *Expander) extractAny(parentDir, line string) ([]string, string, bool, error) {
	for _, e := range x.extractors {
		if e.Matches(line) {
			body, target, err := e.Extract(parentDir, x.root, line)
			if err != nil {
				return nil, "", true, err
			}
			return body, target, true, nil
		}
	}
	return nil, "", false, nil
}

// Expand walks lines in order, replacing each directive line with its
// recursively expanded body bracketed by a pair of provenance markers.
// Non-directive lines pass through unchanged. A missing target aborts the
// whole expansion.
func (x *Expander) Expand(parentDir string, lines []string, depth int) ([]string, error) {
	expanded := make([]string, 0, len(lines))

	for _, line := range lines {
		body, target, matched, err := x.extractAny(parentDir, line)
		if err != nil {
			return nil, err
		}
		if !matched {
			expanded = append(expanded, line)
			continue
		}

		rel, err := filepath.Rel(x.root, target)
		if err != nil {
			return nil, fmt.Errorf("failed to express %s relative to project root: %w", target, err)
		}

		x.logger.Debug("Expanding inclusion",
			zap.String("target", rel),
			zap.Int("depth", depth))
		x.visited = append(x.visited, treeEntry{relPath: rel, depth: depth})

		arrows := strings.Repeat(">", depth+1)
		expanded = append(expanded, fmt.Sprintf("%% %s %s %s : %s", arrows, rel, arrows, markerTag))

		bodyExpanded, err := x.Expand(filepath.Dir(target), body, depth+1)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, bodyExpanded...)

		backArrows := strings.Repeat("<", depth+1)
		expanded = append(expanded, fmt.Sprintf("%% %s %s %s : %s", backArrows, rel, backArrows, markerTag))
	}
	return expanded, nil
}
