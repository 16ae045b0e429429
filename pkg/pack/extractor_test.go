package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInputExtractorMatches(t *testing.T) {
	e := NewInputExtractor()

	assert.True(t, e.Matches(`\input{chapter}`))
	assert.True(t, e.Matches(`\input{sections/intro}`))
	assert.False(t, e.Matches(`  \input{chapter}`), "directive must start the line")
	assert.False(t, e.Matches(`see \input{chapter}`), "substring occurrence is not a match")
	assert.False(t, e.Matches(`\inputs{chapter}`))
	assert.False(t, e.Matches(`\input{chapter`), "unclosed braces")
	assert.False(t, e.Matches(`\subfile{chapter}`))
}

func TestSubfileExtractorMatches(t *testing.T) {
	e := NewSubfileExtractor()

	assert.True(t, e.Matches(`\subfile{chapter}`))
	assert.False(t, e.Matches(` \subfile{chapter}`))
	assert.False(t, e.Matches(`\input{chapter}`))
}

func TestInputExtractorResolvesAgainstRoot(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeFixture(t, root, "b.tex", "B one\nB two")

	e := NewInputExtractor()
	// parentDir deliberately points elsewhere; \input must ignore it.
	body, target, err := e.Extract(other, root, `\input{b}`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "b.tex"), target)
	assert.Equal(t, []string{"B one", "B two"}, body)
}

func TestInputExtractorWholeFileVerbatim(t *testing.T) {
	root := t.TempDir()
	content := "\\documentclass{article}\n\\begin{document}\nbody\n\\end{document}\n"
	writeFixture(t, root, "b.tex", content)

	e := NewInputExtractor()
	body, _, err := e.Extract(root, root, `\input{b}`)
	require.NoError(t, err)
	// No body filtering, and the trailing newline survives as a final empty line.
	assert.Equal(t, []string{`\documentclass{article}`, `\begin{document}`, "body", `\end{document}`, ""}, body)
}

func TestInputExtractorMissingTarget(t *testing.T) {
	root := t.TempDir()

	e := NewInputExtractor()
	body, _, err := e.Extract(root, root, `\input{missing}`)
	require.Error(t, err)
	assert.Nil(t, body)
	assert.Contains(t, err.Error(), "missing.tex")
}

func TestSubfileExtractorResolvesAgainstParentDir(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sections")
	writeFixture(t, sub, "c.tex", "\\begin{document}\nhello\n\\end{document}")

	e := NewSubfileExtractor()
	body, target, err := e.Extract(sub, root, `\subfile{c}`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sub, "c.tex"), target)
	assert.Equal(t, []string{"hello"}, body)
}

func TestSubfileExtractorBodyEdgesExcluded(t *testing.T) {
	root := t.TempDir()
	content := "\\documentclass[main.tex]{subfiles}\n" +
		"\\begin{document}\n" +
		"alpha\n" +
		"beta\n" +
		"\\end{document}\n" +
		"trailing junk"
	writeFixture(t, root, "c.tex", content)

	e := NewSubfileExtractor()
	body, _, err := e.Extract(root, root, `\subfile{c}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, body)
}

func TestSubfileExtractorMarkerEdgeTests(t *testing.T) {
	root := t.TempDir()
	// Begin is tested by prefix, end by suffix.
	content := "\\begin{document}% note\n" +
		"inside\n" +
		"  \\end{document}"
	writeFixture(t, root, "c.tex", content)

	e := NewSubfileExtractor()
	body, _, err := e.Extract(root, root, `\subfile{c}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"inside"}, body)
}

func TestSubfileExtractorNoBeginMarker(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "c.tex", "just\nsome\nlines")

	e := NewSubfileExtractor()
	body, _, err := e.Extract(root, root, `\subfile{c}`)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestSubfileExtractorUnterminatedBody(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "c.tex", "preamble\n\\begin{document}\nrest one\nrest two")

	e := NewSubfileExtractor()
	body, _, err := e.Extract(root, root, `\subfile{c}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"rest one", "rest two"}, body)
}

func TestSubfileExtractorMissingTarget(t *testing.T) {
	root := t.TempDir()

	e := NewSubfileExtractor()
	_, _, err := e.Extract(root, root, `\subfile{missing}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.tex")
}
