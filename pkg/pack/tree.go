package pack

import "strings"

// InclusionTree renders the files expanded so far as an indented listing, one
// root-relative path per line, two spaces per nesting level. The order is the
// order the files were reached in, which equals document order.
func (x *Expander) InclusionTree() string {
	var tree strings.Builder
	for _, e := range x.visited {
		tree.WriteString(strings.Repeat("  ", e.depth))
		tree.WriteString(e.relPath)
		tree.WriteString("\n")
	}
	return tree.String()
}
