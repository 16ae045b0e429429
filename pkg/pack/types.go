// File: pkg/pack/types.go
package pack

import "errors"

// Arguments holds the configuration options for the packing process.
type Arguments struct {
	Entry  string // Path to the entry .tex file.
	Output string // Output file name; empty selects "merged_<entry name>".
	Tree   string // Optional destination path for the inclusion tree listing.
}

// ErrOverwriteDeclined indicates the user refused to overwrite an existing
// output file. The command layer maps it to a distinct exit code.
var ErrOverwriteDeclined = errors.New("overwrite declined by user")

const (
	// texExt is appended to every directive stem when resolving its target.
	texExt = ".tex"

	// markerTag closes every provenance marker line.
	markerTag = "texpack"
)
