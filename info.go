// Bin2header - binary file to C++ header converter
// info.go - Summary dump of a parsed header
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"encoding/hex"
	"fmt"
	"io"
)

// DumpInfo prints the header structure to w
func (h *Header) DumpInfo(w io.Writer) {
	dataPreview := ""
	if len(h.Data) > 16 {
		dataPreview = hex.EncodeToString(h.Data[:16]) + "..."
	} else {
		dataPreview = hex.EncodeToString(h.Data)
	}

	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Name  : %s\n", h.Name)
	fmt.Fprintf(w, "Guard : %s\n", h.Guard)
	fmt.Fprintf(w, "Size  : %d bytes\n", h.Size)
	fmt.Fprintf(w, "Rows  : %d\n", h.Rows)
	fmt.Fprintf(w, "Data  : %s\n", dataPreview)
	fmt.Fprintln(w, "--------------------------------------------------")
}
