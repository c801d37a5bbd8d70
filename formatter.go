// Bin2header - binary file to C++ header converter
// formatter.go - Pure rendering of byte rows and header documents
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bytes"
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// GuardName returns the include guard token for an array name
func GuardName(name string) string {
	return strings.ToUpper(name) + GuardSuffix
}

// RowCount returns the number of byte rows emitted for n bytes
func RowCount(n int) int {
	return (n + BytesPerRow - 1) / BytesPerRow
}

// AppendRows appends the formatted byte rows for data to dst.
// Every entry is followed by ", ", a row ends after its 12th entry and a
// final partial row still gets its newline.
func AppendRows(dst []byte, data []byte) []byte {
	for i, b := range data {
		if i%BytesPerRow == 0 {
			dst = append(dst, RowIndent...)
		}
		dst = append(dst, '0', 'x', hexDigits[b>>4], hexDigits[b&0x0f], ',', ' ')
		if (i+1)%BytesPerRow == 0 {
			dst = append(dst, '\n')
		}
	}
	if len(data)%BytesPerRow != 0 {
		dst = append(dst, '\n')
	}
	return dst
}

// FormatRows renders only the byte rows of a header
func FormatRows(data []byte) string {
	return string(AppendRows(nil, data))
}

// FormatHeader renders the complete guarded header declaring name as a
// std::array holding data
func FormatHeader(name string, data []byte) []byte {
	guard := GuardName(name)

	var buf bytes.Buffer
	// 6 bytes per entry plus indent and newline per row, plus the fixed lines
	buf.Grow(len(data)*6 + RowCount(len(data))*(len(RowIndent)+1) + 3*len(guard) + len(name) + 128)

	fmt.Fprintf(&buf, "#ifndef %s\n", guard)
	fmt.Fprintf(&buf, "#define %s\n\n", guard)
	buf.WriteString("#include <array>\n\n")
	fmt.Fprintf(&buf, "inline constexpr std::array<unsigned char, %d> %s = {\n", len(data), name)
	buf.Write(AppendRows(nil, data))
	buf.WriteString("};\n\n")
	fmt.Fprintf(&buf, "#endif // %s\n", guard)

	return buf.Bytes()
}
