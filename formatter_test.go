// Bin2header - binary file to C++ header converter
// formatter_test.go - Unit tests for row and header rendering
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestFormatRows(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "empty",
			data:     nil,
			expected: "",
		},
		{
			name:     "partial row",
			data:     []byte{0x00, 0xFF, 0x10},
			expected: "    0x00, 0xff, 0x10, \n",
		},
		{
			name:     "exactly one row",
			data:     sequence(12),
			expected: "    0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, \n",
		},
		{
			name: "one row and one byte",
			data: sequence(13),
			expected: "    0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, \n" +
				"    0x0c, \n",
		},
		{
			name:     "two full rows",
			data:     bytes.Repeat([]byte{0xAB}, 24),
			expected: strings.Repeat("    "+strings.Repeat("0xab, ", 12)+"\n", 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRows(tt.data))
		})
	}
}

func TestFormatHeaderEmpty(t *testing.T) {
	expected := "#ifndef EMPTY_DATA_H\n" +
		"#define EMPTY_DATA_H\n" +
		"\n" +
		"#include <array>\n" +
		"\n" +
		"inline constexpr std::array<unsigned char, 0> empty_data = {\n" +
		"};\n" +
		"\n" +
		"#endif // EMPTY_DATA_H\n"

	assert.Equal(t, expected, string(FormatHeader("empty_data", nil)))
}

func TestFormatHeaderTiny(t *testing.T) {
	expected := "#ifndef TINY_H\n" +
		"#define TINY_H\n" +
		"\n" +
		"#include <array>\n" +
		"\n" +
		"inline constexpr std::array<unsigned char, 3> tiny = {\n" +
		"    0x00, 0xff, 0x10, \n" +
		"};\n" +
		"\n" +
		"#endif // TINY_H\n"

	assert.Equal(t, expected, string(FormatHeader("tiny", []byte{0x00, 0xFF, 0x10})))
}

func TestFormatHeaderNoBlankLineAfterFullRow(t *testing.T) {
	out := string(FormatHeader("full", sequence(12)))
	assert.Contains(t, out, "0x0b, \n};\n")
	assert.NotContains(t, out, "0x0b, \n\n};")
}

func TestGuardName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"tiny", "TINY_H"},
		{"empty_data", "EMPTY_DATA_H"},
		{"Font8x8", "FONT8X8_H"},
		{"_private", "_PRIVATE_H"},
		{"ALREADY_UPPER", "ALREADY_UPPER_H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GuardName(tt.name))
		})
	}
}

func TestRowCount(t *testing.T) {
	for n, expected := range map[int]int{0: 0, 1: 1, 11: 1, 12: 1, 13: 2, 24: 2, 25: 3} {
		assert.Equal(t, expected, RowCount(n), "n=%d", n)
	}
}

func TestFormatHeaderDeclaresLength(t *testing.T) {
	property := func(data []byte) bool {
		decl := fmt.Sprintf("std::array<unsigned char, %d> blob = {\n", len(data))
		return strings.Contains(string(FormatHeader("blob", data)), decl)
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestFormatRowsShape(t *testing.T) {
	property := func(data []byte) bool {
		out := FormatRows(data)
		if len(data) == 0 {
			return out == ""
		}
		rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if len(rows) != RowCount(len(data)) {
			return false
		}
		for i, row := range rows {
			if !strings.HasPrefix(row, RowIndent) || !strings.HasSuffix(row, ", ") {
				return false
			}
			entries := strings.Count(row, "0x")
			if i < len(rows)-1 && entries != BytesPerRow {
				return false
			}
			if i == len(rows)-1 && (entries < 1 || entries > BytesPerRow) {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestFormatHeaderRoundTrip(t *testing.T) {
	property := func(data []byte) bool {
		h, err := ParseHeader(bytes.NewReader(FormatHeader("blob", data)))
		if err != nil {
			return false
		}
		return h.Size == len(data) && bytes.Equal(h.Data, data)
	}
	require.NoError(t, quick.Check(property, nil))
}
