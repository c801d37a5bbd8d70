// Bin2header - binary file to C++ header converter
// parser.go - Parsing of generated headers back into their bytes
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var declRe = regexp.MustCompile(`^inline constexpr std::array<unsigned char, (\d+)> (\S+) = \{$`)

// Header is a parsed generated header
type Header struct {
	Name  string
	Guard string
	Size  int // declared array length
	Rows  int
	Data  []byte
}

// ParseHeaderFile parses the generated header at filename
func ParseHeaderFile(filename string) (*Header, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseHeader(file)
}

type lineReader struct {
	scanner *bufio.Scanner
	num     int
	err     error
}

// raw returns the next line as is
func (lr *lineReader) raw() (string, bool) {
	if lr.scanner.Scan() {
		lr.num++
		return lr.scanner.Text(), true
	}
	lr.err = lr.scanner.Err()
	return "", false
}

// next returns the next non-blank line
func (lr *lineReader) next() (string, bool) {
	for {
		line, ok := lr.raw()
		if !ok || strings.TrimSpace(line) != "" {
			return line, ok
		}
	}
}

// errorf reports a read failure in preference to the layout error it caused
func (lr *lineReader) errorf(format string, a ...interface{}) error {
	if lr.err != nil {
		return errors.Wrapf(lr.err, "line %d: failed to read header", lr.num+1)
	}
	return errors.Errorf("line %d: "+format, append([]interface{}{lr.num}, a...)...)
}

// ParseHeader parses a header in the layout written by FormatHeader.
// The guard lines must agree with each other and with the array name.
// Byte rows are checked exactly: no blank lines between them, every entry
// a lowercase "0xhh, ", 12 entries per row and only the last row shorter.
// The number of decoded literals must equal the declared length.
func ParseHeader(r io.Reader) (*Header, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lr := &lineReader{scanner: scanner}

	h := &Header{}

	line, ok := lr.next()
	if !ok || !strings.HasPrefix(line, "#ifndef ") {
		return nil, lr.errorf("expected #ifndef")
	}
	h.Guard = strings.TrimPrefix(line, "#ifndef ")

	line, ok = lr.next()
	if !ok || line != "#define "+h.Guard {
		return nil, lr.errorf("expected #define %s", h.Guard)
	}

	line, ok = lr.next()
	if !ok || line != "#include <array>" {
		return nil, lr.errorf("expected #include <array>")
	}

	line, ok = lr.next()
	m := declRe.FindStringSubmatch(line)
	if !ok || m == nil {
		return nil, lr.errorf("expected std::array declaration")
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: bad array length", lr.num)
	}
	h.Size = size
	h.Name = m[2]
	if GuardName(h.Name) != h.Guard {
		return nil, errors.Errorf("guard %s does not match array name %s", h.Guard, h.Name)
	}

	h.Data = make([]byte, 0, size)
	short := false
	for {
		line, ok = lr.raw()
		if !ok {
			return nil, lr.errorf("unexpected end of header, missing };")
		}
		if line == "};" {
			break
		}
		if !strings.HasPrefix(line, RowIndent) {
			return nil, lr.errorf("byte row must start with %d spaces", len(RowIndent))
		}
		if short {
			return nil, lr.errorf("only the last byte row may hold fewer than %d entries", BytesPerRow)
		}

		row, err := decodeRow(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lr.num)
		}
		if len(row) > BytesPerRow {
			return nil, lr.errorf("%d entries in row, maximum is %d", len(row), BytesPerRow)
		}
		short = len(row) < BytesPerRow
		h.Data = append(h.Data, row...)
		h.Rows++
	}

	line, ok = lr.next()
	if !ok || line != "#endif // "+h.Guard {
		return nil, lr.errorf("expected #endif // %s", h.Guard)
	}

	if len(h.Data) != h.Size {
		return nil, errors.Errorf("array declares %d bytes but holds %d", h.Size, len(h.Data))
	}

	return h, nil
}

// entryLen is the width of one "0xhh, " entry
const entryLen = 6

// decodeRow decodes one "    0xhh, 0xhh, " row
func decodeRow(line string) ([]byte, error) {
	body := strings.TrimPrefix(line, RowIndent)
	if body == "" || len(body)%entryLen != 0 {
		return nil, errors.Errorf("byte row %q is not a run of \"0xhh, \" entries", body)
	}

	row := make([]byte, 0, len(body)/entryLen)
	for i := 0; i < len(body); i += entryLen {
		entry := body[i : i+entryLen]
		hi := strings.IndexByte(hexDigits, entry[2])
		lo := strings.IndexByte(hexDigits, entry[3])
		if entry[:2] != "0x" || hi < 0 || lo < 0 || entry[4:] != ", " {
			return nil, errors.Errorf("malformed byte literal %q", entry)
		}
		row = append(row, byte(hi<<4|lo))
	}

	return row, nil
}
