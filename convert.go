// Bin2header - binary file to C++ header converter
// convert.go - Conversion of a binary file into a guarded array header
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bytes"
	"regexp"

	"github.com/pkg/errors"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName rejects names that cannot be used as both a C++ identifier
// and a macro token
func ValidateName(name string) error {
	if name == "" {
		return &ConvertError{Kind: KindInvalidName, Path: name, Err: errors.New("name is empty")}
	}
	if !identifierRe.MatchString(name) {
		return &ConvertError{Kind: KindInvalidName, Path: name, Err: errors.New("must match [A-Za-z_][A-Za-z0-9_]*")}
	}
	return nil
}

// Convert reads req.InputPath and writes a header declaring its bytes to
// req.OutputPath. The input existence check always comes first; nothing is
// written unless the name is valid and the whole input has been read.
func Convert(req Request) (Result, error) {
	if err := checkInput(req.InputPath); err != nil {
		return Result{}, err
	}
	if err := ValidateName(req.Name); err != nil {
		return Result{}, err
	}

	data, err := readInput(req.InputPath)
	if err != nil {
		return Result{}, err
	}

	if err := writeOutput(req.OutputPath, FormatHeader(req.Name, data)); err != nil {
		return Result{}, err
	}

	return Result{
		Size:  len(data),
		Rows:  RowCount(len(data)),
		Guard: GuardName(req.Name),
	}, nil
}

// Verify parses the header at req.OutputPath and checks that it declares
// req.Name and holds exactly the bytes of req.InputPath
func Verify(req Request) (*Header, error) {
	want, err := readInput(req.InputPath)
	if err != nil {
		return nil, err
	}

	header, err := ParseHeaderFile(req.OutputPath)
	if err != nil {
		return nil, &ConvertError{Kind: KindIOFailure, Path: req.OutputPath, Err: errors.Wrap(err, "failed to parse generated header")}
	}

	if header.Name != req.Name {
		return header, &ConvertError{Kind: KindIOFailure, Path: req.OutputPath,
			Err: errors.Errorf("%s declares %q, expected %q", req.OutputPath, header.Name, req.Name)}
	}
	if !bytes.Equal(header.Data, want) {
		return header, &ConvertError{Kind: KindIOFailure, Path: req.OutputPath,
			Err: errors.Errorf("%s does not match %s (%d bytes vs %d)", req.OutputPath, req.InputPath, len(header.Data), len(want))}
	}

	return header, nil
}
