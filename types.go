// Bin2header - binary file to C++ header converter
// types.go - Type definitions for conversion requests, results and errors
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// Constants
const (
	BytesPerRow = 12     // hex literals per byte row
	RowIndent   = "    " // leading spaces of every byte row
	GuardSuffix = "_H"   // appended to the uppercased array name
)

// Request is a single conversion: read InputPath, write OutputPath,
// name the generated array Name.
type Request struct {
	InputPath  string
	OutputPath string
	Name       string
}

// Result describes a header that was written successfully
type Result struct {
	Size  int    // bytes read from the input, equal to the declared array length
	Rows  int    // byte rows emitted
	Guard string // include guard token
}

// ErrorKind classifies conversion failures
type ErrorKind int

const (
	// KindNone means no error
	KindNone ErrorKind = iota
	// KindNotFound means the input path did not exist at check time
	KindNotFound
	// KindIOFailure covers any open/read/write/close failure after the existence check
	KindIOFailure
	// KindInvalidName means the array name is not usable as an identifier
	KindInvalidName
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not found"
	case KindIOFailure:
		return "i/o failure"
	case KindInvalidName:
		return "invalid name"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels matched by errors.Is against a *ConvertError
var (
	ErrNotFound    = errors.New("input not found")
	ErrIO          = errors.New("i/o failure")
	ErrInvalidName = errors.New("invalid array name")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindIOFailure:
		return ErrIO
	case KindInvalidName:
		return ErrInvalidName
	}
	return nil
}

// ConvertError is returned by Convert and Verify for every failure
type ConvertError struct {
	Kind ErrorKind
	Path string // the input or output path involved, or the rejected name
	Err  error  // underlying cause, may be nil
}

func (e *ConvertError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found.", e.Path)
	case KindInvalidName:
		if e.Err != nil {
			return fmt.Sprintf("invalid array name %q: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("invalid array name %q", e.Path)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

// Unwrap exposes the underlying cause, e.g. fs.ErrPermission
func (e *ConvertError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *ConvertError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf classifies err. Errors that did not come from this package count as I/O failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var ce *ConvertError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindIOFailure
}

// Process exit codes
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitNotFound    = 2
	ExitIOFailure   = 3
	ExitInvalidName = 4
)

// ExitCode maps err to the process exit code
func ExitCode(err error) int {
	switch KindOf(err) {
	case KindNone:
		return ExitOK
	case KindNotFound:
		return ExitNotFound
	case KindInvalidName:
		return ExitInvalidName
	default:
		return ExitIOFailure
	}
}
