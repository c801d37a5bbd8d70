// Bin2header - binary file to C++ header converter
// fileio.go - Input existence check, whole-file read and truncating write
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// checkInput fails with KindNotFound when path does not exist
func checkInput(path string) error {
	if path == "" {
		return &ConvertError{Kind: KindNotFound, Path: path}
	}

	info, err := os.Stat(path)
	if err != nil {
		// a regular file used as a parent directory also means the path does not exist
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return &ConvertError{Kind: KindNotFound, Path: path, Err: err}
		}
		return &ConvertError{Kind: KindIOFailure, Path: path, Err: errors.Wrap(err, "failed to stat input file")}
	}
	if info.IsDir() {
		return &ConvertError{Kind: KindIOFailure, Path: path, Err: errors.Errorf("input %s is a directory", path)}
	}

	return nil
}

// readInput reads the whole input file into memory
func readInput(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ConvertError{Kind: KindIOFailure, Path: path, Err: errors.Wrap(err, "failed to open input file")}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &ConvertError{Kind: KindIOFailure, Path: path, Err: errors.Wrap(err, "failed to read input file")}
	}

	return data, nil
}

// writeOutput truncates or creates path and writes data to it. Parent
// directories are not created.
func writeOutput(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &ConvertError{Kind: KindIOFailure, Path: path, Err: errors.Wrap(err, "failed to open output file")}
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return &ConvertError{Kind: KindIOFailure, Path: path, Err: errors.Wrap(err, "failed to write output file")}
	}
	if err := file.Close(); err != nil {
		return &ConvertError{Kind: KindIOFailure, Path: path, Err: errors.Wrap(err, "failed to close output file")}
	}

	return nil
}
