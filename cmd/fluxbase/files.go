package main

import (
	"os"

	"github.com/fluxbase/fluxbase/internal/errs"
)

// openInput opens path for reading and reports its size (0 if unknown,
// e.g. a pipe), for progress reporting.
func openInput(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errs.WrapIO(err, "cannot open input file: %s", path)
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return f, 0, nil
	}
	return f, info.Size(), nil
}

func createOutput(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.WrapIO(err, "cannot open output file: %s", path)
	}
	return f, nil
}
