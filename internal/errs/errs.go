// Package errs classifies every error fluxbase raises into one of three
// kinds, mirroring the taxonomy of the original codec: ConfigError,
// IOError, and FormatError. Each kind is carried on the error as a
// samber/oops code so callers can branch on it without matching strings.
package errs

import "github.com/samber/oops"

const (
	// CodeConfig marks invalid arguments or a malformed charset.
	CodeConfig = "config_error"
	// CodeIO marks a failure to open or read/write a file.
	CodeIO = "io_error"
	// CodeFormat marks bad header framing, a partial block, or an
	// unknown symbol encountered while decoding.
	CodeFormat = "format_error"
)

// Config builds a ConfigError.
func Config(format string, args ...interface{}) error {
	return oops.Code(CodeConfig).Errorf(format, args...)
}

// IO builds an IOError.
func IO(format string, args ...interface{}) error {
	return oops.Code(CodeIO).Errorf(format, args...)
}

// Format builds a FormatError.
func Format(format string, args ...interface{}) error {
	return oops.Code(CodeFormat).Errorf(format, args...)
}

// WrapIO wraps an existing error (typically from the os/io packages) as
// an IOError, preserving the original error in the chain.
func WrapIO(err error, format string, args ...interface{}) error {
	return oops.Code(CodeIO).Wrapf(err, format, args...)
}

// WrapFormat wraps an existing error as a FormatError.
func WrapFormat(err error, format string, args ...interface{}) error {
	return oops.Code(CodeFormat).Wrapf(err, format, args...)
}

// Code returns the oops code attached to err, or "" if err was not
// built by this package (or is nil).
func Code(err error) string {
	if err == nil {
		return ""
	}
	if oerr, ok := oops.AsOops(err); ok {
		return oerr.Code()
	}
	return ""
}
