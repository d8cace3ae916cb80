package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsCarryDistinctCodes(t *testing.T) {
	assert.Equal(t, CodeConfig, Code(Config("bad arg")))
	assert.Equal(t, CodeIO, Code(IO("cannot open")))
	assert.Equal(t, CodeFormat, Code(Format("bad magic")))
}

func TestWrapPreservesCode(t *testing.T) {
	base := errors.New("boom")
	assert.Equal(t, CodeIO, Code(WrapIO(base, "reading input")))
	assert.Equal(t, CodeFormat, Code(WrapFormat(base, "parsing header")))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, "", Code(errors.New("plain")))
	assert.Equal(t, "", Code(nil))
}
