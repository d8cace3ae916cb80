package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCmdWithFlags(f *commonFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addCommonFlags(cmd, f, 8, "base64", false, 0)
	return cmd
}

func TestResolveCharsetExplicitOverridesPreset(t *testing.T) {
	f := &commonFlags{}
	cmd := testCmdWithFlags(f)
	require.NoError(t, cmd.Flags().Set("charset", "0123456789abcdef"))
	require.NoError(t, cmd.Flags().Set("pow2", "true"))

	charset, err := resolveCharset(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef"), charset.Symbols())
	assert.True(t, charset.Pow2())
}

func TestResolveCharsetFallsBackToPreset(t *testing.T) {
	f := &commonFlags{}
	cmd := testCmdWithFlags(f)
	require.NoError(t, cmd.Flags().Set("charset-preset", "base58"))

	charset, err := resolveCharset(cmd, f)
	require.NoError(t, err)
	assert.False(t, charset.Pow2())
	assert.Equal(t, 58, charset.EffectiveRadix())
}

func TestValidateDecodeCharsetSourceRequiresExplicitFlag(t *testing.T) {
	f := &commonFlags{}
	cmd := testCmdWithFlags(f)
	// Set after registering the flags, which reset fields to their defaults.
	f.noHeader, f.blockSize = true, 4
	// Neither --charset nor --charset-preset was actually passed, even
	// though f.charsetPreset carries its default value.
	err := validateDecodeCharsetSource(cmd, f)
	require.Error(t, err)
}

func TestValidateDecodeCharsetSourceAcceptsExplicitPreset(t *testing.T) {
	f := &commonFlags{}
	cmd := testCmdWithFlags(f)
	f.noHeader, f.blockSize = true, 4
	require.NoError(t, cmd.Flags().Set("charset-preset", "hex"))
	assert.NoError(t, validateDecodeCharsetSource(cmd, f))
}

func TestValidateDecodeCharsetSourceSkippedWithHeader(t *testing.T) {
	f := &commonFlags{noHeader: false}
	cmd := testCmdWithFlags(f)
	assert.NoError(t, validateDecodeCharsetSource(cmd, f))
}
