package main

import (
	"github.com/spf13/cobra"

	"github.com/fluxbase/fluxbase/internal/errs"
	"github.com/fluxbase/fluxbase/internal/fluxcodec"
	"github.com/fluxbase/fluxbase/internal/presets"
)

// resolveCharset turns the --charset / --charset-preset / --pow2 flags
// into a built Charset. An explicit --charset always wins over the
// preset's alphabet; --pow2 wins over the preset's pow2-ness only if
// the caller actually passed it.
func resolveCharset(cmd *cobra.Command, f *commonFlags) (*fluxcodec.Charset, error) {
	if f.charset != "" {
		return fluxcodec.BuildCharset([]byte(f.charset), f.pow2)
	}

	preset, err := presets.Find(f.charsetPreset)
	if err != nil {
		return nil, err
	}
	pow2 := preset.Pow2
	if cmd.Flags().Changed("pow2") {
		pow2 = f.pow2
	}
	return fluxcodec.BuildCharset([]byte(preset.Charset), pow2)
}

// validateDecodeCharsetSource enforces spec.md's rule that decode needs
// an explicit charset only when --no-header is set. --charset-preset
// has a config-driven default value, so satisfying the requirement via
// a preset requires the caller to have actually passed one of the two
// flags, not merely benefited from its default.
func validateDecodeCharsetSource(cmd *cobra.Command, f *commonFlags) error {
	if f.noHeader {
		explicit := cmd.Flags().Changed("charset") || cmd.Flags().Changed("charset-preset")
		if !explicit {
			return errs.Config("--charset or --charset-preset is required for decode when --no-header is set")
		}
		if f.blockSize <= 0 {
			return errs.Config("--block must be positive when --no-header is set")
		}
	}
	return nil
}
