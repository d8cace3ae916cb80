package main

import (
	"github.com/spf13/cobra"

	"github.com/fluxbase/fluxbase/internal/config"
	"github.com/fluxbase/fluxbase/internal/fluxcodec"
)

func newDecodeCmd(defaults config.Defaults) *cobra.Command {
	f := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a stream of alphabet symbols back into a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, f)
		},
	}
	addCommonFlags(cmd, f, defaults.BlockSize, defaults.CharsetPreset, defaults.Progress, defaults.MaxRate)
	return cmd
}

func runDecode(cmd *cobra.Command, f *commonFlags) error {
	header := !f.noHeader
	if err := validateDecodeCharsetSource(cmd, f); err != nil {
		return err
	}

	var opts fluxcodec.Options
	opts.Header = header
	opts.MaxRateBytesPerSec = f.maxRate
	opts.BlockSize = f.blockSize

	if f.noHeader {
		charset, err := resolveCharset(cmd, f)
		if err != nil {
			return err
		}
		opts.Charset = charset
	}

	in, size, err := openInput(f.input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(f.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if f.progress {
		ch := make(chan fluxcodec.Progress)
		opts.Progress = ch
		return runWithProgress("decoding", ch, func() error {
			return fluxcodec.Decode(in, out, opts, size)
		})
	}
	return fluxcodec.Decode(in, out, opts, size)
}
