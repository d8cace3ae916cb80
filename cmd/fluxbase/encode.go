package main

import (
	"github.com/spf13/cobra"

	"github.com/fluxbase/fluxbase/internal/config"
	"github.com/fluxbase/fluxbase/internal/errs"
	"github.com/fluxbase/fluxbase/internal/fluxcodec"
)

func newEncodeCmd(defaults config.Defaults) *cobra.Command {
	f := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a file into a stream of alphabet symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, f)
		},
	}
	addCommonFlags(cmd, f, defaults.BlockSize, defaults.CharsetPreset, defaults.Progress, defaults.MaxRate)
	return cmd
}

func runEncode(cmd *cobra.Command, f *commonFlags) error {
	if !cmd.Flags().Changed("charset") && !cmd.Flags().Changed("charset-preset") {
		return errs.Config("--charset or --charset-preset is required in encode mode")
	}
	if f.blockSize <= 0 {
		return errs.Config("--block must be positive")
	}

	charset, err := resolveCharset(cmd, f)
	if err != nil {
		return err
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

	opts := fluxcodec.Options{
		Charset:            charset,
		BlockSize:          f.blockSize,
		Header:             !f.noHeader,
		MaxRateBytesPerSec: f.maxRate,
	}

	if f.progress {
		ch := make(chan fluxcodec.Progress)
		opts.Progress = ch
		return runWithProgress("encoding", ch, func() error {
			return fluxcodec.Encode(in, out, opts, size)
		})
	}
	return fluxcodec.Encode(in, out, opts, size)
}
