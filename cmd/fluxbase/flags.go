package main

import "github.com/spf13/cobra"

// commonFlags is the flag surface shared by encode and decode, mirroring
// the original CLI's Options struct.
type commonFlags struct {
	input         string
	output        string
	charset       string
	charsetPreset string
	pow2          bool
	blockSize     int
	noHeader      bool
	progress      bool
	maxRate       int
}

func addCommonFlags(cmd *cobra.Command, f *commonFlags, defaultBlockSize int, defaultPreset string, defaultProgress bool, defaultMaxRate int) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input file path (required)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file path (required)")
	cmd.Flags().StringVarP(&f.charset, "charset", "c", "", "alphabet to encode/decode against")
	cmd.Flags().StringVar(&f.charsetPreset, "charset-preset", defaultPreset, "named built-in alphabet (binary, hex, base32, base58, base64)")
	cmd.Flags().BoolVar(&f.pow2, "pow2", false, "truncate the alphabet to a power-of-two prefix and use bitstream packing")
	cmd.Flags().IntVarP(&f.blockSize, "block", "b", defaultBlockSize, "input block size in bytes")
	cmd.Flags().BoolVar(&f.noHeader, "no-header", false, "omit/expect no FLXB container header")
	cmd.Flags().BoolVar(&f.progress, "progress", defaultProgress, "show a progress bar while streaming")
	cmd.Flags().IntVar(&f.maxRate, "max-rate", defaultMaxRate, "throttle streaming to at most this many bytes/sec (0 = unlimited)")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
}
