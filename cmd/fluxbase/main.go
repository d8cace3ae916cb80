// Command fluxbase encodes and decodes files against an arbitrary-radix
// printable alphabet.
package main

import "os"

func main() {
	os.Exit(run())
}
