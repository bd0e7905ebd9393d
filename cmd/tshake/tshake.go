// Command tshake hashes standard input with TurboSHAKE and prints the output
// as uppercase hex.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/turboshake"
)

func main() {
	log := slog.New(slog.Default().Handler())

	variant := flag.Int("variant", 128, "the TurboSHAKE variant (128 or 256)")
	ds := flag.Uint("d", turboshake.DefaultDS, "the domain separation byte (1-255)")
	n := flag.Int("n", 32, "the output length in bytes")
	flag.Parse()

	if *ds == 0 || *ds > 0xFF {
		log.Error("domain separation byte out of range", "d", *ds)
		os.Exit(1)
	}
	if *n < 0 {
		log.Error("output length cannot be negative", "n", *n)
		os.Exit(1)
	}

	var h *turboshake.Hasher
	switch *variant {
	case 128:
		h = turboshake.New128(byte(*ds))
	case 256:
		h = turboshake.New256(byte(*ds))
	default:
		log.Error("unknown variant", "variant", *variant)
		os.Exit(1)
	}

	if _, err := io.Copy(h, bufio.NewReader(os.Stdin)); err != nil {
		log.Error("failed to read input", "err", err)
		os.Exit(1)
	}

	fmt.Println(h.SqueezeHex(*n))
}
