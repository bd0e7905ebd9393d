package turboshake_test

import (
	"fmt"
	"testing"

	"github.com/codahale/turboshake"
)

var lengths = []struct {
	name string
	n    int
}{
	{"32", 32},
	{"1KiB", 1024},
	{"16KiB", 16 * 1024},
	{"1MiB", 1024 * 1024},
}

func BenchmarkSum128(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			input := make([]byte, length.n)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				turboshake.Sum128(input, 0x1F, 32)
			}
		})
	}
}

func BenchmarkSum256(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			input := make([]byte, length.n)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				turboshake.Sum256(input, 0x1F, 32)
			}
		})
	}
}

func BenchmarkHasherWrite(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			input := make([]byte, length.n)
			h := turboshake.New128(0x1F)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				_, _ = h.Write(input)
			}
		})
	}
}

func BenchmarkHasherRead(b *testing.B) {
	for _, length := range lengths {
		b.Run(fmt.Sprintf("128/%s", length.name), func(b *testing.B) {
			output := make([]byte, length.n)
			h := turboshake.New128(0x1F)
			b.ReportAllocs()
			b.SetBytes(int64(len(output)))
			for b.Loop() {
				_, _ = h.Read(output)
			}
		})
		b.Run(fmt.Sprintf("256/%s", length.name), func(b *testing.B) {
			output := make([]byte, length.n)
			h := turboshake.New256(0x1F)
			b.ReportAllocs()
			b.SetBytes(int64(len(output)))
			for b.Loop() {
				_, _ = h.Read(output)
			}
		})
	}
}
