package turboshake_test

import (
	"fmt"

	"github.com/codahale/turboshake"
)

func ExampleSum128() {
	// Hash a message with the conventional domain separation byte, producing
	// 32 bytes of output.
	out := turboshake.Sum128(nil, turboshake.DefaultDS, 32)

	fmt.Printf("%x\n", out)
	// Output: 1e415f1c5983aff2169217277d17bb538cd945a397ddec541f1ce41af2c1b74c
}

func ExampleSum256Hex() {
	fmt.Println(turboshake.Sum256Hex([]byte{0xFF}, 0x06, 32))
	// Output: 738D7B4E37D18B7F22AD1B5313E357E3DD7D07056A26A303C433FA3533455280
}

func ExampleHasher() {
	// Absorb a message incrementally, then squeeze 32 bytes as hex. The
	// chunking of writes does not affect the output.
	msg := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10}

	h := turboshake.New128(turboshake.DefaultDS)
	_, _ = h.Write(msg[:5])
	_, _ = h.Write(msg[5:])

	fmt.Println(h.SqueezeHex(32))
	// Output: 9C97D036A3BAC819DB70EDE0CA554EC6E4C2A1A4FFBFD9EC269CA6A111161233
}

func ExampleHasher_Read() {
	// A Hasher is an io.Reader over an unbounded output stream; successive
	// reads continue where the last one stopped.
	h := turboshake.New128(0x07)
	_, _ = h.Write([]byte{0xFF, 0xFF, 0xFF})

	out := make([]byte, 32)
	_, _ = h.Read(out[:16])
	_, _ = h.Read(out[16:])

	fmt.Printf("%x\n", out)
	// Output: b658576001cad9b1e5f399a9f77723bba05458042d68206f7252682dba3663ed
}
