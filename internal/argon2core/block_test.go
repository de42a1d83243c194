package argon2core

import "testing"

func TestBlockXOR(t *testing.T) {
	var a, b Block
	for i := range a {
		a[i] = uint64(i)
		b[i] = uint64(i) * 2
	}
	var want Block
	for i := range want {
		want[i] = a[i] ^ b[i]
	}
	a.XOR(&b)
	if a != want {
		t.Fatal("XOR mismatch")
	}
}

func TestBlockCopyXOR(t *testing.T) {
	var a, b, out Block
	for i := range a {
		a[i] = uint64(i) + 1
		b[i] = uint64(i) * 3
	}
	out.CopyXOR(&a, &b)
	for i := range out {
		if out[i] != a[i]^b[i] {
			t.Fatalf("word %d: got %x want %x", i, out[i], a[i]^b[i])
		}
	}
}

func TestBlockZero(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = 0xdeadbeef
	}
	b.Zero()
	for i, v := range b {
		if v != 0 {
			t.Fatalf("word %d not zeroed: %x", i, v)
		}
	}
}

func TestBlockLoadStoreRoundTrip(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = uint64(i)*0x0101010101010101 + 1
	}
	raw := b.Bytes()
	if len(raw) != BlockSize {
		t.Fatalf("Bytes length = %d, want %d", len(raw), BlockSize)
	}

	var b2 Block
	b2.LoadLE(raw)
	if b != b2 {
		t.Fatal("LoadLE(Bytes()) did not round-trip")
	}
}

func TestBlockLoadLELittleEndian(t *testing.T) {
	data := make([]byte, BlockSize)
	data[0] = 0x01
	data[1] = 0x02
	var b Block
	b.LoadLE(data)
	if b[0] != 0x0201 {
		t.Fatalf("word 0 = %x, want %x", b[0], 0x0201)
	}
}
