package argon2

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func vectorConfig() Config {
	return Config{
		HashLength: 32,
		MemoryCost: 32,
		TimeCost:   3,
		Lanes:      4,
		Threads:    1,
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// TestSum2dRFC9106Vector checks a fixed Argon2d input against its
// published RFC 9106 tag.
func TestSum2dRFC9106Vector(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)

	want := decodeHex(t, "512B391B6F1162975371D30919734294F868E3BE3984F3C1A13A4DB9FABE4ACB"[:64])

	got, err := Sum2d(secret, salt, ad, message, vectorConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Sum2d mismatch:\n got  %x\n want %x", got, want)
	}
}

// TestSum2iRFC9106Vector checks a fixed Argon2i input against its
// published RFC 9106 tag.
func TestSum2iRFC9106Vector(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)

	want := decodeHex(t, "C814D9D1DC7F37AA13F0D77F2494BDA1C8DE6B016DD388D29952A4C4672B6CE8"[:64])

	got, err := Sum2i(secret, salt, ad, message, vectorConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Sum2i mismatch:\n got  %x\n want %x", got, want)
	}
}

// TestSum2dThreadCountDoesNotAffectTag checks that the worker-pool
// thread count only affects wall-clock time, never the resulting tag.
func TestSum2dThreadCountDoesNotAffectTag(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)

	base := vectorConfig()
	baseline, err := Sum2d(secret, salt, ad, message, base)
	if err != nil {
		t.Fatal(err)
	}

	for _, threads := range []uint32{2, 3, 4} {
		cfg := base
		cfg.Threads = threads
		got, err := Sum2d(secret, salt, ad, message, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, baseline) {
			t.Fatalf("threads=%d: tag diverged from single-threaded baseline", threads)
		}
	}
}

// TestSum2dMemoryCostNormalization checks that an under-sized memory
// cost is silently raised to the same effective value.
func TestSum2dMemoryCostNormalization(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)

	base := vectorConfig()
	baseline, err := Sum2d(secret, salt, ad, message, base)
	if err != nil {
		t.Fatal(err)
	}

	low := base
	low.MemoryCost = 1
	got, err := Sum2d(secret, salt, ad, message, low)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, baseline) {
		t.Fatal("memoryCost=1 did not normalize up to the same tag as memoryCost=32")
	}
}

// TestSum2iLongOutput exercises a hashLength longer than one BLAKE2b
// digest, driving H's chaining branch end-to-end.
func TestSum2iLongOutput(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)

	cfg := vectorConfig()
	cfg.HashLength = 112

	got, err := Sum2i(secret, salt, ad, message, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 112 {
		t.Fatalf("got %d bytes, want 112", len(got))
	}

	allZero := true
	for _, b := range got {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("long output is all zero")
	}
}

// TestSum2iEmptyAssociatedDataAndMessage checks that an absent
// associated-data field and an empty message never panic or leave the
// engine in a bad state.
func TestSum2iEmptyAssociatedDataAndMessage(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)

	cfg := vectorConfig()
	got, err := Sum2i(secret, salt, nil, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 32 {
		t.Fatalf("got %d bytes, want 32", len(got))
	}
}

// TestSingleBitFlipChangesTag checks that the salt, the message and the
// secret each participate in the tag: flipping a single bit of any one
// of them must change the output.
func TestSingleBitFlipChangesTag(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)
	cfg := vectorConfig()

	baseline, err := Sum2i(secret, salt, ad, message, cfg)
	if err != nil {
		t.Fatal(err)
	}

	flippedSalt := append([]byte(nil), salt...)
	flippedSalt[0] ^= 0x01
	gotSalt, err := Sum2i(secret, flippedSalt, ad, message, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(gotSalt, baseline) {
		t.Fatal("flipping one salt bit did not change the tag")
	}

	flippedMessage := append([]byte(nil), message...)
	flippedMessage[0] ^= 0x01
	gotMessage, err := Sum2i(secret, salt, ad, flippedMessage, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(gotMessage, baseline) {
		t.Fatal("flipping one message bit did not change the tag")
	}

	flippedSecret := append([]byte(nil), secret...)
	flippedSecret[0] ^= 0x01
	gotSecret, err := Sum2i(flippedSecret, salt, ad, message, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(gotSecret, baseline) {
		t.Fatal("flipping one secret bit did not change the tag")
	}
}

// TestSum2dAndSum2iDiverge checks the addressing rule actually changes
// output: the two variants must never collide on identical inputs.
func TestSum2dAndSum2iDiverge(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 8)
	salt := bytes.Repeat([]byte{0x02}, 16)
	ad := bytes.Repeat([]byte{0x04}, 12)
	message := bytes.Repeat([]byte{0x01}, 32)
	cfg := vectorConfig()

	d, err := Sum2d(secret, salt, ad, message, cfg)
	if err != nil {
		t.Fatal(err)
	}
	i, err := Sum2i(secret, salt, ad, message, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(d, i) {
		t.Fatal("Sum2d and Sum2i produced identical tags")
	}
}
