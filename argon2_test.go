package argon2

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// TestKnownAnswerVectors checks the hash function against the Argon2
// specification's version-0x13 known-answer vectors (spec.md section 8):
// password = 0x01 * 32, salt = 0x02 * 16, secret = 0x03 * 8, ad = 0x04 * 12,
// passes=3, lanes=4, memory_kib=32, tag_length=32.
func TestKnownAnswerVectors(t *testing.T) {
	password := bytes.Repeat([]byte{0x01}, 32)
	salt := bytes.Repeat([]byte{0x02}, 16)
	secret := bytes.Repeat([]byte{0x03}, 8)
	ad := bytes.Repeat([]byte{0x04}, 12)

	cases := []struct {
		name    string
		variant Variant
		want    string
	}{
		{"argon2d", Argon2d, "512b391b6f1162975371d30919734294f868e3be3984f3c1a13a4db9fabe4acb"},
		{"argon2i", Argon2i, "c814d9d1dc7f37aa13f0d77f2494bda1c8de6b016dd388d29952a4c4672b6ce8"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tag, err := Hash(c.variant, Version13, password, salt, secret, ad, 3, 4, 32, 32)
			if err != nil {
				t.Fatalf("Hash: %v", err)
			}
			want, err := hex.DecodeString(c.want)
			if err != nil {
				t.Fatalf("bad test vector: %v", err)
			}
			if !bytes.Equal(tag, want) {
				t.Errorf("%s: got %x, want %x", c.name, tag, want)
			}
		})
	}
}

func TestSimple2iKnownAnswer(t *testing.T) {
	tag, err := Simple2i([]byte("argon2i!"), []byte("delicious salt"))
	if err != nil {
		t.Fatalf("Simple2i: %v", err)
	}
	want, _ := hex.DecodeString("e254b28d820f26706a19309f1888cefd5d48d91384f35dc2e3fe75c3a8f665a6")
	if !bytes.Equal(tag, want) {
		t.Errorf("Simple2i = %x, want %x", tag, want)
	}
}

func TestMinimumParams(t *testing.T) {
	tag, err := Hash(Argon2i, Version13, nil, nil, nil, nil, 1, 1, 8, 4)
	if err != nil {
		t.Fatalf("Hash with minimum params: %v", err)
	}
	if len(tag) != 4 {
		t.Fatalf("tag length = %d, want 4", len(tag))
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	password := []byte("correct horse battery staple")
	salt := []byte("some16bytesalt!!")

	tag, err := Hash(Argon2i, Version13, password, salt, nil, nil, 2, 1, 64, 32)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if !Verify(tag, Argon2i, Version13, password, salt, nil, nil, 2, 1, 64) {
		t.Error("Verify rejected a correct password")
	}
	if Verify(tag, Argon2i, Version13, []byte("wrong password"), salt, nil, nil, 2, 1, 64) {
		t.Error("Verify accepted a wrong password")
	}
}

func TestVerifyWrongSaltFails(t *testing.T) {
	password := []byte("password")
	tag, err := Hash(Argon2d, Version13, password, []byte("salt-one-16bytes"), nil, nil, 1, 1, 8, 16)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if Verify(tag, Argon2d, Version13, password, []byte("salt-two-16bytes"), nil, nil, 1, 1, 8) {
		t.Error("Verify accepted a mismatched salt")
	}
}

func TestBitFlipChangesRoughlyHalfTheOutputBits(t *testing.T) {
	password := []byte("base password!!!")
	salt := []byte("fixed-salt-value")

	base, err := Hash(Argon2i, Version13, password, salt, nil, nil, 2, 1, 64, 32)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	flipped := append([]byte(nil), password...)
	flipped[0] ^= 0x01
	other, err := Hash(Argon2i, Version13, flipped, salt, nil, nil, 2, 1, 64, 32)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	diffBits := 0
	for i := range base {
		diffBits += popcount(base[i] ^ other[i])
	}
	totalBits := len(base) * 8
	// Loose bound: a well-mixed hash should flip well over a third of the
	// output bits for a single input-bit change.
	if diffBits < totalBits/3 {
		t.Errorf("single bit flip changed only %d/%d output bits", diffBits, totalBits)
	}
}

func popcount(b byte) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}
