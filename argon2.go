// Package argon2 implements the Argon2d and Argon2i password-hashing and
// key-derivation functions (RFC 9106 / the Argon2 PHC specification),
// along with a constant-time verification primitive.
//
// The hard work — the memory-hard compression engine, the Argon2 variant
// of the BLAKE2b round, and the BLAKE2b-based variable-length hash H' —
// lives in internal/core and internal/blake2b. This package is the
// validated, allocation-free-until-checked public surface: Hash, Verify,
// and the Simple2i/Simple2d convenience wrappers.
//
// This package does not implement Argon2id, does not parse or produce PHC
// encoded strings, and does not choose parameters on the caller's behalf
// (aside from Simple2i/Simple2d's fixed defaults) — callers own parameter
// selection and storage of the resulting tag and salt.
package argon2

import (
	"crypto/subtle"

	"github.com/opd-ai/go-argon2/internal/core"
)

// Hash derives a tag from password, salt, and the optional secret key and
// associated data, using the given variant, version, and cost parameters.
// It returns InvalidParamError if any parameter is out of range; no other
// error is possible.
func Hash(variant Variant, version uint32, password, salt, secret, ad []byte,
	passes, lanes, memoryKiB, tagLength uint32) ([]byte, error) {

	p := Params{
		Variant:   variant,
		Version:   version,
		Passes:    passes,
		Lanes:     lanes,
		MemoryKiB: memoryKiB,
		TagLength: tagLength,
	}
	return p.Hash(password, salt, secret, ad)
}

// Hash derives a tag using the receiver's cost parameters.
func (p Params) Hash(password, salt, secret, ad []byte) ([]byte, error) {
	if err := p.validate(password, salt, secret, ad); err != nil {
		return nil, err
	}
	return core.Run(p.toRunParams(), password, salt, secret, ad), nil
}

// Verify recomputes the tag for the given inputs and compares it against
// expectedTag in constant time. It returns false (never an error) for a
// length mismatch or a parameter validation failure, since an invalid
// parameter set can never have produced expectedTag in the first place.
func Verify(expectedTag []byte, variant Variant, version uint32, password, salt, secret, ad []byte,
	passes, lanes, memoryKiB uint32) bool {

	p := Params{
		Variant:   variant,
		Version:   version,
		Passes:    passes,
		Lanes:     lanes,
		MemoryKiB: memoryKiB,
		TagLength: uint32(len(expectedTag)),
	}
	return p.Verify(expectedTag, password, salt, secret, ad)
}

// Verify recomputes the tag using the receiver's parameters (TagLength is
// taken from len(expectedTag)) and compares it against expectedTag in
// constant time, per spec.md 4.7 / 9: the comparison always walks the full
// length and never branches on a byte value, so its running time does not
// depend on where (or whether) the inputs first differ.
func (p Params) Verify(expectedTag []byte, password, salt, secret, ad []byte) bool {
	p.TagLength = uint32(len(expectedTag))
	if p.TagLength < minTagLength {
		return false
	}
	if err := p.validate(password, salt, secret, ad); err != nil {
		return false
	}

	got := core.Run(p.toRunParams(), password, salt, secret, ad)
	defer zeroBytes(got)

	return subtle.ConstantTimeCompare(got, expectedTag) == 1
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
