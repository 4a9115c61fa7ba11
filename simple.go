package argon2

// Default cost parameters for the Simple2i/Simple2d convenience wrappers
// (spec.md 6): passes=3, lanes=1, memory=4096 KiB, tag length 32 bytes,
// empty secret/ad, version 0x13.
const (
	simpleTagLength = 32
	simplePasses    = 3
	simpleLanes     = 1
	simpleMemoryKiB = 4096
)

// Simple2i hashes password and salt with Argon2i using the package's
// fixed default cost parameters, returning a 32-byte tag.
func Simple2i(password, salt []byte) ([]byte, error) {
	return simpleHash(Argon2i, password, salt)
}

// Simple2d hashes password and salt with Argon2d using the same defaults
// as Simple2i.
func Simple2d(password, salt []byte) ([]byte, error) {
	return simpleHash(Argon2d, password, salt)
}

func simpleHash(variant Variant, password, salt []byte) ([]byte, error) {
	p := Params{
		Variant:   variant,
		Version:   Version13,
		Passes:    simplePasses,
		Lanes:     simpleLanes,
		MemoryKiB: simpleMemoryKiB,
		TagLength: simpleTagLength,
	}
	return p.Hash(password, salt, nil, nil)
}
