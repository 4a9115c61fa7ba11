package argon2

import "github.com/opd-ai/go-argon2/internal/core"

// Variant selects between the data-dependent and data-independent Argon2
// addressing modes.
type Variant uint32

const (
	// Argon2d uses data-dependent memory access: faster, but the access
	// pattern leaks timing information about the password, so it has no
	// constant-time guarantee (spec.md 1 Non-goals).
	Argon2d Variant = Variant(core.VariantArgon2d)
	// Argon2i uses data-independent memory access, generated from a
	// pseudorandom counter instead of prior block contents.
	Argon2i Variant = Variant(core.VariantArgon2i)
)

// Supported Argon2 versions.
const (
	Version10 uint32 = core.Version10
	Version13 uint32 = core.Version13
)

const (
	minLanes     = 1
	maxLanes     = 1<<24 - 1
	minTagLength = 4
	maxByteLen   = uint64(1) << 32
)

// Params groups the tunable cost parameters for one Argon2 call, mirroring
// the Config-struct convention used across the example corpus rather than
// a long positional argument list.
type Params struct {
	Variant   Variant
	Version   uint32
	Passes    uint32 // time cost t
	Lanes     uint32 // parallelism p
	MemoryKiB uint32 // memory cost m, in KiB
	TagLength uint32 // output length in bytes

	// SingleThreaded forces strictly sequential lane processing. The
	// result is bit-identical to the parallel path (spec.md 8, property 2);
	// this only affects wall-clock time and goroutine usage.
	SingleThreaded bool
}

// validate checks every field named in spec.md section 3's parameter table,
// plus the byte-string length bound, returning the first violation found.
func (p Params) validate(password, salt, secret, ad []byte) error {
	if p.Passes < 1 {
		return &InvalidParamError{Field: "passes", Value: p.Passes}
	}
	if p.Lanes < minLanes || p.Lanes > maxLanes {
		return &InvalidParamError{Field: "lanes", Value: p.Lanes}
	}
	if p.MemoryKiB < 8*p.Lanes {
		return &InvalidParamError{Field: "memory_kib", Value: p.MemoryKiB}
	}
	if p.TagLength < minTagLength {
		return &InvalidParamError{Field: "tag_length", Value: p.TagLength}
	}
	if p.Version != Version10 && p.Version != Version13 {
		return &InvalidParamError{Field: "version", Value: p.Version}
	}
	if p.Variant != Argon2d && p.Variant != Argon2i {
		return &InvalidParamError{Field: "variant", Value: p.Variant}
	}
	if uint64(len(password)) >= maxByteLen {
		return &InvalidParamError{Field: "password", Value: len(password)}
	}
	if uint64(len(salt)) >= maxByteLen {
		return &InvalidParamError{Field: "salt", Value: len(salt)}
	}
	if uint64(len(secret)) >= maxByteLen {
		return &InvalidParamError{Field: "secret", Value: len(secret)}
	}
	if uint64(len(ad)) >= maxByteLen {
		return &InvalidParamError{Field: "ad", Value: len(ad)}
	}
	return nil
}

func (p Params) toRunParams() core.RunParams {
	return core.RunParams{
		Variant:        core.Variant(p.Variant),
		Version:        p.Version,
		Passes:         p.Passes,
		Lanes:          p.Lanes,
		MemoryKiB:      p.MemoryKiB,
		TagLength:      p.TagLength,
		SingleThreaded: p.SingleThreaded,
	}
}
