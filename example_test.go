package argon2_test

import (
	"fmt"

	argon2 "github.com/opd-ai/go-argon2"
)

// Example demonstrates deriving a key with Argon2i and then verifying a
// password against the stored tag and salt.
func Example() {
	salt := []byte("an example 16B salt")

	tag, err := argon2.Simple2i([]byte("correct horse battery staple"), salt)
	if err != nil {
		panic(err)
	}

	ok := argon2.Params{
		Variant:   argon2.Argon2i,
		Version:   argon2.Version13,
		Passes:    3,
		Lanes:     1,
		MemoryKiB: 4096,
	}.Verify(tag, []byte("correct horse battery staple"), salt, nil, nil)

	fmt.Println(ok)
	// Output: true
}
