package randomname

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
	"strings"
)

// Generate returns a random name built from opts. A nil opts yields an
// adjective-noun pair such as "bold-otter".
//
// When a Validator is set, up to maxAttempts candidates are offered to it;
// the last candidate is returned if none is accepted.
func Generate(opts *Options) string {
	o := opts.normalized()

	var name string
	for range maxAttempts {
		name = build(o)
		if o.Validator == nil || o.Validator(name) {
			return name
		}
	}
	return name
}

// Simple returns an "adjective-noun" name.
func Simple() string {
	return Generate(nil)
}

// WithSuffix returns an "adjective-noun-xxxxxx" name with a hex suffix,
// which makes collisions unlikely enough for identifiers.
func WithSuffix() string {
	return Generate(&Options{Suffix: Hex6})
}

func build(o Options) string {
	var sb strings.Builder
	for i, wt := range o.Pattern {
		if i > 0 {
			sb.WriteString(o.Separator)
		}
		list := words[wt]
		if len(list) == 0 {
			list = words[Noun]
		}
		sb.WriteString(list[randomInt(len(list))])
	}

	if o.Suffix > 0 {
		sb.WriteString(o.Separator)
		hex := fmt.Sprintf("%08x", randomUint32())
		sb.WriteString(hex[:o.Suffix])
	}

	return sb.String()
}

func randomInt(n int) int {
	return int(randomUint32() % uint32(n))
}

// randomUint32 reads from crypto/rand, falling back to math/rand/v2 when the
// system source is unavailable.
func randomUint32() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return mrand.Uint32()
	}
	return binary.LittleEndian.Uint32(b[:])
}
