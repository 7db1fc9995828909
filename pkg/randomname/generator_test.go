package randomname_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sourcefeed/pkg/randomname"
)

func TestSimple(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[a-z]+-[a-z]+$`)
	for range 50 {
		name := randomname.Simple()
		assert.Regexp(t, pattern, name)
	}
}

func TestWithSuffix(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[a-z]+-[a-z]+-[0-9a-f]{6}$`)
	for range 50 {
		assert.Regexp(t, pattern, randomname.WithSuffix())
	}
}

func TestGenerate_Options(t *testing.T) {
	t.Parallel()

	t.Run("custom pattern and separator", func(t *testing.T) {
		name := randomname.Generate(&randomname.Options{
			Pattern:   []randomname.WordType{randomname.Color, randomname.Adjective, randomname.Noun},
			Separator: "_",
		})
		assert.Len(t, strings.Split(name, "_"), 3)
	})

	t.Run("hex8 suffix", func(t *testing.T) {
		name := randomname.Generate(&randomname.Options{Suffix: randomname.Hex8})
		assert.Regexp(t, `^[a-z]+-[a-z]+-[0-9a-f]{8}$`, name)
	})

	t.Run("suffix is capped", func(t *testing.T) {
		name := randomname.Generate(&randomname.Options{Suffix: 32})
		assert.Regexp(t, `^[a-z]+-[a-z]+-[0-9a-f]{8}$`, name)
	})

	t.Run("odd suffix width", func(t *testing.T) {
		name := randomname.Generate(&randomname.Options{Suffix: 3, Separator: "."})
		assert.Regexp(t, `^[a-z]+\.[a-z]+\.[0-9a-f]{3}$`, name)
	})

	t.Run("validator rejects until accepted", func(t *testing.T) {
		calls := 0
		name := randomname.Generate(&randomname.Options{
			Validator: func(string) bool {
				calls++
				return calls == 3
			},
		})
		assert.Equal(t, 3, calls)
		assert.NotEmpty(t, name)
	})

	t.Run("validator never accepts", func(t *testing.T) {
		calls := 0
		name := randomname.Generate(&randomname.Options{
			Validator: func(string) bool {
				calls++
				return false
			},
		})
		assert.Equal(t, 100, calls)
		assert.NotEmpty(t, name)
	})
}
