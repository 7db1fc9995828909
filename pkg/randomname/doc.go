// Package randomname generates memorable random names composed of
// human-readable words, e.g. "bold-otter" or "calm-heron-a3f21b".
//
// Names are produced by joining a Pattern of word types with a Separator and
// an optional hex Suffix. Randomness comes from crypto/rand.
//
//	id := randomname.WithSuffix() // "swift-falcon-0c9e2d"
//
//	name := randomname.Generate(&randomname.Options{
//	    Pattern:   []randomname.WordType{randomname.Color, randomname.Noun},
//	    Separator: "_",
//	    Validator: func(s string) bool { return !taken(s) },
//	})
package randomname
