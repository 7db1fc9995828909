package randomname

type WordType int

const (
	Adjective WordType = iota
	Noun
	Color
)

// Hex suffix widths for Options.Suffix.
const (
	Hex6 = 6
	Hex8 = 8
)

const (
	maxAttempts  = 100
	maxSuffixLen = 8
)

// Options controls the shape of a generated name. The zero value yields
// "adjective-noun".
type Options struct {
	Pattern   []WordType // word types in order; defaults to Adjective, Noun
	Separator string     // defaults to "-"
	Suffix    int        // number of hex digits appended, capped at 8

	// Validator rejects unacceptable candidates, e.g. names already taken.
	Validator func(string) bool
}

func (o *Options) normalized() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if len(out.Pattern) == 0 {
		out.Pattern = []WordType{Adjective, Noun}
	}
	if out.Separator == "" {
		out.Separator = "-"
	}
	out.Suffix = min(max(out.Suffix, 0), maxSuffixLen)
	return out
}
