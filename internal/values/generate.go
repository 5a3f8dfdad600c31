package values

import (
	"fmt"
	"math/rand"
)

// Generate is a fresh-random byte generator: every Slice/Byte call
// resamples from the charset uniformly (spec.md §3.1, §5 concurrency
// note — "two reads of the same random generator return different
// bytes"). Call Freeze to fix the generator's current output.
type Generate struct {
	size   int
	dtype  Charset
	rng    *rand.Rand
	frozen *Literal
}

// NewGenerate constructs a Generate value of the given byte length
// sampling from dtype. rng may be nil, in which case a package-default
// source is used — callers that need reproducible randomness without
// freezing every token should pass a seeded *rand.Rand (spec.md §9,
// "Configurable PRNG").
func NewGenerate(size int, dtype Charset, rng *rand.Rand) *Generate {
	if rng == nil {
		rng = defaultRand
	}
	return &Generate{size: size, dtype: dtype, rng: rng}
}

func (g *Generate) Len() int { return g.size }

func (g *Generate) Slice(a, b int) []byte {
	if g.frozen != nil {
		return g.frozen.Slice(a, b)
	}
	alphabet, ok := Alphabet(g.dtype)
	if !ok {
		alphabet, _ = Alphabet(CharsetBytes)
	}
	b = clamp(b, g.size)
	if a < 0 {
		a = 0
	}
	if a > b {
		a = b
	}
	out := make([]byte, b-a)
	for i := range out {
		out[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return out
}

func (g *Generate) Byte(i int) byte {
	if g.frozen != nil {
		return g.frozen.Byte(i)
	}
	s := g.Slice(i, i+1)
	return s[0]
}

// Freeze realizes the generator's current output into a Literal.
// Successive calls to Freeze after the first return the same Literal
// (spec.md §8 law 4, "freeze stability").
func (g *Generate) Freeze() *Literal {
	if g.frozen == nil {
		g.frozen = NewLiteral(g.Slice(0, g.size))
	}
	return g.frozen
}

func (g *Generate) String() string {
	return fmt.Sprintf("%d random bytes from %s", g.size, g.dtype)
}

var defaultRand = rand.New(rand.NewSource(1))

// SeedDefault reseeds the package-default PRNG used by Generate values
// constructed with a nil rng. Intended for tests that want deterministic
// output without freezing every token.
func SeedDefault(seed int64) {
	defaultRand = rand.New(rand.NewSource(seed))
}
