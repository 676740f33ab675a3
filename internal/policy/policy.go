// Package policy implements the word substitution strategies applied to a
// poem: random synonym, shortest or longest synonym, antonym with synonym
// bridging, and exhaustive batch combination.
//
// Every policy works on a copy of the source poem. Distinct words are
// visited in order of first appearance in the poem, which fixes the output
// when one replacement produces a word that a later step also targets.
package policy

import (
	"iter"
	"math/rand/v2"
	"time"

	"github.com/aayushbajaj/haikumator/internal/poem"
	"go.uber.org/zap"
)

// Policy turns a source poem into one or more variants, numbered from 1.
type Policy interface {
	Name() string
	Variants(src poem.Poem) iter.Seq2[int, poem.Poem]
}

// Transformer is a Policy that always produces exactly one poem.
type Transformer interface {
	Policy
	// Label names the result, as in "The Zen-ized Haiku".
	Label() string
	Apply(src poem.Poem) poem.Poem
}

// Option configures a policy.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for per-word debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewRand returns a PCG-backed generator. A zero seed derives one from the
// clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// single adapts a Transformer to the Variants shape.
func single(t Transformer, src poem.Poem) iter.Seq2[int, poem.Poem] {
	return func(yield func(int, poem.Poem) bool) {
		yield(1, t.Apply(src))
	}
}

// substitute applies pick to every distinct word of src and finishes with
// the line capitalization pass shared by the single-output policies.
func substitute(src poem.Poem, log *zap.Logger, pick func(word string) (string, bool)) poem.Poem {
	out := src.Clone()
	for _, word := range out.Words() {
		replacement, ok := pick(word)
		if !ok {
			continue
		}
		log.Debug("Replacing word", zap.String("word", word), zap.String("replacement", replacement))
		out.ReplaceWord(word, replacement)
	}
	out.CapitalizeLines()
	return out
}
