package policy

import (
	"iter"
	"math/rand/v2"

	"github.com/aayushbajaj/haikumator/internal/lexicon"
	"github.com/aayushbajaj/haikumator/internal/poem"
	"github.com/aayushbajaj/haikumator/pkg/rank"
	"go.uber.org/zap"
)

// Synonym replaces each known word with a uniformly random related word.
type Synonym struct {
	lex *lexicon.Lexicon
	rng *rand.Rand
	log *zap.Logger
}

// NewSynonym builds the random synonym policy. A nil rng is seeded from the
// clock.
func NewSynonym(lex *lexicon.Lexicon, rng *rand.Rand, opts ...Option) *Synonym {
	if rng == nil {
		rng = NewRand(0)
	}
	o := buildOptions(opts)
	return &Synonym{lex: lex, rng: rng, log: o.logger.Named("synonymize")}
}

func (s *Synonym) Name() string  { return "synonymize" }
func (s *Synonym) Label() string { return "Synonymized" }

func (s *Synonym) Apply(src poem.Poem) poem.Poem {
	return substitute(src, s.log, func(word string) (string, bool) {
		candidates := s.lex.Lookup(word)
		if len(candidates) == 0 {
			return "", false
		}
		return candidates[s.rng.IntN(len(candidates))], true
	})
}

func (s *Synonym) Variants(src poem.Poem) iter.Seq2[int, poem.Poem] {
	return single(s, src)
}

// Mode selects which end of the length ranking Extremal uses.
type Mode int

const (
	Shortest Mode = iota
	Longest
)

// Extremal replaces each known word with its shortest (zen) or longest
// (lengthen) related word.
type Extremal struct {
	lex  *lexicon.Lexicon
	mode Mode
	log  *zap.Logger
}

func NewExtremal(lex *lexicon.Lexicon, mode Mode, opts ...Option) *Extremal {
	e := &Extremal{lex: lex, mode: mode}
	e.log = buildOptions(opts).logger.Named(e.Name())
	return e
}

func (e *Extremal) Name() string {
	if e.mode == Longest {
		return "lengthen"
	}
	return "zenize"
}

func (e *Extremal) Label() string {
	if e.mode == Longest {
		return "Lengthened"
	}
	return "Zen-ized"
}

func (e *Extremal) Apply(src poem.Poem) poem.Poem {
	pick := rank.Shortest
	if e.mode == Longest {
		pick = rank.Longest
	}
	return substitute(src, e.log, func(word string) (string, bool) {
		return pick(e.lex.Lookup(word))
	})
}

func (e *Extremal) Variants(src poem.Poem) iter.Seq2[int, poem.Poem] {
	return single(e, src)
}
