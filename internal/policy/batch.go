package policy

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/aayushbajaj/haikumator/internal/lexicon"
	"github.com/aayushbajaj/haikumator/internal/poem"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrWriteFailed wraps a sink error that aborted a batch run.
var ErrWriteFailed = errors.New("failed to write variant")

// Candidate is a poem word together with every replacement the lexicon
// offers for it.
type Candidate struct {
	Word         string
	Replacements []string
}

// Sink receives generated variants. index is 1-based.
type Sink interface {
	WriteVariant(index int, p poem.Poem) error
}

// Batch enumerates every combination of replacements for the poem's
// replaceable words. Variants are produced lazily, one at a time.
type Batch struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

func NewBatch(lex *lexicon.Lexicon, opts ...Option) *Batch {
	return &Batch{lex: lex, log: buildOptions(opts).logger.Named("batch")}
}

func (b *Batch) Name() string { return "batch" }

// Replaceable lists the words of src that have at least one replacement,
// in first-appearance order.
func (b *Batch) Replaceable(src poem.Poem) []Candidate {
	var out []Candidate
	for _, word := range src.Words() {
		if repl := b.lex.Lookup(word); len(repl) > 0 {
			out = append(out, Candidate{Word: word, Replacements: repl})
		}
	}
	return out
}

// Count returns the number of variants Variants will yield: the product of
// the candidate list lengths, or 0 if nothing is replaceable. The result
// saturates at math.MaxInt.
func (b *Batch) Count(src poem.Poem) int {
	return countCombinations(b.Replaceable(src))
}

func countCombinations(cands []Candidate) int {
	if len(cands) == 0 {
		return 0
	}
	total := 1
	for _, c := range cands {
		n := len(c.Replacements)
		if total > math.MaxInt/n {
			return math.MaxInt
		}
		total *= n
	}
	return total
}

// Variants yields each combination in product order: the last replaceable
// word changes fastest. No line capitalization pass is applied.
func (b *Batch) Variants(src poem.Poem) iter.Seq2[int, poem.Poem] {
	cands := b.Replaceable(src)
	return func(yield func(int, poem.Poem) bool) {
		if len(cands) == 0 {
			return
		}
		idx := make([]int, len(cands))
		for k := 1; ; k++ {
			out := src.Clone()
			for i, c := range cands {
				out.ReplaceWord(c.Word, c.Replacements[idx[i]])
			}
			if !yield(k, out) {
				return
			}
			if !advance(idx, cands) {
				return
			}
		}
	}
}

// advance steps the odometer and reports false once every combination has
// been visited.
func advance(idx []int, cands []Candidate) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < len(cands[i].Replacements) {
			return true
		}
		idx[i] = 0
	}
	return false
}

// Run writes every variant of src to sink and returns how many were
// written. Zero replaceable words is not an error. A write failure or a
// cancelled context stops the run; the count reports the variants that
// were completed before it.
func (b *Batch) Run(ctx context.Context, src poem.Poem, sink Sink) (int, error) {
	log := b.log.With(zap.String("run_id", uuid.NewString()))

	cands := b.Replaceable(src)
	if len(cands) == 0 {
		log.Info("No replaceable words")
		return 0, nil
	}
	log.Info("Batch started",
		zap.Int("words", len(cands)),
		zap.Int("variants", countCombinations(cands)))

	done := 0
	for k, variant := range b.Variants(src) {
		if err := ctx.Err(); err != nil {
			log.Warn("Batch cancelled", zap.Int("completed", done))
			return done, err
		}
		if err := sink.WriteVariant(k, variant); err != nil {
			log.Error("Batch aborted", zap.Int("index", k), zap.Int("completed", done), zap.Error(err))
			return done, fmt.Errorf("%w v%d: %w", ErrWriteFailed, k, err)
		}
		done++
	}

	log.Info("Batch completed", zap.Int("completed", done))
	return done, nil
}
