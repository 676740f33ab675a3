// Package runner wires files, lexicons and policies together for the CLI
// and the TUI.
package runner

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/aayushbajaj/haikumator/internal/lexicon"
	"github.com/aayushbajaj/haikumator/internal/poem"
	"github.com/aayushbajaj/haikumator/internal/policy"
	"github.com/aayushbajaj/haikumator/internal/season"
	"github.com/aayushbajaj/haikumator/internal/storage"
	"go.uber.org/zap"
)

// Single-output policy names.
const (
	Synonymize = "synonymize"
	Zenize     = "zenize"
	Lengthen   = "lengthen"
	Antonymize = "antonymize"
)

// Kinds lists the single-output policies in menu order.
var Kinds = []string{Synonymize, Zenize, Lengthen, Antonymize}

// NeedsAntonyms reports whether kind reads an antonym lexicon.
func NeedsAntonyms(kind string) bool {
	return kind == Antonymize
}

// Inputs names the files an operation reads.
type Inputs struct {
	Poem     string
	Synonyms string
	Antonyms string
}

// Outcome is the result of a single-output policy.
type Outcome struct {
	Label  string
	Before poem.Poem
	After  poem.Poem
}

type Runner struct {
	log *zap.Logger
	rng *rand.Rand
}

// New returns a runner. seed 0 picks a time-based seed.
func New(log *zap.Logger, seed uint64) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log, rng: policy.NewRand(seed)}
}

// Transformer builds the named single-output policy. ant may be nil unless
// kind is Antonymize.
func (r *Runner) Transformer(kind string, syn, ant *lexicon.Lexicon) (policy.Transformer, error) {
	opt := policy.WithLogger(r.log)
	switch kind {
	case Synonymize:
		return policy.NewSynonym(syn, r.rng, opt), nil
	case Zenize:
		return policy.NewExtremal(syn, policy.Shortest, opt), nil
	case Lengthen:
		return policy.NewExtremal(syn, policy.Longest, opt), nil
	case Antonymize:
		if ant == nil {
			return nil, fmt.Errorf("%s needs an antonym lexicon", kind)
		}
		return policy.NewAntonym(syn, ant, r.rng, opt), nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want one of %v)", kind, Kinds)
	}
}

// Transform loads the inputs and applies the named policy.
func (r *Runner) Transform(kind string, in Inputs) (Outcome, error) {
	if !slices.Contains(Kinds, kind) {
		return Outcome{}, fmt.Errorf("unknown policy %q (want one of %v)", kind, Kinds)
	}

	src, err := poem.LoadFile(in.Poem)
	if err != nil {
		return Outcome{}, err
	}
	syn, err := lexicon.LoadFile(in.Synonyms)
	if err != nil {
		return Outcome{}, err
	}
	var ant *lexicon.Lexicon
	if NeedsAntonyms(kind) {
		if ant, err = lexicon.LoadFile(in.Antonyms); err != nil {
			return Outcome{}, err
		}
	}

	t, err := r.Transformer(kind, syn, ant)
	if err != nil {
		return Outcome{}, err
	}

	r.log.Info("Processing poem",
		zap.String("policy", kind),
		zap.String("poem", in.Poem),
		zap.Int("lexicon_keys", syn.Len()))
	return Outcome{Label: t.Label(), Before: src, After: t.Apply(src)}, nil
}

// progressSink reports each written variant.
type progressSink struct {
	policy.Sink
	onWrite func(index int)
}

func (s progressSink) WriteVariant(index int, p poem.Poem) error {
	if err := s.Sink.WriteVariant(index, p); err != nil {
		return err
	}
	if s.onWrite != nil {
		s.onWrite(index)
	}
	return nil
}

// Batch writes every variant of the poem into dir. onWrite, if set, runs
// after each successful write.
func (r *Runner) Batch(ctx context.Context, in Inputs, dir string, onWrite func(index int)) (int, error) {
	src, err := poem.LoadFile(in.Poem)
	if err != nil {
		return 0, err
	}
	syn, err := lexicon.LoadFile(in.Synonyms)
	if err != nil {
		return 0, err
	}
	out, err := storage.OpenOutputDir(dir)
	if err != nil {
		return 0, err
	}

	b := policy.NewBatch(syn, policy.WithLogger(r.log))
	return b.Run(ctx, src, progressSink{Sink: out, onWrite: onWrite})
}

// Replaceable loads the inputs and reports how many variants a batch run
// would write.
func (r *Runner) Replaceable(in Inputs) (int, error) {
	src, err := poem.LoadFile(in.Poem)
	if err != nil {
		return 0, err
	}
	syn, err := lexicon.LoadFile(in.Synonyms)
	if err != nil {
		return 0, err
	}
	return policy.NewBatch(syn).Count(src), nil
}

// Season classifies the poem at path against the built-in table.
func (r *Runner) Season(path string) (poem.Poem, season.Result, error) {
	src, err := poem.LoadFile(path)
	if err != nil {
		return poem.Poem{}, season.Result{}, err
	}
	res := season.NewDetector(nil).Detect(src)
	r.log.Info("Detected season", zap.String("poem", path), zap.String("season", res.Season), zap.Int("hits", len(res.Hits)))
	return src, res, nil
}
