package policy

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/aayushbajaj/haikumator/internal/lexicon"
	"github.com/aayushbajaj/haikumator/internal/poem"
	"go.uber.org/zap"
)

// Antonym replaces words with antonyms. A word is first resolved to the
// synonym key that owns it; if that key has no antonyms, its synonyms are
// tried from last to first and the first one with antonyms is used.
type Antonym struct {
	synonyms *lexicon.Lexicon
	antonyms *lexicon.Lexicon
	rng      *rand.Rand
	log      *zap.Logger
}

func NewAntonym(synonyms, antonyms *lexicon.Lexicon, rng *rand.Rand, opts ...Option) *Antonym {
	if rng == nil {
		rng = NewRand(0)
	}
	o := buildOptions(opts)
	return &Antonym{
		synonyms: synonyms,
		antonyms: antonyms,
		rng:      rng,
		log:      o.logger.Named("antonymize"),
	}
}

func (a *Antonym) Name() string  { return "antonymize" }
func (a *Antonym) Label() string { return "Antonymized" }

// Resolve returns the antonym candidates for word using canon, the
// synonym lexicon's canonical map. A nil result leaves the word unchanged.
func (a *Antonym) Resolve(word string, canon map[string]string) []string {
	key, ok := canon[word]
	if !ok {
		key = word
	}
	if found := a.antonyms.Lookup(key); len(found) > 0 {
		return found
	}
	if !a.synonyms.Contains(key) {
		return nil
	}
	for _, syn := range slices.Backward(a.synonyms.Lookup(key)) {
		if found := a.antonyms.Lookup(syn); len(found) > 0 {
			a.log.Debug("Bridged antonym lookup",
				zap.String("word", word),
				zap.String("canonical", key),
				zap.String("via", syn))
			return found
		}
	}
	return nil
}

func (a *Antonym) Apply(src poem.Poem) poem.Poem {
	canon := a.synonyms.CanonicalMap()
	return substitute(src, a.log, func(word string) (string, bool) {
		candidates := a.Resolve(word, canon)
		if len(candidates) == 0 {
			return "", false
		}
		return candidates[a.rng.IntN(len(candidates))], true
	})
}

func (a *Antonym) Variants(src poem.Poem) iter.Seq2[int, poem.Poem] {
	return single(a, src)
}
