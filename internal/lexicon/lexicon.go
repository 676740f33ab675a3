// Package lexicon loads and queries word tables such as thesauri and
// antonym lists. Every key and related word is stored lowercased, so
// lookups are case-insensitive.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Lexicon maps a normalized key word to an ordered list of related words.
// It is built once and treated as read-only afterwards.
type Lexicon struct {
	entries map[string][]string
	order   []string
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{entries: make(map[string][]string)}
}

// LoadFile reads a lexicon from disk. Files ending in .yaml or .yml are
// parsed as YAML; anything else uses the "word: a, b, c" line format.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer f.Close()

	var lex *Lexicon
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		lex, err = ParseYAML(f)
	default:
		lex, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Parse reads lines of the form "word: item1, item2". Lines without a
// colon are skipped. A repeated key replaces the earlier entry.
func Parse(r io.Reader) (*Lexicon, error) {
	lex := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		word, items, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		lex.Set(word, strings.Split(items, ","))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lex, nil
}

// Set stores related words under word, replacing any previous entry.
// Key and items are trimmed and lowercased; blank items are dropped and a
// blank key is ignored.
func (l *Lexicon) Set(word string, related []string) {
	key := normalize(word)
	if key == "" {
		return
	}

	items := make([]string, 0, len(related))
	for _, r := range related {
		if item := normalize(r); item != "" {
			items = append(items, item)
		}
	}

	if _, exists := l.entries[key]; !exists {
		l.order = append(l.order, key)
	}
	l.entries[key] = items
}

// Lookup returns the related words for word, or nil when it is absent.
// The returned slice is a copy.
func (l *Lexicon) Lookup(word string) []string {
	return slices.Clone(l.entries[normalize(word)])
}

// Contains reports whether word is a key.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.entries[normalize(word)]
	return ok
}

// Keys yields the stored keys in first-seen order. Each call starts a
// fresh iteration.
func (l *Lexicon) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range l.order {
			if !yield(k) {
				return
			}
		}
	}
}

// Len returns the number of keys.
func (l *Lexicon) Len() int {
	return len(l.order)
}

// Suggest returns up to limit keys that fuzzy-match word, best first.
func (l *Lexicon) Suggest(word string, limit int) []string {
	matches := fuzzy.Find(normalize(word), l.order)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// CanonicalMap maps every key and every related word to the key that owns
// it. Keys always map to themselves. A related word listed under several
// keys maps to the last of those keys in key order.
func (l *Lexicon) CanonicalMap() map[string]string {
	canon := make(map[string]string, len(l.order))
	for _, key := range l.order {
		for _, item := range l.entries[key] {
			if _, isKey := l.entries[item]; isKey {
				continue
			}
			canon[item] = key
		}
		canon[key] = key
	}
	return canon
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
