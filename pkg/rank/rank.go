// Package rank orders candidates by a numeric key so the extremes can be
// picked out.
package rank

import (
	"cmp"
	"unicode/utf8"
)

// ByKey returns the items sorted ascending by key. The sort is an insertion
// sort: an item goes before the first existing item with a strictly larger
// key, so equal keys keep their input order.
func ByKey[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	ranked := make([]T, 0, len(items))
	keys := make([]K, 0, len(items))
	for _, item := range items {
		k := key(item)
		pos := len(ranked)
		for i, existing := range keys {
			if k < existing {
				pos = i
				break
			}
		}
		ranked = append(ranked, item)
		keys = append(keys, k)
		copy(ranked[pos+1:], ranked[pos:len(ranked)-1])
		copy(keys[pos+1:], keys[pos:len(keys)-1])
		ranked[pos] = item
		keys[pos] = k
	}
	return ranked
}

// Length is the ranking key for words: the number of characters.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Shortest returns the first word of the length ranking.
func Shortest(words []string) (string, bool) {
	ranked := ByKey(words, Length)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0], true
}

// Longest returns the last word of the length ranking. Among words tied for
// the greatest length that is the one appearing last.
func Longest(words []string) (string, bool) {
	ranked := ByKey(words, Length)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[len(ranked)-1], true
}
