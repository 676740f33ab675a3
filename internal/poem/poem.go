// Package poem holds the three-line poem that substitution policies rewrite.
package poem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineCount is the fixed number of lines in a poem.
const LineCount = 3

// TrailingPunct lists the characters stripped from the end of a token
// before it is compared against lexicon words.
const TrailingPunct = ".,!?;:"

// Poem is a three-line text. It is a value type: assigning or passing a
// Poem copies its lines.
type Poem struct {
	lines [LineCount]string
}

// New builds a poem from explicit lines.
func New(line1, line2, line3 string) Poem {
	return Poem{lines: [LineCount]string{line1, line2, line3}}
}

// FromLines builds a poem from the first three entries of lines, trimming
// trailing whitespace. Missing lines are empty.
func FromLines(lines []string) Poem {
	var p Poem
	for i := 0; i < LineCount && i < len(lines); i++ {
		p.lines[i] = strings.TrimRightFunc(lines[i], unicode.IsSpace)
	}
	return p
}

// Parse reads at most three lines from r.
func Parse(r io.Reader) (Poem, error) {
	lines := make([]string, 0, LineCount)
	scanner := bufio.NewScanner(r)
	for len(lines) < LineCount && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Poem{}, fmt.Errorf("failed to read poem: %w", err)
	}
	return FromLines(lines), nil
}

// LoadFile reads a poem from the first three lines of a file.
func LoadFile(path string) (Poem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Poem{}, fmt.Errorf("failed to open poem: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Lines returns a copy of the poem's lines.
func (p Poem) Lines() []string {
	return p.lines[:]
}

// Line returns line i (0-based).
func (p Poem) Line(i int) string {
	return p.lines[i]
}

// Render joins the lines with newlines, without a trailing newline.
func (p Poem) Render() string {
	return strings.Join(p.lines[:], "\n")
}

func (p Poem) String() string {
	return p.Render()
}

// Clone returns an independent copy.
func (p Poem) Clone() Poem {
	return p
}

// Words returns every distinct word in the poem, lowercased with trailing
// punctuation removed, in order of first appearance.
func (p Poem) Words() []string {
	seen := make(map[string]bool)
	var words []string
	for _, line := range p.lines {
		for _, tok := range strings.Fields(line) {
			w := strings.ToLower(CleanToken(tok))
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			words = append(words, w)
		}
	}
	return words
}

// ReplaceWord swaps every token matching oldWord (case-insensitively, after
// trailing punctuation is removed) for newWord. A token that started with an
// uppercase letter gets a capitalized replacement; otherwise the
// replacement is lowercased. Stripped punctuation is put back. Each line is
// re-joined with single spaces.
func (p *Poem) ReplaceWord(oldWord, newWord string) {
	target := strings.ToLower(oldWord)
	for i, line := range p.lines {
		tokens := strings.Fields(line)
		for j, tok := range tokens {
			clean := CleanToken(tok)
			if strings.ToLower(clean) != target {
				continue
			}
			punct := tok[len(clean):]
			r, _ := utf8.DecodeRuneInString(tok)
			if unicode.IsUpper(r) {
				tokens[j] = Capitalize(newWord) + punct
			} else {
				tokens[j] = strings.ToLower(newWord) + punct
			}
		}
		p.lines[i] = strings.Join(tokens, " ")
	}
}

// CapitalizeLines uppercases the first character of each non-empty line and
// leaves the rest untouched.
func (p *Poem) CapitalizeLines() {
	for i, line := range p.lines {
		if line == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(line)
		p.lines[i] = string(unicode.ToUpper(r)) + line[size:]
	}
}

// CleanToken strips trailing punctuation from a whitespace-delimited token.
// Leading punctuation is kept.
func CleanToken(tok string) string {
	return strings.TrimRight(tok, TrailingPunct)
}

// Capitalize uppercases the first letter of word and lowercases the rest.
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
