// Package wordchain implements the nối-từ cooperative word-chaining
// game against a bot-controlled opponent.
package wordchain

import (
	"bufio"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Dictionary is the set of playable words, loaded once at startup from
// a newline-delimited file of lowercase words/phrases.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

// NewDictionary builds a dictionary from a word list. Entries are
// lowercased and de-duplicated; blank entries are dropped.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := d.set[w]; ok {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	return d
}

// LoadDictionary reads the word file. A missing file yields a nil
// dictionary (the game reports unavailability instead of crashing).
func LoadDictionary(path string) *Dictionary {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Dictionary file unavailable, word-chain game disabled")
		return nil
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed reading dictionary, word-chain game disabled")
		return nil
	}

	d := NewDictionary(words)
	log.Info().Int("words", d.Len()).Str("path", path).Msg("Dictionary loaded")
	return d
}

// Len returns the number of dictionary entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Contains reports whether a word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.set[word]
	return ok
}

// Random returns a uniformly random dictionary entry.
func (d *Dictionary) Random() string {
	return d.words[rand.Intn(len(d.words))]
}

// Continuations returns all unused entries whose leading syllable
// matches the given syllable.
func (d *Dictionary) Continuations(syllable string, used map[string]bool) []string {
	var out []string
	for _, w := range d.words {
		if used[w] {
			continue
		}
		if FirstSyllable(w) == syllable {
			out = append(out, w)
		}
	}
	return out
}
