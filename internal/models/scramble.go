package models

import (
	"context"
	"math/rand/v2"
	"strings"
)

// ScrambleModel shuffles the interior letters of each word, keeping the
// first and last letters plus sentence boundaries intact. Revision output
// is visibly different from its input while preserving shape, which makes
// it useful for exercising the rewrite pipeline end to end.
type ScrambleModel struct{}

// Revise implements Model by scrambling words sentence by sentence.
func (m *ScrambleModel) Revise(_ context.Context, req Request) (string, error) {
	text := strings.ReplaceAll(strings.TrimSpace(req.Paragraph), "\n", " ")

	sentences := strings.Split(text, ". ")
	for i, sentence := range sentences {
		words := strings.Split(sentence, " ")
		for j, word := range words {
			words[j] = scrambleWord(word)
		}
		sentences[i] = strings.Join(words, " ")
	}

	return strings.Join(sentences, ". "), nil
}

// scrambleWord shuffles a word's interior runes. Words of three or fewer
// characters have no interior worth shuffling.
func scrambleWord(word string) string {
	runes := []rune(word)
	if len(runes) <= 3 {
		return word
	}

	interior := runes[1 : len(runes)-1]
	rand.Shuffle(len(interior), func(a, b int) {
		interior[a], interior[b] = interior[b], interior[a]
	})

	return string(runes)
}
