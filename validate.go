package syllabify

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// normalize uppercases every token. Tokens are not trimmed or split: a list
// element "K AE" stays a single (invalid) token.
func normalize(tokens []string) []string {
	norm := make([]string, len(tokens))
	for i, t := range tokens {
		norm[i] = strings.ToUpper(t)
	}
	return norm
}

// parsePhones checks that every token is an ARPABET consonant or a vowel with
// optional stress digit, and converts the tokens to phones.
func parsePhones(tokens []string, word string) ([]Phone, error) {
	phones := make([]Phone, len(tokens))
	for i, t := range tokens {
		p, ok := parsePhone(t)
		if !ok {
			return nil, &Error{
				Kind:       InvalidPhoneme,
				Word:       word,
				Phone:      t,
				Suggestion: suggestPhone(t),
			}
		}
		phones[i] = p
	}
	return phones, nil
}

// parsePhone parses a single uppercase token.
func parsePhone(token string) (Phone, bool) {
	if _, ok := categories[token]; ok {
		return Phone{Symbol: token, Stress: NoStress}, true
	}
	symbol, stress := splitStress(token)
	if stress == NoStress {
		return Phone{}, false
	}
	if _, ok := vowels[symbol]; !ok {
		return Phone{}, false // stress digits are only allowed on vowels
	}
	return Phone{Symbol: symbol, Stress: stress}, true
}

// ParsePhone converts a single ARPABET token, e.g. "ae1", to a Phone.
func ParsePhone(token string) (Phone, error) {
	t := strings.ToUpper(token)
	p, ok := parsePhone(t)
	if !ok {
		return Phone{}, &Error{Kind: InvalidPhoneme, Word: t, Phone: t, Suggestion: suggestPhone(t)}
	}
	return p, nil
}

// suggestPhone returns the unique phone symbol within edit distance 1 of
// token, if any.
func suggestPhone(token string) string {
	symbol, _ := splitStress(token)
	best, found := "", 0
	for sym := range categories {
		if fuzzy.LevenshteinDistance(symbol, sym) <= 1 {
			best = sym
			found++
		}
	}
	if found != 1 {
		return ""
	}
	return best
}
