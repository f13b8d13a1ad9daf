package syllabify

import "strings"

// IsNucleus is true if token is a vowel, optionally followed by a single
// stress digit 0, 1 or 2. Case is ignored.
//
//	"AH", "ah1", "Er0" => true
//	"AH3", "AH12", "K" => false
func IsNucleus(token string) bool {
	symbol, _ := splitStress(strings.ToUpper(token))
	_, ok := vowels[symbol]
	return ok
}

// splitStress separates a trailing stress digit from an uppercase token.
// Tokens without a stress digit are returned unchanged with NoStress.
func splitStress(token string) (string, Stress) {
	n := len(token)
	if n < 2 {
		return token, NoStress
	}
	switch token[n-1] {
	case '0', '1', '2':
		return token[:n-1], Stress(token[n-1] - '0')
	}
	return token, NoStress
}
