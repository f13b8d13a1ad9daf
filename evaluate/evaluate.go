/*
Package evaluate scores predicted phonetic transcriptions against reference
transcriptions.

Transcriptions are space-separated phone sequences in ARPABET, e.g.
"HH AH0 L OW1". Phones are compared as written, so stress digits count.
*/
package evaluate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTranscriptions is returned when there is nothing to score.
var ErrNoTranscriptions = errors.New("no transcriptions to score")

type trigram [3]string

// trigrams collects the set of consecutive phone triples of a transcription.
// Transcriptions with less than three phones have no trigrams.
func trigrams(transcription string) map[trigram]struct{} {
	phones := strings.Fields(transcription)
	set := make(map[trigram]struct{})
	for i := 2; i < len(phones); i++ {
		set[trigram{phones[i-2], phones[i-1], phones[i]}] = struct{}{}
	}
	return set
}

// jaccardDistance is 1 − |a ∩ b| / |a ∪ b|. Two empty sets have distance 0.
func jaccardDistance(a, b map[trigram]struct{}) float64 {
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(union-inter) / float64(union)
}

// TrigramDistance is the Jaccard distance between the phone-trigram sets of
// a single prediction and its target.
func TrigramDistance(prediction, target string) float64 {
	return jaccardDistance(trigrams(prediction), trigrams(target))
}

// TrigramJaccardDistance returns the mean trigram Jaccard distance over
// pairs of predictions and targets. 0 means every prediction matches its
// target trigram-wise, 1 means no pair shares a single trigram.
func TrigramJaccardDistance(predictions, targets []string) (float64, error) {
	if len(predictions) != len(targets) {
		return 0, fmt.Errorf("predictions and targets differ in length: %d ≠ %d",
			len(predictions), len(targets))
	}
	if len(targets) == 0 {
		return 0, ErrNoTranscriptions
	}
	total := 0.0
	for i := range targets {
		total += TrigramDistance(predictions[i], targets[i])
	}
	return total / float64(len(targets)), nil
}
