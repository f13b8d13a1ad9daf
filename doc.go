/*
Package syllabify splits ARPABET pronunciations into syllables.

Input is a sequence of ARPABET phones as found in the CMU pronouncing
dictionary, e.g. "HH AE NG M AE N". Vowels may carry a stress digit (0, 1 or 2),
which is preserved in the output. Syllabification follows the rules of
General American English phonotactics:

  - every vowel is the nucleus of exactly one syllable
  - consonants between two vowels are first assigned to the onset of the
    following syllable (maximal onset principle)
  - illegal onsets are repaired by moving consonants, one at a time, into the
    coda of the preceding syllable
  - the resulting codas are checked against a table of legal coda clusters,
    including clusters extended by an inflectional /s/, /z/, /t/ or /d/.

Example:

	syllabify.SyllabifyString("HH AE NG M AE N", syllabify.Strict)
	// => [ "HH AE NG", "M AE N" ]

Pronunciations which cannot be syllabified by these rules are rejected as a
whole; there are no partial results. In Strict mode the caller receives an
*Error describing the reason, in Tolerant mode an empty result.

Reading dictionaries, storing results and evaluating them is done by the
sub-packages cmudict, exceptions, pipeline, corpus and evaluate.

Further Reading

	https://en.wikipedia.org/wiki/English_phonology#Syllable_structure
	http://www.speech.cs.cmu.edu/cgi-bin/cmudict

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package syllabify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'syllabify'
func tracer() tracing.Trace {
	return tracing.Select("syllabify")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
