package exceptions

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/syllabify"
)

// Reader streams explicit syllabifications, one pronunciation per line with
// syllables separated by a dash:
//
//	# compounds
//	S W IY P - S T EY K S
//	M IH S - T R IY T
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadExceptions parses exception data from reader and adds all entries
// to the syllabifier.
func LoadExceptions(s *syllabify.Syllabifier, reader io.Reader) error {
	return s.LoadExceptions(NewReader(reader))
}

// NewReader creates a Reader for exception data in reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (pronunciation, syllables).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "-")
		syllables := make([]string, 0, len(parts))
		for _, part := range parts {
			syll := strings.Join(strings.Fields(part), " ")
			if syll == "" {
				return "", nil, fmt.Errorf("line %d: empty syllable in %q", r.line, line)
			}
			syllables = append(syllables, syll)
		}
		pron := strings.Join(syllables, " ")
		return pron, syllables, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}
