/*
Package cmudict reads pronunciation dictionaries in the format of the CMU
pronouncing dictionary.

Every entry is a line with a word followed by its ARPABET pronunciation:

	;;; comments start with three semicolons
	CAT  K AE1 T
	HANGMAN  HH AE1 NG M AE2 N
	READ  R EH1 D
	READ(1)  R IY1 D
	ZYWICKI  Z IH0 W IH1 K IY0 # foreign name

Alternative pronunciations carry a variant suffix in parentheses. Newer
versions of the dictionary append comments after a '#'.
*/
package cmudict

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one pronunciation of a word.
type Entry struct {
	Word     string
	Variant  int      // 0 for the primary pronunciation
	Phonemes []string // ARPABET tokens as found in the dictionary
}

// Pronunciation returns the phonemes of e, separated by single spaces.
func (e Entry) Pronunciation() string {
	return strings.Join(e.Phonemes, " ")
}

// Reader streams entries from a CMUdict-formatted source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	entry   Entry
}

// NewReader creates a Reader for r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// Next returns the next entry as (word, phonemes).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []string, error) {
	e, err := r.NextEntry()
	if err != nil {
		return "", nil, err
	}
	return e.Word, e.Phonemes, nil
}

// NextEntry returns the next entry including its variant number.
// It returns io.EOF when exhausted.
func (r *Reader) NextEntry() (Entry, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if strings.HasPrefix(line, ";;;") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return Entry{}, fmt.Errorf("line %d: no pronunciation for %q", r.line, fields[0])
		}
		word, variant, err := splitVariant(fields[0])
		if err != nil {
			return Entry{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		r.entry = Entry{
			Word:     word,
			Variant:  variant,
			Phonemes: fields[1:],
		}
		return r.entry, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, err
	}
	return Entry{}, io.EOF
}

// Line returns the number of the line most recently read.
func (r *Reader) Line() int {
	return r.line
}

// splitVariant splits "READ(1)" into ("READ", 1).
func splitVariant(token string) (string, int, error) {
	open := strings.IndexByte(token, '(')
	if open <= 0 || !strings.HasSuffix(token, ")") {
		return token, 0, nil
	}
	n, err := strconv.Atoi(token[open+1 : len(token)-1])
	if err != nil || n < 0 {
		return "", 0, fmt.Errorf("malformed variant in %q", token)
	}
	return token[:open], n, nil
}

// ReadAll reads all entries from r.
func ReadAll(r io.Reader) ([]Entry, error) {
	reader := NewReader(r)
	var entries []Entry
	for {
		e, err := reader.NextEntry()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
}
