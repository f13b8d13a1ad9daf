package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/syllabify"
	"github.com/npillmayer/syllabify/corpus"
)

const testDict = `;;; a tiny dictionary
CAT  K AE1 T
HANGMAN  HH AE1 NG M AE2 N
NGO  NG OW1
MISTREAT  M IH S T R IY1 T
MISTREAT(1)  M IH0 S T R IY1 T
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPhones(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), config{}, []string{"hh", "ae1", "ng", "m", "ae2", "n"}, &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "HH AE1 NG - M AE2 N\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunPhonesFailure(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), config{}, []string{"NG", "OW1"}, &out)
	if !errors.Is(err, syllabify.ErrBadOnset) {
		t.Fatalf("expected bad onset, got %v", err)
	}
	out.Reset()
	if err = run(context.Background(), config{tolerant: true}, []string{"NG", "OW1"}, &out); err != nil {
		t.Fatalf("tolerant mode should not fail, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("tolerant mode should not print anything, got %q", out.String())
	}
}

func TestRunNeedsInput(t *testing.T) {
	if err := run(context.Background(), config{}, nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error without phones and dictionary")
	}
}

func TestRunDictWithExceptions(t *testing.T) {
	cfg := config{
		dict:       writeFile(t, "test.dict", testDict),
		exceptions: writeFile(t, "exceptions.txt", "M IH S - T R IY1 T\n"),
		workers:    2,
	}
	var out bytes.Buffer
	if err := run(context.Background(), cfg, nil, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"CAT\tK AE1 T",
		"HANGMAN\tHH AE1 NG - M AE2 N",
		"NGO\t! ",
		"MISTREAT\tM IH S - T R IY1 T",
		"MISTREAT(1)\tM IH0 - S T R IY1 T",
		"5 entries, 4 syllabified, 1 failed",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if !strings.HasPrefix(lines[i], want[i]) {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestRunDictIntoDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corpus.db")
	cfg := config{dict: writeFile(t, "test.dict", testDict), db: dbPath}
	var out bytes.Buffer
	if err := run(context.Background(), cfg, nil, &out); err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	records, err := corpus.Lookup(conn, "NGO")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ErrorKind != syllabify.BadOnset.String() {
		t.Fatalf("expected failed NGO record, got %+v", records)
	}
	records, err = corpus.Lookup(conn, "MISTREAT")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[1].Variant != 1 {
		t.Fatalf("expected two MISTREAT variants, got %+v", records)
	}
	stats, err := corpus.CollectStats(conn)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 5 || stats.Syllabified != 4 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestTraceSelectorKeepsTracers(t *testing.T) {
	sel := &traceSelector{}
	sel.Select("syllabify").SetTraceLevel(tracing.LevelDebug)
	if sel.Select("syllabify") != sel.Select("syllabify") {
		t.Fatalf("expected the same tracer for the same key")
	}
	if l := sel.Select("syllabify").GetTraceLevel(); l != tracing.LevelDebug {
		t.Fatalf("trace level was not kept, got %v", l)
	}
	if l := sel.Select("other").GetTraceLevel(); l == tracing.LevelDebug {
		t.Fatalf("trace level of another key should be unaffected")
	}
}
