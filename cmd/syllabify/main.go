// Command syllabify splits ARPABET pronunciations into syllables.
//
// With phones as arguments it syllabifies a single pronunciation:
//
//	syllabify HH AE1 NG M AE2 N
//
// With -dict it syllabifies every entry of a CMUdict-format dictionary and
// prints the results, or stores them in an SQLite database given by -db.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/syllabify"
	"github.com/npillmayer/syllabify/cmudict"
	"github.com/npillmayer/syllabify/corpus"
	"github.com/npillmayer/syllabify/exceptions"
	"github.com/npillmayer/syllabify/pipeline"
)

type config struct {
	dict       string
	db         string
	exceptions string
	tolerant   bool
	workers    int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dict, "dict", "", "Path to a CMUdict-format dictionary to syllabify")
	flag.StringVar(&cfg.db, "db", "", "Path to SQLite database to store results of -dict in")
	flag.StringVar(&cfg.exceptions, "exceptions", "", "Path to a file of explicit syllabifications")
	flag.BoolVar(&cfg.tolerant, "tolerant", false, "Do not report pronunciations which cannot be syllabified")
	flag.IntVar(&cfg.workers, "workers", 0, "Number of workers for -dict (default: number of CPUs)")
	verbose := flag.Bool("v", false, "Verbose tracing output")
	flag.Parse()

	tracing.SetTraceSelector(&traceSelector{})
	if *verbose {
		tracing.Select("syllabify").SetTraceLevel(tracing.LevelDebug)
	} else {
		tracing.Select("syllabify").SetTraceLevel(tracing.LevelError)
	}

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, flag.Args(), os.Stdout); err != nil {
		log.Fatalf("syllabify: %v", err)
	}
}

// traceSelector hands out one Go-logger tracer per key, created on first use.
type traceSelector struct {
	mu      sync.Mutex
	tracers map[string]tracing.Trace
}

func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	if sel.tracers == nil {
		sel.tracers = make(map[string]tracing.Trace)
	}
	t, ok := sel.tracers[key]
	if !ok {
		t = gologadapter.New()
		sel.tracers[key] = t
	}
	return t
}

func run(ctx context.Context, cfg config, phones []string, out io.Writer) error {
	mode := syllabify.Strict
	if cfg.tolerant {
		mode = syllabify.Tolerant
	}
	s := syllabify.New(mode)
	if cfg.exceptions != "" {
		f, err := os.Open(cfg.exceptions)
		if err != nil {
			return fmt.Errorf("failed to open exceptions: %w", err)
		}
		err = exceptions.LoadExceptions(s, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to load exceptions: %w", err)
		}
	}
	if cfg.dict == "" {
		if len(phones) == 0 {
			return fmt.Errorf("please provide phones or a -dict")
		}
		return syllabifyPhones(s, phones, out)
	}
	if len(phones) > 0 {
		return fmt.Errorf("phone arguments cannot be combined with -dict")
	}
	return syllabifyDict(ctx, s, cfg, out)
}

func syllabifyPhones(s *syllabify.Syllabifier, phones []string, out io.Writer) error {
	syllables, err := s.Syllabify(phones)
	if err != nil {
		return err
	}
	if syllables == nil { // tolerant mode, diagnostic is traced
		return nil
	}
	_, err = fmt.Fprintln(out, strings.Join(syllables, " - "))
	return err
}

func syllabifyDict(ctx context.Context, s *syllabify.Syllabifier, cfg config, out io.Writer) error {
	f, err := os.Open(cfg.dict)
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()
	opts := pipeline.Options{Workers: cfg.workers}
	if cfg.db == "" {
		summary, err := pipeline.Run(ctx, cmudict.NewReader(f), s, opts, printer(out, cfg.tolerant))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", summary)
		return err
	}

	conn, err := sql.Open("sqlite3", cfg.db)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer conn.Close()
	if err := corpus.InitDB(conn); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	summary, err := pipeline.Run(ctx, cmudict.NewReader(f), s, opts, func(r pipeline.Result) error {
		_, err := corpus.SaveEntry(tx, recordOf(r))
		return err
	})
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}
	stats, err := corpus.CollectStats(conn)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s; database %s holds %d entries, %.2f syllables per entry\n",
		summary, cfg.db, stats.Entries, stats.SyllablesPerEntry())
	return err
}

// printer writes one line per entry, failures marked with '!'.
func printer(out io.Writer, tolerant bool) pipeline.Sink {
	return func(r pipeline.Result) error {
		word := r.Entry.Word
		if r.Entry.Variant > 0 {
			word = fmt.Sprintf("%s(%d)", word, r.Entry.Variant)
		}
		var err error
		switch {
		case r.Err == nil:
			_, err = fmt.Fprintf(out, "%s\t%s\n", word, strings.Join(r.Syllables, " - "))
		case !tolerant:
			_, err = fmt.Fprintf(out, "%s\t! %v\n", word, r.Err)
		}
		return err
	}
}

func recordOf(r pipeline.Result) corpus.Record {
	rec := corpus.Record{
		Word:          r.Entry.Word,
		Variant:       r.Entry.Variant,
		Pronunciation: r.Entry.Pronunciation(),
		Syllables:     r.Syllables,
	}
	if r.Err != nil {
		rec.ErrorKind = syllabify.KindOf(r.Err).String()
		rec.ErrorMessage = r.Err.Error()
	}
	return rec
}
