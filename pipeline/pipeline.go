/*
Package pipeline syllabifies the entries of a pronunciation dictionary
concurrently.

Entries are read from an EntryReader, syllabified on a pool of workers and
handed to a Sink in input order. Syllabification failures are part of the
results, not errors of the pipeline, and are recorded whatever the mode of
the Syllabifier. The pipeline itself fails only if reading entries or the
sink fails, or if the context is cancelled.

	f, _ := os.Open("cmudict.dict")
	defer f.Close()
	summary, err := pipeline.Run(ctx, cmudict.NewReader(f), syllabify.New(syllabify.Strict),
		pipeline.Options{Workers: 8}, func(r pipeline.Result) error {
			fmt.Println(r.Entry.Word, strings.Join(r.Syllables, " - "))
			return nil
		})
*/
package pipeline

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/syllabify"
	"github.com/npillmayer/syllabify/cmudict"
)

// tracer writes to trace with key 'syllabify'
func tracer() tracing.Trace {
	return tracing.Select("syllabify")
}

// EntryReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	NextEntry() (cmudict.Entry, error)
}

// Result is the outcome of syllabifying one entry.
type Result struct {
	Index     int // position of the entry in the input stream
	Entry     cmudict.Entry
	Syllables []string
	Err       error // a *syllabify.Error, or nil
}

// Sink consumes results. It is called from a single goroutine, with
// results in input order. An error returned by Sink stops the pipeline.
type Sink func(Result) error

// Options configure a pipeline run.
type Options struct {
	Workers int // number of worker goroutines, defaults to GOMAXPROCS
	Queue   int // capacity of the job queue, defaults to 2 × Workers
}

// Summary counts the outcomes of a pipeline run.
type Summary struct {
	Entries     int
	Syllabified int
	Failures    map[syllabify.ErrorKind]int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d entries, %d syllabified, %d failed", s.Entries, s.Syllabified,
		s.Entries-s.Syllabified)
}

// Run syllabifies all entries of src with s and feeds the results to sink.
func Run(ctx context.Context, src EntryReader, s *syllabify.Syllabifier, opts Options,
	sink Sink) (Summary, error) {
	//
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Queue <= 0 {
		opts.Queue = 2 * opts.Workers
	}
	pool := NewWorkerPool(opts.Workers, opts.Queue)
	pool.Start(ctx)
	results := make(chan Result, opts.Queue)
	summary := Summary{Failures: make(map[syllabify.ErrorKind]int)}
	collected := make(chan error, 1)
	go func() {
		collected <- collect(results, sink, &summary, cancel)
	}()
	var readErr error
	for index := 0; ; index++ {
		entry, err := src.NextEntry()
		if err == io.EOF {
			break
		}
		if err != nil {
			readErr = fmt.Errorf("reading entry #%d: %w", index, err)
			break
		}
		i := index
		job := func(ctx context.Context) {
			r := syllabifyEntry(s, i, entry)
			select {
			case results <- r:
			case <-ctx.Done():
			}
		}
		if err = pool.Submit(ctx, job); err != nil {
			if ctx.Err() == nil {
				readErr = err
			}
			break
		}
	}
	pool.Close()
	close(results)
	sinkErr := <-collected
	switch {
	case readErr != nil:
		return summary, readErr
	case sinkErr != nil:
		return summary, sinkErr
	case parent.Err() != nil:
		return summary, parent.Err()
	}
	tracer().Infof("pipeline: %s", summary)
	return summary, nil
}

func syllabifyEntry(s *syllabify.Syllabifier, index int, entry cmudict.Entry) Result {
	r := Result{Index: index, Entry: entry}
	syllables, err := s.Segment(entry.Phonemes)
	if err != nil {
		r.Err = err
		return r
	}
	r.Syllables = make([]string, len(syllables))
	for i, syll := range syllables {
		r.Syllables[i] = syll.String()
	}
	return r
}

// collect re-orders results by index and passes them to sink. After a sink
// error it keeps draining results, so that workers never block.
func collect(results <-chan Result, sink Sink, summary *Summary, cancel context.CancelFunc) error {
	var sinkErr error
	pending := make(map[int]Result)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if sinkErr != nil {
				continue
			}
			summary.Entries++
			if r.Err == nil {
				summary.Syllabified++
			} else {
				summary.Failures[syllabify.KindOf(r.Err)]++
			}
			if err := sink(r); err != nil {
				sinkErr = fmt.Errorf("sink failed for %q: %w", r.Entry.Word, err)
				tracer().Errorf("pipeline: %v", sinkErr)
				cancel()
			}
		}
	}
	return sinkErr
}
