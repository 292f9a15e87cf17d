package convert

import (
	"context"
	"sync"

	"github.com/kozaktomas/img2pdf/internal/constants"
	"github.com/kozaktomas/img2pdf/internal/source"
)

// Report collects the results of a run in source order.
type Report struct {
	Results []Result
}

// Count returns the number of results with status s.
func (r Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failed returns the results that failed.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}

// Err returns ErrNoItemsProcessed when no source was converted.
func (r Report) Err() error {
	if r.Count(StatusConverted) == 0 {
		return ErrNoItemsProcessed
	}
	return nil
}

// ConvertAll converts sources with at most workers conversions in flight.
// A failing source never stops the others. Sources that have not started
// when ctx is cancelled are reported as cancelled. onDone, if set, is called
// once per source as it finishes; calls are serialized.
func (c *Converter) ConvertAll(ctx context.Context, sources []source.Source, workers int, onDone func(Result)) Report {
	if workers < 1 {
		workers = constants.WorkerPoolSize
	}

	var (
		results = make([]Result, len(sources))
		doneMu  sync.Mutex
		wg      sync.WaitGroup
		sem     = make(chan struct{}, workers)
	)

	for i, src := range sources {
		wg.Add(1)
		go func(i int, src source.Source) {
			defer wg.Done()

			var res Result
			select {
			case sem <- struct{}{}:
				res = c.Convert(ctx, src)
				<-sem
			case <-ctx.Done():
				res = Result{Source: src.Name(), Kind: src.Kind(), Status: StatusCancelled, Err: ctx.Err()}
			}

			results[i] = res
			if onDone != nil {
				doneMu.Lock()
				onDone(res)
				doneMu.Unlock()
			}
		}(i, src)
	}
	wg.Wait()

	return Report{Results: results}
}
