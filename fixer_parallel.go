package respell

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Input names one source buffer for FixBatch.
type Input struct {
	Path string
	Src  []byte
}

// FixBatch corrects independent source buffers concurrently over a
// bounded worker pool (NumCPU workers, capped by the batch size). All
// workers share the Fixer's immutable table with no extra
// synchronization. Results come back in input order; entries for skipped
// inputs (unsupported or filtered-out languages) are nil.
//
// Per-input errors do not stop the batch: the remaining inputs are still
// processed, and the first error comes back wrapped with a count.
// Cancelling ctx abandons inputs not yet started.
func (f *Fixer) FixBatch(ctx context.Context, inputs []Input) ([]*FileResult, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	numWorkers := min(runtime.NumCPU(), len(inputs))
	if numWorkers < 1 {
		numWorkers = 1
	}

	type work struct {
		idx int
		in  Input
	}
	workCh := make(chan work, len(inputs))
	for i, in := range inputs {
		workCh <- work{idx: i, in: in}
	}
	close(workCh)

	type result struct {
		idx int
		res *FileResult
		err error
	}
	resultCh := make(chan result, len(inputs))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range workCh {
				if err := ctx.Err(); err != nil {
					resultCh <- result{idx: w.idx, err: fmt.Errorf("fix %s: %w", w.in.Path, err)}
					continue
				}
				res, err := f.FixSource(ctx, w.in.Path, w.in.Src)
				resultCh <- result{idx: w.idx, res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]*FileResult, len(inputs))
	var errs []error
	for r := range resultCh {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		results[r.idx] = r.res
	}

	if len(errs) > 0 {
		return results, fmt.Errorf("batch had %d error(s): %w", len(errs), errs[0])
	}
	return results, nil
}
