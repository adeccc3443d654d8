package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/ironsheep/mpc-bleed/internal/bleed"
)

// Result describes the outcome of processing a single input file.
type Result struct {
	// Path is the input file.
	Path string `json:"path"`

	// OutputPath is where the processed copy was (or would have been)
	// written.
	OutputPath string `json:"output_path"`

	// Err is nil on success. Decode and encode failures arrive as
	// *bleed.DecodeError and *bleed.EncodeError respectively.
	Err error `json:"-"`
}

// Summary aggregates the outcomes of a batch run.
type Summary struct {
	// Succeeded counts files whose processed copy was written.
	Succeeded int `json:"succeeded"`

	// Failed counts files that could not be processed.
	Failed int `json:"failed"`

	// Skipped counts files never attempted because the run was cancelled.
	Skipped int `json:"skipped"`
}

// Options configures a batch run.
type Options struct {
	// Workers is how many files are processed at once. Values below 2
	// select the sequential path.
	Workers int

	// OnResult, when non-nil, receives each file's outcome as it
	// completes. It is always invoked from a single goroutine.
	OnResult func(Result)
}

// Run processes every path into outputDir and reports aggregate counts.
//
// Files are processed independently: a failure is recorded in the summary
// (and delivered via Options.OnResult) without affecting any other file.
// Cancelling ctx stops new files from being dispatched; files already in
// flight finish, their outputs stay on disk, and everything never attempted
// is counted as skipped.
//
// With Options.Workers above 1 the paths are spread over that many
// goroutines. Sequential runs handle paths in the order given; pooled runs
// complete in whatever order the workers finish.
func Run(ctx context.Context, paths []string, outputDir string, opts Options) Summary {
	if opts.Workers > 1 {
		return runPool(ctx, paths, outputDir, opts)
	}
	return runSequential(ctx, paths, outputDir, opts)
}

func runSequential(ctx context.Context, paths []string, outputDir string, opts Options) Summary {
	var sum Summary
	claimed := make(map[string]string, len(paths))

	for i, path := range paths {
		if ctx.Err() != nil {
			sum.Skipped = len(paths) - i
			break
		}

		out, err := claim(path, outputDir, claimed)
		if err == nil {
			err = bleed.Process(path, outputDir)
		}
		record(&sum, Result{Path: path, OutputPath: out, Err: err}, opts.OnResult)
	}

	return sum
}

func runPool(ctx context.Context, paths []string, outputDir string, opts Options) Summary {
	jobs := make(chan string)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- Result{
					Path:       path,
					OutputPath: bleed.OutputPath(path, outputDir),
					Err:        bleed.Process(path, outputDir),
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect on a separate goroutine so dispatching below can never
	// deadlock against workers waiting to deliver results.
	done := make(chan Summary, 1)
	go func() {
		var sum Summary
		for res := range results {
			record(&sum, res, opts.OnResult)
		}
		done <- sum
	}()

	claimed := make(map[string]string, len(paths))
	skipped := 0
dispatch:
	for i, path := range paths {
		if ctx.Err() != nil {
			skipped = len(paths) - i
			break
		}

		out, err := claim(path, outputDir, claimed)
		if err != nil {
			results <- Result{Path: path, OutputPath: out, Err: err}
			continue
		}

		select {
		case jobs <- path:
		case <-ctx.Done():
			skipped = len(paths) - i
			break dispatch
		}
	}
	close(jobs)

	sum := <-done
	sum.Skipped = skipped
	return sum
}

// claim reserves the output path for an input. Outputs are flat, so two
// inputs can share a base name; the second claim fails, which keeps any
// output path from being written twice in one run.
func claim(path, outputDir string, claimed map[string]string) (string, error) {
	out := bleed.OutputPath(path, outputDir)
	if prev, ok := claimed[out]; ok {
		return out, fmt.Errorf("output %s already claimed by %s", out, prev)
	}
	claimed[out] = path
	return out, nil
}

func record(sum *Summary, res Result, onResult func(Result)) {
	if res.Err != nil {
		sum.Failed++
	} else {
		sum.Succeeded++
	}
	if onResult != nil {
		onResult(res)
	}
}
