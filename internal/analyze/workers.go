package analyze

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/source"
)

// DefaultWorkers bounds concurrent loads in a batch.
const DefaultWorkers = 4

// Job is one input reference to load.
type Job struct {
	Index int
	Ref   string
}

// Result is a loaded input. Error is set when loading failed.
type Result struct {
	Index    int
	Ref      string
	Document *models.Document
	Error    error
}

// Text returns the plain text of a successfully loaded input.
func (r Result) Text() string {
	if r.Document == nil {
		return ""
	}
	return r.Document.ToPlainText()
}

// LoadAll loads refs with a pool of workers. Results come back in input order.
func LoadAll(ctx context.Context, logger *slog.Logger, loader *source.Loader, kind source.Kind, refs []string, workers int) []Result {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if workers > len(refs) {
		workers = len(refs)
	}

	logger.Debug("Starting load phase", "inputs", len(refs), "workers", workers)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(refs))
	results := make(chan Result, len(refs))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, loader, kind, &wg, jobs, results)
	}

	for i, ref := range refs {
		jobs <- Job{Index: i, Ref: ref}
	}
	close(jobs)

	wg.Wait()
	close(results)

	ordered := make([]Result, len(refs))
	for result := range results {
		ordered[result.Index] = result
	}
	return ordered
}

func worker(ctx context.Context, id int, logger *slog.Logger, loader *source.Loader, kind source.Kind, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		result := Result{Index: job.Index, Ref: job.Ref}
		if err := ctx.Err(); err != nil {
			result.Error = err
			results <- result
			continue
		}

		doc, err := loader.Load(ctx, job.Ref, kind)
		if err != nil {
			logger.Error("Error loading input", "worker_id", id, "input", job.Ref, "error", err)
			result.Error = err
		} else {
			logger.Debug("Worker loaded input", "worker_id", id, "input", job.Ref)
			result.Document = doc
		}
		results <- result
	}
}
