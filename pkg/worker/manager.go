// Package worker fans a batch of (URL, target name) units out over a bounded
// pool. Workers never touch shared state: each returns its record and log
// line on a results channel, and the single coordinating goroutine does all
// logging and progress accounting.
package worker

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"bio-scraper/pkg/domain"
)

// BioScraper processes one unit. *scraper.Scraper satisfies this; tests
// substitute stubs.
type BioScraper interface {
	Scrape(ctx context.Context, url, targetName string) (domain.BioRecord, error)
}

// Result pairs a finished record with the zero-based input index it came
// from. Results arrive in completion order; callers needing input order
// re-sort with SortByIndex.
type Result struct {
	Index  int
	Record domain.BioRecord
	Log    string
	Err    error
}

// ProgressFunc is invoked from the coordinating goroutine after each unit
// finishes.
type ProgressFunc func(done, total int)

// Manager distributes input rows to workers and aggregates their results.
type Manager struct {
	workerCount int
	scraper     BioScraper
	logger      *zap.Logger
	progress    ProgressFunc
}

// NewManager creates a new manager. logger and progress may be nil.
func NewManager(workerCount int, scraper BioScraper, logger *zap.Logger, progress ProgressFunc) *Manager {
	if workerCount < 1 {
		workerCount = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		workerCount: workerCount,
		scraper:     scraper,
		logger:      logger,
		progress:    progress,
	}
}

type job struct {
	index int
	row   domain.InputRow
}

// Process scrapes all rows concurrently and returns one result per input
// row, in completion order. Per-unit failures are logged and kept as
// failure-marked records; they never abort the batch.
func (m *Manager) Process(ctx context.Context, rows []domain.InputRow) []Result {
	jobChan := make(chan job, len(rows))
	for i, row := range rows {
		jobChan <- job{index: i, row: row}
	}
	close(jobChan)

	resultsChan := make(chan Result, len(rows))

	var wg sync.WaitGroup
	for i := 0; i < m.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				resultsChan <- m.runJob(ctx, j)
			}
		}()
	}

	// Close results channel when all workers finish
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Single reader: all log and progress mutation happens here.
	results := make([]Result, 0, len(rows))
	for res := range resultsChan {
		if res.Err != nil {
			m.logger.Warn(res.Log, zap.Error(res.Err))
		} else {
			m.logger.Info(res.Log)
		}
		results = append(results, res)
		if m.progress != nil {
			m.progress(len(results), len(rows))
		}
	}

	return results
}

// runJob executes one unit and composes its log line. It only returns; it
// never logs or mutates anything shared.
func (m *Manager) runJob(ctx context.Context, j job) Result {
	rec, err := m.scraper.Scrape(ctx, j.row.URL, j.row.TargetName)
	res := Result{Index: j.index, Record: rec, Err: err}
	if err != nil {
		res.Log = fmt.Sprintf("[WARN] Fetch failed for %s", j.row.URL)
	} else {
		res.Log = fmt.Sprintf("Scraped %s from %s", j.row.TargetName, j.row.URL)
	}
	return res
}

// SortByIndex reorders completion-ordered results back into input order.
func SortByIndex(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
}

// Records projects results into their records, preserving slice order.
func Records(results []Result) []domain.BioRecord {
	records := make([]domain.BioRecord, len(results))
	for i, res := range results {
		records[i] = res.Record
	}
	return records
}
