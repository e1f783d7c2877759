package server

import (
	"sync"

	"github.com/google/uuid"

	"bio-scraper/pkg/domain"
)

// Job status values reported to clients.
const (
	statusRunning = "running"
	statusDone    = "done"
)

// jobState tracks one batch. Progress and logs are written from the job's
// coordinating goroutine only; the mutex covers reads from HTTP handlers.
type jobState struct {
	ID string

	mu      sync.Mutex
	status  string
	done    int
	total   int
	logs    []string
	records []domain.BioRecord
}

func (j *jobState) setProgress(done int) {
	j.mu.Lock()
	j.done = done
	j.mu.Unlock()
}

func (j *jobState) appendLog(line string) {
	j.mu.Lock()
	j.logs = append(j.logs, line)
	j.mu.Unlock()
}

func (j *jobState) finish(records []domain.BioRecord) {
	j.mu.Lock()
	j.records = records
	j.status = statusDone
	j.mu.Unlock()
}

func (j *jobState) snapshot() (status string, done, total int, logs []string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	logs = make([]string, len(j.logs))
	copy(logs, j.logs)
	return j.status, j.done, j.total, logs
}

func (j *jobState) results() ([]domain.BioRecord, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.records, j.status == statusDone
}

// jobStore is the in-memory job registry.
type jobStore struct {
	mu   sync.RWMutex
	jobs map[string]*jobState
}

func newJobStore() *jobStore {
	return &jobStore{jobs: map[string]*jobState{}}
}

func (s *jobStore) create(total int) *jobState {
	j := &jobState{
		ID:     uuid.NewString(),
		status: statusRunning,
		total:  total,
	}
	s.mu.Lock()
	s.jobs[j.ID] = j
	s.mu.Unlock()
	return j
}

func (s *jobStore) get(id string) (*jobState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	return j, ok
}
