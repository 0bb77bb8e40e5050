package analysis

import (
	"sync"
	"time"
)

// jobStore keeps async jobs in memory, evicting the oldest finished
// jobs beyond the retention limit.
type jobStore struct {
	mu        sync.Mutex
	jobs      map[string]*Job
	finished  []string // finished job ids, oldest first
	retention int
}

func newJobStore(retention int) *jobStore {
	return &jobStore{
		jobs:      make(map[string]*Job),
		retention: retention,
	}
}

func (s *jobStore) put(j *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[j.ID] = j
}

func (s *jobStore) drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, id)
}

// get returns a snapshot copy so callers never race with finish.
func (s *jobStore) get(id string) (*Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, false
	}
	cp := *j
	return &cp, true
}

func (s *jobStore) finish(id string, res *Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return
	}
	now := time.Now()
	j.FinishedAt = &now
	if err != nil {
		j.Status = JobFailed
		j.Error = err.Error()
	} else {
		j.Status = JobDone
		j.Result = res
	}
	s.finished = append(s.finished, id)
	for s.retention > 0 && len(s.finished) > s.retention {
		evict := s.finished[0]
		s.finished = s.finished[1:]
		delete(s.jobs, evict)
	}
}
