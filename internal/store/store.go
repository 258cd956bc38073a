// Package store holds the single session's in-memory state: the resume being
// authored, the current job requirement and the last successful optimization
// result. There is no persistence; a session's state dies with the process.
package store

import (
	"errors"
	"sync"

	"github.com/akhilmohan/resume-wizard/internal/types"
)

// ErrBusy is returned when an optimization is requested while another is
// already in flight. At most one optimization may run at a time; requests are
// rejected, not queued.
var ErrBusy = errors.New("an optimization is already in progress")

// Session owns the resume/job/optimized-resume triple. All access goes
// through its methods; the mutex keeps the HTTP surface safe even though the
// intended use is a single interactive client.
type Session struct {
	mu        sync.Mutex
	resume    *types.ResumeRecord
	job       *types.JobRequirement
	optimized *types.OptimizedResume
	busy      bool
}

// NewSession creates a session holding an empty resume.
func NewSession() *Session {
	return &Session{resume: types.NewResumeRecord()}
}

// Resume returns the current resume record.
func (s *Session) Resume() *types.ResumeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume
}

// SetResume replaces the whole resume record.
func (s *Session) SetResume(resume *types.ResumeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = resume
}

// UpdateResume applies a field-level mutation to the resume under the lock.
func (s *Session) UpdateResume(mutate func(*types.ResumeRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(s.resume)
}

// Job returns the current job requirement, nil when none was uploaded.
func (s *Session) Job() *types.JobRequirement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job
}

// SetJob replaces the job requirement. A new upload fully supersedes the
// previous value; there is no merging.
func (s *Session) SetJob(job *types.JobRequirement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = job
}

// Optimized returns the last successful optimization result, nil when none.
func (s *Session) Optimized() *types.OptimizedResume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.optimized
}

// SetOptimized stores a completed optimization result.
func (s *Session) SetOptimized(optimized *types.OptimizedResume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.optimized = optimized
}

// BeginOptimization claims the single optimization slot. It fails with
// ErrBusy when one is already in flight. Callers must pair a successful
// claim with EndOptimization.
func (s *Session) BeginOptimization() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

// EndOptimization releases the optimization slot. A failed optimization
// leaves all prior state untouched; only the busy flag is reset.
func (s *Session) EndOptimization() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// Reset restores the empty state: fresh resume, no job, no optimization
// result. The busy flag is left alone so an in-flight optimization cannot be
// silently orphaned.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = types.NewResumeRecord()
	s.job = nil
	s.optimized = nil
}
