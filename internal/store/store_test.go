package store

import (
	"testing"

	"github.com/akhilmohan/resume-wizard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_StartsEmpty(t *testing.T) {
	s := NewSession()
	assert.NotNil(t, s.Resume())
	assert.Nil(t, s.Job())
	assert.Nil(t, s.Optimized())
}

func TestUpdateResume(t *testing.T) {
	s := NewSession()
	s.UpdateResume(func(r *types.ResumeRecord) {
		r.Personal.FullName = "Anita Varma"
		r.Skills = append(r.Skills, "Go")
	})

	assert.Equal(t, "Anita Varma", s.Resume().Personal.FullName)
	assert.Equal(t, []string{"Go"}, s.Resume().Skills)
}

func TestSetJob_Supersedes(t *testing.T) {
	s := NewSession()
	s.SetJob(&types.JobRequirement{RawContent: "first", ExtractedKeywords: []string{"python"}})
	s.SetJob(&types.JobRequirement{RawContent: "second"})

	job := s.Job()
	require.NotNil(t, job)
	assert.Equal(t, "second", job.RawContent)
	assert.Empty(t, job.ExtractedKeywords, "replacement must not merge with the prior job")
}

func TestBeginOptimization_SingleFlight(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.BeginOptimization())
	assert.ErrorIs(t, s.BeginOptimization(), ErrBusy)

	s.EndOptimization()
	assert.NoError(t, s.BeginOptimization())
}

func TestFailureLeavesStateUntouched(t *testing.T) {
	s := NewSession()
	s.SetOptimized(&types.OptimizedResume{ATSScore: 88})

	// Simulate a failed optimization: slot claimed, error occurred, slot
	// released. The prior result must survive.
	require.NoError(t, s.BeginOptimization())
	s.EndOptimization()

	require.NotNil(t, s.Optimized())
	assert.Equal(t, 88, s.Optimized().ATSScore)
}

func TestReset(t *testing.T) {
	s := NewSession()
	s.UpdateResume(func(r *types.ResumeRecord) { r.Objective = "something" })
	s.SetJob(&types.JobRequirement{RawContent: "job"})
	s.SetOptimized(&types.OptimizedResume{ATSScore: 90})

	s.Reset()

	assert.Empty(t, s.Resume().Objective)
	assert.Nil(t, s.Job())
	assert.Nil(t, s.Optimized())
}
