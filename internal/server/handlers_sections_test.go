package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/akhilmohan/resume-wizard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutPersonal(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(s, http.MethodPut, "/resume/personal", "application/json",
		[]byte(`{"full_name": "Anita Varma", "email": "anita@example.com", "phone": "123"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Anita Varma", s.session.Resume().Personal.FullName)
}

func TestPutObjective(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(s, http.MethodPut, "/resume/objective", "application/json",
		[]byte(`{"objective": "Backend engineer"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Backend engineer", s.session.Resume().Objective)
}

func TestPutSkills(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(s, http.MethodPut, "/resume/skills", "application/json",
		[]byte(`{"skills": ["Python", "Docker"]}`))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"Python", "Docker"}, s.session.Resume().Skills)
}

func TestPutEducation_AssignsIDs(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(s, http.MethodPut, "/resume/education", "application/json",
		[]byte(`[{"course": "BTech CSE", "institution": "CUSAT", "year": "2021"}]`))
	require.Equal(t, http.StatusOK, rec.Code)

	education := s.session.Resume().Education
	require.Len(t, education, 1)
	assert.NotEmpty(t, education[0].ID)
	assert.Equal(t, "BTech CSE", education[0].Course)
}

func TestPutExperience_KeepsExistingIDs(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(s, http.MethodPut, "/resume/experience", "application/json",
		[]byte(`[{"id": "exp-1", "company": "Technopark Labs", "role": "Engineer"}]`))
	require.Equal(t, http.StatusOK, rec.Code)

	experience := s.session.Resume().WorkExperience
	require.Len(t, experience, 1)
	assert.Equal(t, "exp-1", experience[0].ID)
}

func TestPutSection_InvalidBody(t *testing.T) {
	s := newTestServer(nil)

	for _, path := range []string{
		"/resume/personal", "/resume/objective", "/resume/skills",
		"/resume/languages", "/resume/education", "/resume/experience",
		"/resume/projects", "/resume/certifications",
	} {
		rec := doRequest(s, http.MethodPut, path, "application/json", []byte(`{broken`))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
}

func TestPutSections_ComposeIntoResume(t *testing.T) {
	s := newTestServer(nil)

	doRequest(s, http.MethodPut, "/resume/personal", "application/json",
		[]byte(`{"full_name": "Anita Varma", "email": "anita@example.com", "phone": "123"}`))
	doRequest(s, http.MethodPut, "/resume/objective", "application/json",
		[]byte(`{"objective": "Backend engineer"}`))
	doRequest(s, http.MethodPut, "/resume/skills", "application/json",
		[]byte(`{"skills": ["Python"]}`))

	rec := doRequest(s, http.MethodGet, "/resume", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resume types.ResumeRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resume))
	assert.Equal(t, "Anita Varma", resume.Personal.FullName)
	assert.Equal(t, "Backend engineer", resume.Objective)
	assert.Equal(t, []string{"Python"}, resume.Skills)
}
