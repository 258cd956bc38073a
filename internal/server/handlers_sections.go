package server

import (
	"encoding/json"
	"net/http"

	"github.com/akhilmohan/resume-wizard/internal/types"
)

// ObjectiveRequest represents the body for PUT /resume/objective
type ObjectiveRequest struct {
	Objective string `json:"objective"`
}

// SkillsRequest represents the body for PUT /resume/skills
type SkillsRequest struct {
	Skills []string `json:"skills"`
}

// LanguagesRequest represents the body for PUT /resume/languages
type LanguagesRequest struct {
	Languages []string `json:"languages"`
}

// handlePutPersonal replaces the personal section
func (s *Server) handlePutPersonal(w http.ResponseWriter, r *http.Request) {
	var personal types.PersonalInfo
	if !s.decodeBody(w, r, &personal) {
		return
	}

	s.session.UpdateResume(func(resume *types.ResumeRecord) {
		resume.Personal = personal
	})
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// handlePutObjective replaces the objective
func (s *Server) handlePutObjective(w http.ResponseWriter, r *http.Request) {
	var req ObjectiveRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	s.session.UpdateResume(func(resume *types.ResumeRecord) {
		resume.Objective = req.Objective
	})
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// handlePutSkills replaces the skills list
func (s *Server) handlePutSkills(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	s.session.UpdateResume(func(resume *types.ResumeRecord) {
		resume.Skills = req.Skills
	})
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// handlePutLanguages replaces the languages list
func (s *Server) handlePutLanguages(w http.ResponseWriter, r *http.Request) {
	var req LanguagesRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	s.session.UpdateResume(func(resume *types.ResumeRecord) {
		resume.Languages = req.Languages
	})
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// handlePutEducation replaces the education entries, assigning IDs to new ones
func (s *Server) handlePutEducation(w http.ResponseWriter, r *http.Request) {
	var entries []types.Education
	if !s.decodeBody(w, r, &entries) {
		return
	}
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = types.NewEntryID()
		}
	}

	s.session.UpdateResume(func(resume *types.ResumeRecord) {
		resume.Education = entries
	})
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// handlePutExperience replaces the work experience entries
func (s *Server) handlePutExperience(w http.ResponseWriter, r *http.Request) {
	var entries []types.WorkExperience
	if !s.decodeBody(w, r, &entries) {
		return
	}
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = types.NewEntryID()
		}
	}

	s.session.UpdateResume(func(resume *types.ResumeRecord) {
		resume.WorkExperience = entries
	})
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// handlePutProjects replaces the project entries
func (s *Server) handlePutProjects(w http.ResponseWriter, r *http.Request) {
	var entries []types.Project
	if !s.decodeBody(w, r, &entries) {
		return
	}
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = types.NewEntryID()
		}
	}

	s.session.UpdateResume(func(resume *types.ResumeRecord) {
		resume.Projects = entries
	})
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// handlePutCertifications replaces the certification entries
func (s *Server) handlePutCertifications(w http.ResponseWriter, r *http.Request) {
	var entries []types.Certification
	if !s.decodeBody(w, r, &entries) {
		return
	}
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = types.NewEntryID()
		}
	}

	s.session.UpdateResume(func(resume *types.ResumeRecord) {
		resume.Certifications = entries
	})
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// decodeBody decodes the request body as JSON into v. On failure it writes a
// 400 response and returns false.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
