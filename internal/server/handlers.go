package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/akhilmohan/resume-wizard/internal/extraction"
	"github.com/akhilmohan/resume-wizard/internal/ingestion"
	"github.com/akhilmohan/resume-wizard/internal/optimizer"
	"github.com/akhilmohan/resume-wizard/internal/rendering"
	"github.com/akhilmohan/resume-wizard/internal/schemas"
	"github.com/akhilmohan/resume-wizard/internal/scoring"
	"github.com/akhilmohan/resume-wizard/internal/skills"
	"github.com/akhilmohan/resume-wizard/internal/store"
	"github.com/akhilmohan/resume-wizard/internal/types"
)

// maxUploadBytes bounds job document uploads.
const maxUploadBytes = 10 << 20

// JobResponse represents the response for job submission endpoints
type JobResponse struct {
	ExtractedKeywords []string `json:"extracted_keywords"`
	RequiredSkills    []string `json:"required_skills"`
}

// ScoreResponse represents the response for /score
type ScoreResponse struct {
	Score     int                `json:"score"`
	Label     string             `json:"label"`
	Breakdown *scoring.Breakdown `json:"breakdown"`
}

// SkillsResponse represents the response for /skills
type SkillsResponse struct {
	Categories map[skills.Category][]string `json:"categories"`
}

// SuggestionsResponse represents the response for /suggestions
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// handleGetResume returns the current resume state
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Resume())
}

// handlePutResume replaces the resume after schema validation
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	if err := schemas.ValidateResumeJSON(body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  "resume failed schema validation",
				"fields": ve.Errors,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume JSON: "+err.Error())
		return
	}

	resume := types.NewResumeRecord()
	if err := json.Unmarshal(body, resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume JSON: "+err.Error())
		return
	}

	s.session.SetResume(resume)
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleGetJob returns the current job requirement
func (s *Server) handleGetJob(w http.ResponseWriter, _ *http.Request) {
	job := s.session.Job()
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "No job requirement submitted")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handlePostJob accepts a plain-text job description and extracts requirements
func (s *Server) handlePostJob(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}
	if len(body) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Job description is empty")
		return
	}

	job := extraction.BuildJobRequirement(string(body))
	s.session.SetJob(job)

	s.jsonResponse(w, http.StatusOK, JobResponse{
		ExtractedKeywords: job.ExtractedKeywords,
		RequiredSkills:    job.RequiredSkills,
	})
}

// handlePostJobDocument accepts a multipart file upload (text, HTML, PDF, or
// an image for OCR), extracts its text, and builds the job requirement.
func (s *Server) handlePostJobDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing document field: "+err.Error())
		return
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read document: "+err.Error())
		return
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = "text/plain"
	}

	text, err := s.extractor.ExtractText(r.Context(), data, mediaType)
	if err != nil {
		s.errorResponse(w, httpStatusForIngestion(err), err.Error())
		return
	}

	job := extraction.BuildJobRequirement(text)
	s.session.SetJob(job)

	s.jsonResponse(w, http.StatusOK, JobResponse{
		ExtractedKeywords: job.ExtractedKeywords,
		RequiredSkills:    job.RequiredSkills,
	})
}

// handleScore computes the ATS score for the current session state
func (s *Server) handleScore(w http.ResponseWriter, _ *http.Request) {
	score, breakdown := scoring.ScoreWithBreakdown(s.session.Resume(), s.session.Job())
	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		Score:     score,
		Label:     scoring.Label(score),
		Breakdown: breakdown,
	})
}

// handleSkills returns the current skills grouped into display categories
func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, SkillsResponse{
		Categories: skills.Categorize(s.session.Resume().Skills),
	})
}

// handleSuggestions returns keyword-gap suggestions against the current job
func (s *Server) handleSuggestions(w http.ResponseWriter, _ *http.Request) {
	job := s.session.Job()
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "No job requirement submitted")
		return
	}

	suggestions := skills.Suggest(s.session.Resume().Skills, job.RequiredSkills, job.ExtractedKeywords)
	s.jsonResponse(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// handleOptimize runs the LLM-backed optimization for the current session
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if s.optimizer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Optimization requires a configured API key")
		return
	}

	job := s.session.Job()
	if job == nil {
		s.errorResponse(w, http.StatusBadRequest, "Submit a job description before optimizing")
		return
	}

	if err := s.session.BeginOptimization(); err != nil {
		if errors.Is(err, store.ErrBusy) {
			s.errorResponse(w, http.StatusConflict, "An optimization is already in progress")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer s.session.EndOptimization()

	optimized, err := s.optimizer.Optimize(r.Context(), s.session.Resume(), job)
	if err != nil {
		s.errorResponse(w, httpStatusForOptimizer(err), err.Error())
		return
	}

	s.session.SetOptimized(optimized)
	s.jsonResponse(w, http.StatusOK, optimized)
}

// handleGetOptimized returns the last optimization result
func (s *Server) handleGetOptimized(w http.ResponseWriter, _ *http.Request) {
	optimized := s.session.Optimized()
	if optimized == nil {
		s.errorResponse(w, http.StatusNotFound, "No optimization result available")
		return
	}
	s.jsonResponse(w, http.StatusOK, optimized)
}

// handleRenderHTML renders the optimized resume (or the raw resume when no
// optimization has run) as a standalone HTML document.
func (s *Server) handleRenderHTML(w http.ResponseWriter, _ *http.Request) {
	html, err := rendering.RenderHTML(s.renderable())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleRenderPDF renders the resume to PDF via headless Chrome
func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	doc := s.renderable()
	pdf, err := rendering.RenderPDF(r.Context(), doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleReset clears the session state
func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.session.Reset()
	s.applyDefaultStyle()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reset"})
}

// renderable returns the optimized resume when available, otherwise wraps the
// raw resume so the unoptimized state can still be previewed.
func (s *Server) renderable() *types.OptimizedResume {
	if optimized := s.session.Optimized(); optimized != nil {
		return optimized
	}
	resume := s.session.Resume()
	return &types.OptimizedResume{
		ResumeRecord:        *resume,
		OptimizedObjective:  resume.Objective,
		OptimizedExperience: resume.WorkExperience,
		OptimizedProjects:   resume.Projects,
	}
}

// httpStatusForIngestion maps document extraction failures to status codes
func httpStatusForIngestion(err error) int {
	var unsupported *ingestion.UnsupportedMediaTypeError
	if errors.As(err, &unsupported) {
		return http.StatusUnsupportedMediaType
	}
	return http.StatusUnprocessableEntity
}

// httpStatusForOptimizer maps optimization failures to status codes
func httpStatusForOptimizer(err error) int {
	var validation *optimizer.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
