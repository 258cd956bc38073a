// Package optimizer orchestrates resume optimization: it validates the
// resume, calls the external rewrite collaborator, merges its output with the
// local extraction/scoring components and returns a single OptimizedResume.
// The operation is atomic; a failed rewrite produces no partial record.
package optimizer

import (
	"context"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/scoring"
	"github.com/akhilmohan/resume-wizard/internal/skills"
	"github.com/akhilmohan/resume-wizard/internal/types"
)

// maxProjectKeywords bounds how many job keywords are appended to a project
// description.
const maxProjectKeywords = 2

// Rewriter is the external generative rewrite collaborator. Any error it
// returns is fatal for the whole optimize operation.
type Rewriter interface {
	Rewrite(ctx context.Context, prompt string) (string, error)
}

// Optimizer coordinates the optimization pipeline. Collaborators are passed
// in explicitly so tests can inject fakes.
type Optimizer struct {
	rewriter Rewriter
	pickVerb VerbPicker
}

// New creates an Optimizer. A nil pickVerb defaults to the pseudo-random
// production picker.
func New(rewriter Rewriter, pickVerb VerbPicker) *Optimizer {
	if pickVerb == nil {
		pickVerb = RandomVerbPicker
	}
	return &Optimizer{rewriter: rewriter, pickVerb: pickVerb}
}

// Optimize runs the full pipeline against a resume and an optional job
// requirement. Validation happens synchronously before the rewrite call; a
// rewrite failure aborts the whole operation.
func (o *Optimizer) Optimize(ctx context.Context, resume *types.ResumeRecord, job *types.JobRequirement) (*types.OptimizedResume, error) {
	if err := resume.ValidateForOptimization(); err != nil {
		return nil, &ValidationError{Cause: err}
	}

	prompt := buildOptimizationPrompt(resume, job)
	response, err := o.rewriter.Rewrite(ctx, prompt)
	if err != nil {
		return nil, &RewriteError{Message: "rewrite collaborator call failed", Cause: err}
	}

	parsed := parseRewriteResponse(response, resume.Objective)

	var jobKeywords, requiredSkills []string
	if job != nil {
		jobKeywords = job.ExtractedKeywords
		requiredSkills = job.RequiredSkills
	}

	optimized := &types.OptimizedResume{
		ResumeRecord:        *resume,
		OptimizedObjective:  parsed.Objective,
		OptimizedExperience: o.rewriteExperience(resume.WorkExperience),
		OptimizedProjects:   augmentProjects(resume.Projects, jobKeywords),
		SuggestedKeywords:   skills.Suggest(resume.Skills, requiredSkills, parsed.Keywords),
		ATSScore:            scoring.Score(resume, job),
	}
	return optimized, nil
}

// rewriteExperience rewrites every responsibility line to start with a strong
// action verb. This is local and independent of the AI response.
func (o *Optimizer) rewriteExperience(experience []types.WorkExperience) []types.WorkExperience {
	rewritten := make([]types.WorkExperience, len(experience))
	for i, exp := range experience {
		responsibilities := make([]string, len(exp.Responsibilities))
		for j, line := range exp.Responsibilities {
			responsibilities[j] = rewriteResponsibility(line, o.pickVerb)
		}
		exp.Responsibilities = responsibilities
		rewritten[i] = exp
	}
	return rewritten
}

// augmentProjects appends a "Technologies used" clause listing up to two job
// keywords absent from each project description. Projects with no qualifying
// keywords are left untouched.
func augmentProjects(projects []types.Project, jobKeywords []string) []types.Project {
	augmented := make([]types.Project, len(projects))
	for i, project := range projects {
		project.Description = addRelevantKeywords(project.Description, jobKeywords)
		augmented[i] = project
	}
	return augmented
}

func addRelevantKeywords(description string, jobKeywords []string) string {
	lower := strings.ToLower(description)
	missing := make([]string, 0, maxProjectKeywords)
	for _, keyword := range jobKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			continue
		}
		missing = append(missing, keyword)
		if len(missing) == maxProjectKeywords {
			break
		}
	}

	if len(missing) == 0 {
		return description
	}
	return description + " Technologies used: " + strings.Join(missing, ", ") + "."
}
