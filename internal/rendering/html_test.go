package rendering

import (
	"strings"
	"testing"

	"github.com/akhilmohan/resume-wizard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optimizedResume(style types.StyleVariant) *types.OptimizedResume {
	r := types.NewResumeRecord()
	r.Personal = types.PersonalInfo{
		FullName: "Anita Varma",
		Email:    "anita@example.com",
		Phone:    "+91 98470 12345",
		LinkedIn: "linkedin.com/in/anitavarma",
	}
	r.Skills = []string{"Go", "PostgreSQL"}
	r.Education = []types.Education{{
		ID:          "edu-1",
		Course:      "B.Tech Computer Science",
		Institution: "CUSAT",
		Year:        "2020",
	}}
	r.Style = style

	return &types.OptimizedResume{
		ResumeRecord:       *r,
		OptimizedObjective: "Reliability-focused backend engineer.",
		OptimizedExperience: []types.WorkExperience{{
			ID:               "exp-1",
			Company:          "Technopark Labs",
			Role:             "Software Engineer",
			Duration:         "2022 - present",
			Responsibilities: []string{"Developed payment services"},
		}},
		OptimizedProjects: []types.Project{},
		SuggestedKeywords: []string{"docker"},
		ATSScore:          92,
	}
}

func TestRenderHTML_AllStyles(t *testing.T) {
	for _, style := range []types.StyleVariant{types.StyleModern, types.StyleClassic, types.StyleMinimal} {
		t.Run(string(style), func(t *testing.T) {
			html, err := RenderHTML(optimizedResume(style))
			require.NoError(t, err)

			assert.Contains(t, html, "Anita Varma")
			assert.Contains(t, html, "anita@example.com")
			assert.Contains(t, html, "Reliability-focused backend engineer.")
			assert.Contains(t, html, "Software Engineer")
			assert.Contains(t, html, "B.Tech Computer Science")
		})
	}
}

func TestRenderHTML_DefaultsToModern(t *testing.T) {
	resume := optimizedResume("")
	html, err := RenderHTML(resume)
	require.NoError(t, err)
	assert.Contains(t, html, "Professional Summary")
}

func TestRenderHTML_UnknownStyle(t *testing.T) {
	resume := optimizedResume("neon")
	_, err := RenderHTML(resume)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestRenderHTML_OmitsEmptySections(t *testing.T) {
	resume := optimizedResume(types.StyleModern)
	resume.OptimizedProjects = nil
	resume.Certifications = nil
	resume.Languages = nil

	html, err := RenderHTML(resume)
	require.NoError(t, err)

	assert.NotContains(t, html, "Key Projects")
	assert.NotContains(t, html, "Certifications")
	assert.NotContains(t, html, "Languages")
}

func TestRenderHTML_EscapesUserContent(t *testing.T) {
	resume := optimizedResume(types.StyleModern)
	resume.OptimizedObjective = `<script>alert("x")</script>`

	html, err := RenderHTML(resume)
	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}

func TestRenderHTML_ContactLineOrder(t *testing.T) {
	resume := optimizedResume(types.StyleClassic)
	html, err := RenderHTML(resume)
	require.NoError(t, err)

	emailIdx := strings.Index(html, "anita@example.com")
	phoneIdx := strings.Index(html, "+91 98470 12345")
	require.GreaterOrEqual(t, emailIdx, 0)
	require.GreaterOrEqual(t, phoneIdx, 0)
	assert.Less(t, emailIdx, phoneIdx)
}
