package optimizer

import (
	"fmt"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/types"
)

// buildOptimizationPrompt assembles the natural-language prompt sent to the
// rewrite collaborator: the job description plus the user's name, objective,
// skills and a flattened "role at company" experience list.
func buildOptimizationPrompt(resume *types.ResumeRecord, job *types.JobRequirement) string {
	jobDescription := ""
	if job != nil {
		jobDescription = job.RawContent
	}

	experience := make([]string, 0, len(resume.WorkExperience))
	for _, exp := range resume.WorkExperience {
		experience = append(experience, fmt.Sprintf("%s at %s", exp.Role, exp.Company))
	}

	var sb strings.Builder
	sb.WriteString("You are an expert resume writer and ATS optimization specialist. ")
	sb.WriteString("Create an optimized resume that will score 95+ on ATS systems.\n\n")

	sb.WriteString("Job Description:\n")
	sb.WriteString(jobDescription)
	sb.WriteString("\n\n")

	sb.WriteString("User's Information:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", resume.Personal.FullName))
	sb.WriteString(fmt.Sprintf("- Objective: %s\n", resume.Objective))
	sb.WriteString(fmt.Sprintf("- Skills: %s\n", strings.Join(resume.Skills, ", ")))
	sb.WriteString(fmt.Sprintf("- Experience: %s\n", strings.Join(experience, ", ")))
	sb.WriteString("\n")

	sb.WriteString("Requirements:\n")
	sb.WriteString("1. Optimize the objective/summary to match job requirements\n")
	sb.WriteString("2. Enhance work experience descriptions with strong action verbs and quantified achievements\n")
	sb.WriteString("3. Align skills and keywords with job description\n")
	sb.WriteString("4. Ensure ATS-friendly formatting\n")
	sb.WriteString("5. Maintain professional tone and clarity\n")
	sb.WriteString("6. Include relevant industry keywords naturally\n\n")

	sb.WriteString("Please provide:\n")
	sb.WriteString("1. Optimized professional summary (under a SUMMARY heading)\n")
	sb.WriteString("2. Suggested additional skills/keywords (under a KEYWORDS heading, comma separated)\n")

	return sb.String()
}
