package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommand_MissingResumeFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestScoreCommand_StructuralOnly(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumeFile := filepath.Join(tmpDir, "resume.json")
	require.NoError(t, os.WriteFile(resumeFile, []byte(`{
		"personal": {"full_name": "Anita Varma", "email": "anita@example.com", "phone": "123"},
		"objective": "Backend engineer",
		"skills": ["Python"],
		"work_experience": [{"company": "Technopark Labs", "role": "Engineer", "responsibilities": ["Built services"]}]
	}`), 0644))

	cmd := exec.Command(binaryPath, "score", "--resume", resumeFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, string(output), "100/100")
	assert.Contains(t, string(output), "Excellent")
}

func TestScoreCommand_InvalidResume(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumeFile := filepath.Join(tmpDir, "resume.json")
	require.NoError(t, os.WriteFile(resumeFile, []byte(`{"skills": "oops"}`), 0644))

	cmd := exec.Command(binaryPath, "score", "--resume", resumeFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid")
}
