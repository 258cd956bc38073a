package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/akhilmohan/resume-wizard/internal/extraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJobCommand_MissingInFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestExtractJobCommand_TextFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	jobFile := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("Required: Python, SQL. 3+ years experience."), 0644))
	outputFile := filepath.Join(tmpDir, "extraction.json")

	cmd := exec.Command(binaryPath, "extract-job", "--in", jobFile, "--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result extraction.JobExtraction
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Contains(t, result.Skills, "Python")
	assert.Contains(t, result.Keywords, "python")
}

func TestExtractJobCommand_MissingInputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-job", "--in", filepath.Join(t.TempDir(), "absent.txt"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed")
}
