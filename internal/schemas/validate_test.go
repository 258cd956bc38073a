package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeJSON_Valid(t *testing.T) {
	data := []byte(`{
		"personal": {"full_name": "Anita Varma", "email": "anita@example.com", "phone": "123"},
		"objective": "Backend engineer",
		"skills": ["Go"],
		"work_experience": [{"company": "Technopark Labs", "role": "Engineer", "responsibilities": ["Built services"]}],
		"style": "modern"
	}`)
	assert.NoError(t, ValidateResumeJSON(data))
}

func TestValidateResumeJSON_MissingPersonal(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"objective": "x"}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
}

func TestValidateResumeJSON_BadStyle(t *testing.T) {
	data := []byte(`{"personal": {}, "style": "neon"}`)
	err := ValidateResumeJSON(data)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateResumeJSON_WrongTypes(t *testing.T) {
	data := []byte(`{"personal": {}, "skills": "not-an-array"}`)
	err := ValidateResumeJSON(data)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateResumeJSON_NotJSON(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{broken`))
	assert.Error(t, err)
}
