package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeJSONValid(t *testing.T) {
	doc := `{
		"name": "Jordan Smith",
		"email": "jordan@example.com",
		"experience": [
			{"role": "Engineer", "company": "Acme", "period": "2020-2023", "bullets": ["Built services"]}
		],
		"skills": [{"category": "Languages", "items": ["Go"]}]
	}`

	assert.NoError(t, ValidateResumeJSON([]byte(doc)))
}

func TestValidateResumeJSONMissingName(t *testing.T) {
	doc := `{"experience": []}`

	err := ValidateResumeJSON([]byte(doc))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "name")
}

func TestValidateResumeJSONRejectsUnknownFields(t *testing.T) {
	doc := `{"name": "Jordan", "experience": [], "salary": 100000}`

	err := ValidateResumeJSON([]byte(doc))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateResumeJSONMalformed(t *testing.T) {
	err := ValidateResumeJSON([]byte("{not json"))

	require.Error(t, err)
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr), "malformed JSON is a load error, not a validation error")
}
