package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeJSON_ValidSnapshot(t *testing.T) {
	r := types.Resume{
		Title:    "My Resume",
		Template: "classic",
		FullName: "Jane Doe",
		Skills:   []string{"Go"},
		Experience: []types.ExperienceEntry{
			{Company: "Acme", Role: "Dev"},
		},
	}
	data, err := json.Marshal(r)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeJSON(data))
}

// A resume fresh from creation has nil collections, which marshal as null.
// Its own serialized form must round-trip through validation.
func TestValidateResumeJSON_FreshResume(t *testing.T) {
	data, err := json.Marshal(types.Resume{Title: "My Resume"})
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeJSON(data))
}

func TestValidateResumeJSON_MissingTitle(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"full_name":"Jane Doe"}`))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Error(), "title")
}

func TestValidateResumeJSON_UnknownTemplate(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"title":"x","template":"brutalist"}`))
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateResumeJSON_WrongTypes(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"title":"x","skills":"Go"}`))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "skills", verr.Errors[0].Field)
}

func TestValidateResumeJSON_MalformedJSON(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestResolveSchemaPath(t *testing.T) {
	assert.NotEmpty(t, ResolveSchemaPath(ResumeSchemaPath))
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.json"))
}
