package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKeys_Valid(t *testing.T) {
	errs := ValidateKeys([]string{"url", "name", "region"}, []string{"region", "url"})

	assert.Empty(t, errs)
}

func TestValidateKeys_UnknownWithSuggestion(t *testing.T) {
	errs := ValidateKeys([]string{"url", "name"}, []string{"URL", "port"})
	require.Len(t, errs, 2)

	assert.Equal(t, "unknown_key", errs[0].ErrorType)
	assert.Equal(t, "url", errs[0].Suggestion)
	assert.Equal(t, `key "URL" not found in records (did you mean "url"?)`, errs[0].Error())

	assert.Equal(t, "port", errs[1].Key)
	assert.Empty(t, errs[1].Suggestion)
}

func TestValidateKeys_Duplicate(t *testing.T) {
	errs := ValidateKeys([]string{"url"}, []string{"url", "url"})
	require.Len(t, errs, 1)

	assert.Equal(t, "duplicate_key", errs[0].ErrorType)
}

func TestValidateKeys_Empty(t *testing.T) {
	errs := ValidateKeys([]string{"url"}, nil)
	require.Len(t, errs, 1)

	assert.Equal(t, "empty_selection", errs[0].ErrorType)
}

func TestFormatErrors(t *testing.T) {
	assert.Equal(t, "", FormatErrors(nil))

	errs := ValidateKeys([]string{"url", "name"}, []string{"URL", "name", "name"})
	assert.Equal(t,
		`2 invalid key(s): key "URL" not found in records (did you mean "url"?); key "name" requested more than once`,
		FormatErrors(errs))
}
