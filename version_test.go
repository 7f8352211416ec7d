package declinecodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDocVersion(t *testing.T) {
	version := GetDocVersion()

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, version)
	assert.Equal(t, version, GetDocVersion())
}

func TestGetDocVersion_MatchesDescriptions(t *testing.T) {
	version := GetDocVersion()

	for _, code := range GetAllDeclineCodes() {
		assert.Equal(t, version, GetDeclineDescription(code).DocVersion, "code %q", code)
	}
	assert.Equal(t, version, GetDeclineDescription("mystery_code").DocVersion)
}
