package docs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncodeJSON(t *testing.T) {
	art := Build()

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, art, false))

	var decoded Artifact
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, art, decoded)
}

func TestEncodeJSON_Pretty(t *testing.T) {
	art := Build()

	var compact, pretty bytes.Buffer
	require.NoError(t, EncodeJSON(&compact, art, false))
	require.NoError(t, EncodeJSON(&pretty, art, true))

	assert.Greater(t, pretty.Len(), compact.Len())
	assert.Contains(t, pretty.String(), "\n  \"codes\"")
}

func TestEncodeYAML(t *testing.T) {
	art := Build()

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, art))

	var decoded Artifact
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, art, decoded)
}
