package docs

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes the artifact as JSON. HTML escaping is disabled so that
// message text survives round trips byte for byte.
func EncodeJSON(w io.Writer, art Artifact, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(art)
}

// EncodeYAML writes the artifact as YAML.
func EncodeYAML(w io.Writer, art Artifact) error {
	data, err := yaml.Marshal(art)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
