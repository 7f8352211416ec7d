// Package docs builds distributable artifacts from the embedded
// decline-code dataset: a machine-readable export and a static
// documentation site.
package docs

import (
	declinecodes "github.com/hideokamoto/stripe-decline-codes"
)

// Artifact is an exportable snapshot of the dataset. Codes keep the
// library's stable listing order so regenerated artifacts diff cleanly.
type Artifact struct {
	DocVersion string   `json:"doc_version" yaml:"doc_version"`
	Codes      []Record `json:"codes" yaml:"codes"`
}

// Record mirrors declinecodes.DeclineRecord with wire tags for both JSON
// and YAML.
type Record struct {
	Code           string                 `json:"code" yaml:"code"`
	Category       string                 `json:"category" yaml:"category"`
	Description    string                 `json:"description" yaml:"description"`
	NextSteps      string                 `json:"next_steps" yaml:"next_steps"`
	NextUserAction string                 `json:"next_user_action" yaml:"next_user_action"`
	Translations   map[string]Translation `json:"translations,omitempty" yaml:"translations,omitempty"`
}

// Translation carries the localized fields of a record.
type Translation struct {
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	NextUserAction string `json:"next_user_action,omitempty" yaml:"next_user_action,omitempty"`
}

// Build assembles the artifact for the current dataset.
func Build() Artifact {
	codes := declinecodes.GetAllDeclineCodes()
	art := Artifact{
		DocVersion: declinecodes.GetDocVersion(),
		Codes:      make([]Record, 0, len(codes)),
	}
	for _, code := range codes {
		desc := declinecodes.GetDeclineDescription(code)
		if desc.Record == nil {
			continue
		}
		art.Codes = append(art.Codes, newRecord(*desc.Record))
	}
	return art
}

func newRecord(rec declinecodes.DeclineRecord) Record {
	out := Record{
		Code:           rec.Code,
		Category:       string(rec.Category),
		Description:    rec.Description,
		NextSteps:      rec.NextSteps,
		NextUserAction: rec.NextUserAction,
	}
	if len(rec.Translations) > 0 {
		out.Translations = make(map[string]Translation, len(rec.Translations))
		for locale, tr := range rec.Translations {
			out.Translations[string(locale)] = Translation{
				Description:    tr.Description,
				NextUserAction: tr.NextUserAction,
			}
		}
	}
	return out
}
