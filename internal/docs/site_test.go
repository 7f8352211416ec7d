package docs

import (
	"bytes"
	"testing"

	declinecodes "github.com/hideokamoto/stripe-decline-codes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	art := Build()

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, art))

	page := buf.String()
	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, art.DocVersion)
	assert.Contains(t, page, "Hard declines")
	assert.Contains(t, page, "Soft declines")
	assert.Contains(t, page, "別のお支払い方法を使用してもう一度お試しください。")
	for _, rec := range art.Codes {
		assert.Contains(t, page, "<code>"+rec.Code+"</code>", "code %q missing from page", rec.Code)
	}
}

func TestRenderHTML_EscapesMarkup(t *testing.T) {
	art := Artifact{
		DocVersion: "2019-08-14",
		Codes: []Record{{
			Code:           "test_code",
			Category:       string(declinecodes.CategoryHardDecline),
			Description:    "Contains <script>alert(1)</script> markup.",
			NextSteps:      "n/a",
			NextUserAction: "Please try again.",
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, art))

	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}
