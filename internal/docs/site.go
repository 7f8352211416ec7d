package docs

import (
	"html/template"
	"io"

	declinecodes "github.com/hideokamoto/stripe-decline-codes"
)

type sitePage struct {
	DocVersion string
	Sections   []siteSection
}

type siteSection struct {
	Title string
	Intro string
	Codes []siteEntry
}

type siteEntry struct {
	Code        string
	Description string
	MessageEN   string
	MessageJA   string
}

var siteTmpl = template.Must(template.New("site").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Stripe decline codes</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 64rem; margin: 2rem auto; padding: 0 1rem; color: #1a1a2e; }
h1 { border-bottom: 2px solid #635bff; padding-bottom: .3rem; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2rem; }
th, td { border: 1px solid #d8dee9; padding: .4rem .6rem; text-align: left; vertical-align: top; }
th { background: #f6f8fa; }
code { background: #f6f8fa; padding: .1rem .3rem; border-radius: 3px; }
.version { color: #6b7280; }
</style>
</head>
<body>
<h1>Stripe decline codes</h1>
<p class="version">Dataset version {{.DocVersion}}.</p>
{{range .Sections}}<h2>{{.Title}}</h2>
<p>{{.Intro}}</p>
<table>
<thead><tr><th>Code</th><th>Description</th><th>Customer message</th><th lang="ja">メッセージ</th></tr></thead>
<tbody>
{{range .Codes}}<tr><td><code>{{.Code}}</code></td><td>{{.Description}}</td><td>{{.MessageEN}}</td><td lang="ja">{{.MessageJA}}</td></tr>
{{end}}</tbody>
</table>
{{end}}</body>
</html>
`))

// RenderHTML writes a single-page documentation site for the artifact.
// Hard declines come first; they are the codes an integration must stop
// retrying.
func RenderHTML(w io.Writer, art Artifact) error {
	hard := siteSection{
		Title: "Hard declines",
		Intro: "Retrying the same card will not succeed. The customer needs another payment method or help from their card issuer.",
	}
	soft := siteSection{
		Title: "Soft declines",
		Intro: "The decline may be temporary. Retrying the payment, possibly after the customer acts, can succeed.",
	}

	for _, rec := range art.Codes {
		entry := siteEntry{
			Code:        rec.Code,
			Description: rec.Description,
			MessageEN:   rec.NextUserAction,
			MessageJA:   rec.Translations["ja"].NextUserAction,
		}
		switch rec.Category {
		case string(declinecodes.CategoryHardDecline):
			hard.Codes = append(hard.Codes, entry)
		case string(declinecodes.CategorySoftDecline):
			soft.Codes = append(soft.Codes, entry)
		}
	}

	return siteTmpl.Execute(w, sitePage{
		DocVersion: art.DocVersion,
		Sections:   []siteSection{hard, soft},
	})
}
