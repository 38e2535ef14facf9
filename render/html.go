package render

import (
	"fmt"
	"html/template"
	"io"
)

const fragmentTemplate = `{{define "fragment"}}
{{- if eq .Element "iframe" -}}
{{- if .Src -}}
<iframe src="{{.URL}}" title="{{.Title}}" style="{{.CSS}}"></iframe>
{{- else -}}
<iframe srcdoc="{{.SrcDoc}}" title="{{.Title}}" style="{{.CSS}}"></iframe>
{{- end -}}
{{- else if eq .Element "img" -}}
<img src="{{.URL}}" alt="{{.Alt}}" style="{{.CSS}}">
{{- else -}}
<div>{{.Text}}</div>
{{- end -}}
{{end}}`

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Visualization</title>
</head>
<body style="max-width: 800px; margin: 20px auto; padding: 20px; font-family: Arial, sans-serif">
<h2>Visualization:</h2>
{{template "fragment" .}}
</body>
</html>
{{end}}`

var templates = template.Must(template.Must(
	template.New("render").Parse(fragmentTemplate)).Parse(pageTemplate))

// view adapts an Instruction for html/template. The artifact has already been
// classified by prefix, so its address is trusted as a URL; the inline
// document is still attribute-escaped.
type view struct {
	Instruction
}

func (v view) URL() template.URL {
	return template.URL(v.Src)
}

func (v view) CSS() template.CSS {
	return template.CSS(v.Style)
}

// WriteHTML writes inst as an HTML fragment.
func WriteHTML(w io.Writer, inst Instruction) error {
	if err := templates.ExecuteTemplate(w, "fragment", view{inst}); err != nil {
		return fmt.Errorf("render fragment: %w", err)
	}
	return nil
}

// WritePage writes inst as a standalone HTML page.
func WritePage(w io.Writer, inst Instruction) error {
	if err := templates.ExecuteTemplate(w, "page", view{inst}); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
