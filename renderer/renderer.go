// Package renderer turns a league comparison into charts and reports.
//
// Missing rates are drawn as zero: the substitution happens here and nowhere
// before.
package renderer

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

// templates is the flat view of the embedded templates folder.
var templates = mustSub(templatesFS, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("cannot open embedded %q: %v", dir, err))
	}
	return sub
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// renderHTML is renderTemplate for html pages, values are escaped according to their context.
func renderHTML(templateName, mainFile string, partials map[string]string, data any) (string, error) {
	tmpl, err := htmltemplate.New(templateName).ParseFS(templates, mainFile)
	if err != nil {
		return "", fmt.Errorf("error parsing main template %q: %w", mainFile, err)
	}
	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return "", fmt.Errorf("error reading partial template %q: %w", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("error parsing partial template %q for %q: %w", file, name, err)
		}
	}
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, mainFile, data); err != nil {
		return "", fmt.Errorf("error executing template %q: %w", templateName, err)
	}
	return b.String(), nil
}
