package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"docfmt/config"
	"docfmt/rebuild"
)

// Values holds variables available for output name template expansion.
type Values struct {
	Context    string
	Name       string
	Title      string
	Chapters   []string
	Sections   int
	RunID      string
	SourceFile string
}

func buildValues(name config.TemplateFieldName, src string, report *rebuild.Report) Values {
	v := Values{
		Context:    string(name),
		Name:       strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		SourceFile: filepath.ToSlash(src),
	}
	if report != nil {
		v.Title = report.DocumentTitle
		v.Chapters = report.Chapters
		v.Sections = report.SectionsWritten
		v.RunID = report.RunID
	}
	return v
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
