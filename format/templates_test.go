package format

import (
	"path/filepath"
	"testing"

	"docfmt/config"
	"docfmt/rebuild"
)

func TestExpandTemplate(t *testing.T) {
	report := &rebuild.Report{RunID: "0190abcd", DocumentTitle: "Thesis", Chapters: []string{"Intro", "Results"}, SectionsWritten: 3}
	values := buildValues(config.OutputNameTemplateFieldName, filepath.FromSlash("dir/paper.v2.docx"), report)

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
	}{
		{"context", "{{ .Context }}", "output_name_template", false},
		{"name strips only extension", "{{ .Name }}", "paper.v2", false},
		{"source file", "{{ .SourceFile }}", "dir/paper.v2.docx", false},
		{"chapters", `{{ join "+" .Chapters }}`, "Intro+Results", false},
		{"run id", "{{ trunc 4 .RunID }}", "0190", false},
		{"trimmed", "  {{ .Title }}\n", "Thesis", false},
		{"parse error", "{{ .Title", "", true},
		{"execution error", "{{ .Unknown }}", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(config.OutputNameTemplateFieldName, tt.template, values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildValues_NoReport(t *testing.T) {
	v := buildValues(config.OutputNameTemplateFieldName, "thesis.docx", nil)
	if v.Name != "thesis" || v.Title != "" || v.Sections != 0 {
		t.Errorf("values = %+v", v)
	}
}
