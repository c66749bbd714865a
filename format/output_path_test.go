package format

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"docfmt/config"
	"docfmt/rebuild"
	"docfmt/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template
	return &state.LocalEnv{Log: zaptest.NewLogger(t), Cfg: cfg, NoDirs: noDirs}
}

func TestBuildOutputPath(t *testing.T) {
	report := &rebuild.Report{RunID: "0190", DocumentTitle: "论文 Title", Chapters: []string{"绪论", "结论"}, SectionsWritten: 3}
	dst := filepath.FromSlash("/out")

	tests := []struct {
		name          string
		src           string
		noDirs        bool
		transliterate bool
		template      string
		want          string
	}{
		{"single file", "thesis.docx", false, false, "", "/out/thesis.docx"},
		{"keeps structure", "a/b/thesis.docx", false, false, "", "/out/a/b/thesis.docx"},
		{"nodirs", "a/b/thesis.docx", true, false, "", "/out/thesis.docx"},
		{"transliterate", "Café Thesis.docx", false, true, "", "/out/cafe-thesis.docx"},
		{"template", "a/thesis.docx", false, false, "{{ .Name }}-formatted", "/out/a/thesis-formatted.docx"},
		{"template with dirs", "thesis.docx", true, false, "{{ .Sections }}/{{ .Title }}", "/out/3/论文 Title.docx"},
		{"template keeps extension", "thesis.docx", true, false, "{{ .Name }}.docx", "/out/thesis.docx"},
		{"template with sprig", "thesis.docx", true, false, `{{ first .Chapters }}-{{ .Name | upper }}`, "/out/绪论-THESIS.docx"},
		{"template transliterated", "thesis.docx", true, true, "{{ .Name }} {{ .Sections }}", "/out/thesis-3.docx"},
		{"bad template", "thesis.docx", true, false, "{{ .Missing", "/out/thesis.docx"},
		{"empty expansion", "thesis.docx", true, false, "{{ if false }}x{{ end }}", "/out/thesis.docx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.noDirs, tt.transliterate, tt.template)
			got := buildOutputPath(filepath.FromSlash(tt.src), dst, report, env)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("buildOutputPath() = %q, want %q", got, filepath.FromSlash(tt.want))
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"name", []string{"name"}},
		{"a/b/name", []string{"a", "b", "name"}},
		{"/a/name/", []string{"a", "name"}},
		{"a/../name", []string{"a", "name"}},
	}
	for _, tt := range tests {
		got := splitPath(filepath.FromSlash(tt.path))
		if len(got) != len(tt.want) {
			t.Errorf("splitPath(%q) = %v, want %v", tt.path, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitPath(%q) = %v, want %v", tt.path, got, tt.want)
				break
			}
		}
	}
}
