package format

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"docfmt/config"
	"docfmt/rebuild"
	"docfmt/state"
)

const outputExt = ".docx"

// buildOutputPath returns output file path for the source document. "src"
// is path relative to the processed source (base name for single file). Name
// is either source base name or expanded output_name_template, which may
// contain subdirectories. Unless NoDirs is set source directory structure is
// kept under dst.
func buildOutputPath(src, dst string, report *rebuild.Report, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}
	defaultFile := cleanPathSegment(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)), env) + outputExt

	tmpl := env.Cfg.Document.OutputNameTemplate
	if len(tmpl) == 0 {
		return filepath.Join(outDir, defaultFile)
	}

	expanded, err := expandTemplate(config.OutputNameTemplateFieldName, tmpl, buildValues(config.OutputNameTemplateFieldName, src, report))
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return filepath.Join(outDir, defaultFile)
	}
	segments := splitPath(filepath.FromSlash(expanded))
	if len(segments) == 0 {
		return filepath.Join(outDir, defaultFile)
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, s := range segments {
		parts = append(parts, cleanPathSegment(s, env))
	}
	last := len(parts) - 1
	parts[last] = strings.TrimSuffix(parts[last], outputExt) + outputExt
	return filepath.Join(parts...)
}

func splitPath(path string) []string {
	segments := make([]string, 0, 8)
	for head, tail := filepath.Split(strings.TrimSuffix(path, string(os.PathSeparator))); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" || tail == "" {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
