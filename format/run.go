// Package format implements format and plan commands: finds documents and
// their classifications, runs reconstruction and saves results.
package format

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docfmt/classify"
	"docfmt/rebuild"
	"docfmt/state"
	"docfmt/wml"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("format")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	env.ClassificationPath = cmd.String("classification")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines input type (directory or single file) and handles it
// accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.IsDir() {
		if len(state.EnvFromContext(ctx).ClassificationPath) > 0 {
			log.Warn("Classification path is ignored when processing directory, using per document lookup")
		}
		if err := processDir(ctx, src, dst, log); err != nil {
			return fmt.Errorf("unable to process directory: %w", err)
		}
		return nil
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	docx, err := isDocxFile(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !docx {
		return fmt.Errorf("input was not recognized as docx document (%s)", src)
	}
	return processDocument(ctx, src, filepath.Base(src), dst, log)
}

// processDir walks directory tree finding documents and processes them.
// Failure of a single document is logged and does not stop processing.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if info.IsDir() {
			if path != dir && path == dst {
				// do not pick up our own results
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() || isArtifact(path) {
			return nil
		}

		docx, err := isDocxFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !docx {
			log.Debug("Skipping file, not recognized as document", zap.String("file", path))
			return nil
		}

		count++
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processDocument(ctx, path, rel, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// classificationFor returns path of classification for the document: either
// explicitly requested one or <name><suffix> next to the document.
func classificationFor(path string, env *state.LocalEnv) string {
	if len(env.ClassificationPath) > 0 {
		return env.ClassificationPath
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + env.Cfg.Document.ClassificationSuffix
}

func loadClassification(path string, env *state.LocalEnv, log *zap.Logger) (classify.Classification, error) {
	clsPath := classificationFor(path, env)
	cls, warnings, err := classify.Load(clsPath)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warn("Classification problem", zap.String("file", clsPath), zap.String("details", w))
	}
	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy(fmt.Sprintf("classification/%s", filepath.Base(clsPath)), clsPath); err != nil {
			log.Warn("Unable to store classification in report", zap.Error(err))
		}
	}
	return cls, nil
}

// processDocument reconstructs single document. "path" is document location,
// "src" is part of it relative to processed source (always including file
// name), "dst" is destination directory.
func processDocument(ctx context.Context, path, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var (
		outputName string
		report     *rebuild.Report
	)

	log.Info("Reconstruction starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Reconstruction ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("reconstruction panic: %v", r)
			return
		}
		fields := []zap.Field{zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName)}
		if report != nil {
			fields = append(fields, zap.String("run", report.RunID))
		}
		log.Info("Reconstruction completed", fields...)
	}(time.Now())

	cls, err := loadClassification(path, env, log)
	if err != nil {
		return err
	}

	doc, err := wml.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open document (%s): %w", src, err)
	}
	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy(fmt.Sprintf("source/%s", filepath.Base(path)), path); err != nil {
			log.Warn("Unable to store source copy in report", zap.Error(err))
		}
	}

	report, err = rebuild.Run(ctx, doc, cls, &env.Cfg.Document, log.Named("rebuild"))
	if report != nil {
		report.Log(log)
		defer storeReport(env, report, log)
	}
	if err != nil {
		return fmt.Errorf("unable to reconstruct document (%s): %w", src, err)
	}

	outputName = buildOutputPath(src, dst, report, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := rebuild.Save(doc, report, outputName, env.Cfg.Document.FixZip); err != nil {
		return err
	}

	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", report.RunID, filepath.Ext(outputName)), outputName)
	}
	return nil
}

func storeReport(env *state.LocalEnv, report *rebuild.Report, log *zap.Logger) {
	if env.Rpt == nil {
		return
	}
	data, err := report.YAML()
	if err != nil {
		log.Warn("Unable to serialize reconstruction report", zap.Error(err))
		return
	}
	env.Rpt.StoreData(fmt.Sprintf("report-%s.yaml", report.RunID), data)
}

// Plan prints section plan of a document without changing it.
func Plan(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("plan")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input document has been specified")
	}
	env.ClassificationPath = cmd.String("classification")

	docx, err := isDocxFile(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !docx {
		return fmt.Errorf("input was not recognized as docx document (%s)", src)
	}

	out, err := planDocument(src, env, log)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.Root().Writer, out)
	return err
}

func planDocument(path string, env *state.LocalEnv, log *zap.Logger) (string, error) {
	cls, err := loadClassification(path, env, log)
	if err != nil {
		return "", err
	}
	doc, err := wml.Open(path)
	if err != nil {
		return "", fmt.Errorf("unable to open document (%s): %w", path, err)
	}
	prep, err := rebuild.Prepare(doc, cls, &env.Cfg.Document)
	if err != nil {
		return "", fmt.Errorf("unable to plan sections (%s): %w", path, err)
	}
	return prep.Dump(doc), nil
}
