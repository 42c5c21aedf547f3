// Package lint implements "check" command: it finds stylesheets in the
// requested sources, applies function name case rule and reports problems.
package lint

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"fncase/archive"
	"fncase/casing"
	"fncase/common"
	"fncase/config"
	"fncase/css"
	"fncase/report"
	"fncase/state"
)

// ErrProblemsFound is returned when at least one error severity problem was
// detected.
var ErrProblemsFound = errors.New("function name case problems found")

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	srcs := cmd.Args().Slice()
	if len(srcs) == 0 {
		return errors.New("no input source has been specified")
	}

	// command line overrides configuration
	rule := env.Cfg.Rules.FunctionNameCase
	if cmd.IsSet("expectation") {
		e, err := common.ParseExpectation(cmd.String("expectation"))
		if err != nil {
			return fmt.Errorf("bad expectation requested: %w", err)
		}
		rule.Expectation = e
	}
	if cmd.IsSet("ignore-function") {
		rule.IgnoreFunctions = append(slices.Clone(rule.IgnoreFunctions), cmd.StringSlice("ignore-function")...)
	}
	opts, err := rule.Options()
	if err != nil {
		return fmt.Errorf("invalid rule configuration: %w", err)
	}

	if cmd.IsSet("format") {
		if env.Format, err = common.ParseOutputFmt(cmd.String("format")); err != nil {
			return fmt.Errorf("bad output format requested: %w", err)
		}
	}
	env.Output = cmd.String("output")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	// results may go to STDOUT, keep it clean
	log.Debug("Processing starting", zap.Strings("sources", srcs),
		zap.Stringer("expectation", opts.Expectation), zap.Int("ignored", opts.Ignore.Len()))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	l := newLinter(opts, env.CodePage, env.Rpt, log)
	var failed []error
	for _, src := range srcs {
		if err := l.process(ctx, filepath.Clean(src)); err != nil {
			if ctx.Err() != nil {
				return err
			}
			log.Error("Unable to process source", zap.String("source", src), zap.Error(err))
			failed = append(failed, fmt.Errorf("%s: %w", src, err))
		}
	}

	report.Sort(l.entries)
	if err := writeResults(l.entries, env); err != nil {
		return err
	}

	errs, warns := report.Count(l.entries)
	summary := log.Debug
	if len(env.Output) > 0 {
		summary = log.Info
	}
	summary("Check results", zap.Int("stylesheets", l.count), zap.Int("errors", errs), zap.Int("warnings", warns))
	if errs > 0 {
		failed = append(failed, fmt.Errorf("%w: %d", ErrProblemsFound, errs))
	}
	// NOTE: cli treats errors with Errors() method specially and exits
	// immediately, so no multierr here
	return errors.Join(failed...)
}

func writeResults(entries []report.Entry, env *state.LocalEnv) error {
	if len(env.Output) == 0 {
		return report.Write(os.Stdout, entries, env.Format)
	}

	out := env.Output
	if len(filepath.Ext(out)) == 0 {
		out += env.Format.Ext()
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := report.Write(f, entries, env.Format); err != nil {
		f.Close()
		return fmt.Errorf("unable to write results: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to write results: %w", err)
	}
	env.Rpt.Store("result"+filepath.Ext(out), out)
	return nil
}

// linter accumulates problems over all processed sources. Sources are
// processed one by one.
type linter struct {
	parser  *css.Parser
	checker *casing.Checker
	cp      encoding.Encoding
	rpt     *config.Report
	log     *zap.Logger

	entries []report.Entry
	count   int // checked stylesheets
}

func newLinter(opts *casing.Options, cp encoding.Encoding, rpt *config.Report, log *zap.Logger) *linter {
	return &linter{
		parser:  css.NewParser(log),
		checker: casing.NewChecker(opts, log),
		cp:      cp,
		rpt:     rpt,
		log:     log,
	}
}

// process determines the input type (directory, archive with optional path
// inside or single file) and processes accordingly.
func (l *linter) process(ctx context.Context, src string) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return l.processDir(ctx, head)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			return l.processArchive(ctx, head, tail)
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		kind, enc, err := isSourceFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if kind == kindNone {
			return fmt.Errorf("input was not recognized as stylesheet, FB2 book or HTML page (%s)", head)
		}
		file, err := os.Open(head)
		if err != nil {
			return err
		}
		defer file.Close()
		return l.processSource(ctx, selectReader(file, enc), kind, enc, head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir walks directory tree looking for sources and archives.
func (l *linter) processDir(ctx context.Context, dir string) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			l.log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			l.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		isArchive, err := isArchiveFile(path)
		if err != nil {
			l.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			count++
			if err := l.processArchive(ctx, path, ""); err != nil {
				if ctx.Err() != nil {
					return err
				}
				l.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		kind, enc, err := isSourceFile(path)
		if err != nil {
			l.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if kind == kindNone {
			l.log.Debug("Skipping file, not recognized as source or archive", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			l.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		if err := l.processSource(ctx, selectReader(file, enc), kind, enc, path); err != nil {
			l.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processArchive checks all sources inside archive located under "pathIn".
func (l *linter) processArchive(ctx context.Context, path, pathIn string) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			l.log.Debug("Nothing to process", zap.String("archive", path), zap.String("path", pathIn))
		}
	}()

	skipped, err := archive.Walk(path, pathIn, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		kind, enc, err := isSourceInArchive(f)
		if err != nil {
			l.log.Warn("Skipping file in archive",
				zap.String("archive", arc), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if kind == kindNone {
			l.log.Debug("Skipping file, not recognized as source", zap.String("archive", arc), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			l.log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := l.processSource(ctx, selectReader(r, enc), kind, enc, filepath.Join(arc, l.entryName(f))); err != nil {
			l.log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	for _, name := range skipped {
		l.log.Warn("Skipping unsafe path in archive", zap.String("archive", path), zap.String("path", name))
	}
	return err
}

// entryName returns name of archive entry, forcing requested code page on
// names which are not marked as UTF-8.
func (l *linter) entryName(f *zip.File) string {
	name := f.FileHeader.Name
	if l.cp == nil || !f.FileHeader.NonUTF8 {
		return name
	}
	n, err := l.cp.NewDecoder().String(name)
	if err != nil {
		cs, _ := ianaindex.IANA.Name(l.cp)
		l.log.Warn("Unable to convert archive name from specified encoding",
			zap.String("charset", cs), zap.String("path", name), zap.Error(err))
		return name
	}
	return n
}

// processSource checks all stylesheets of a single source. "name" is how
// source will be referred to in the results.
func (l *linter) processSource(ctx context.Context, r io.Reader, kind srcKind, enc srcEncoding, name string) (rerr error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	problems := 0
	l.log.Debug("Checking source", zap.String("source", name), zap.Stringer("kind", kind))
	defer func(start time.Time) {
		// malformed input should not stop processing of other sources
		if r := recover(); r != nil {
			l.log.Error("Check ended with panic",
				zap.Any("panic", r), zap.String("source", name), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("check panic: %v", r)
			return
		}
		l.log.Debug("Source checked", zap.String("source", name), zap.Int("problems", problems), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}

	frags, err := extractStylesheets(data, name, kind, enc != encUnknown, l.log)
	if err != nil {
		return err
	}

	for _, f := range frags {
		var sheet *css.Stylesheet
		if f.inline {
			sheet = l.parser.ParseDeclarationList(f.text, f.name)
		} else {
			sheet = l.parser.Parse(f.text, f.name)
		}
		violations := l.checker.Check(sheet)
		problems += len(violations)
		l.count++
		l.entries = append(l.entries, report.NewEntries(f.name, violations)...)
		l.rpt.StoreData(fmt.Sprintf("stylesheets/%04d.txt", l.count), dumpStylesheet(sheet, violations))
	}
	return nil
}
