package main

import (
	"context"
	"fmt"
	"path/filepath"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/fileutil"
)

// reportFile is the sections document read by the report command.
type reportFile struct {
	Title    string                 `yaml:"title"`
	Author   string                 `yaml:"author"`
	Date     string                 `yaml:"date"`
	Template *deckgen.StyleTemplate `yaml:"template"`
	Sections []deckgen.Section      `yaml:"sections"`
}

// reportParams groups the flag and config values shared by every input.
type reportParams struct {
	flags *reportFlags
	css   string
	cover bool
	html  bool
}

// runReport exports one document per sections file through a pool of
// browser-backed exporters.
func runReport(ctx context.Context, args []string, env *Environment) error {
	f, inputs, err := parseReportFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if err := validateWorkers(f.workers); err != nil {
		return err
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	params := &reportParams{flags: f, html: f.html}
	params.cover = (f.cover || s.cfg.Report.Cover) && !f.noCover
	if f.css != "" {
		css, err := readInput(f.css, env.Stdin)
		if err != nil {
			return err
		}
		params.css = string(css)
	}

	opts := s.options(f.assets.assetPath)
	timeout := f.timeout
	if timeout == "" && s.vars.Timeout > 0 {
		timeout = s.vars.Timeout.String()
	}
	if timeout != "" {
		d, err := parsePositiveDuration("timeout", timeout)
		if err != nil {
			return err
		}
		opts = append(opts, deckgen.WithTimeout(d))
	}

	docs := make(map[string]*reportFile, len(inputs))
	for _, in := range inputs {
		var rf reportFile
		if err := decodeFile(in, env, &rf); err != nil {
			return err
		}
		docs[in] = &rf
	}

	ext := "pdf"
	if params.html {
		ext = "html"
	}
	jobs, err := planJobs(inputs, f.output, s.cfg.Output.Dir, ext, func(in string) string {
		return deckgen.OutputFilename(reportTitle(docs[in], f, in), ext)
	})
	if err != nil {
		return err
	}

	pool := deckgen.NewExporterPool(s.workers(f.workers), opts...)
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			s.log.Warn("closing exporters", "err", cerr)
		}
	}()

	results := runJobs(ctx, jobs, pool.Size(), env.Now, func(ctx context.Context, j job) ([]string, error) {
		return exportReport(ctx, s, pool, params, docs[j.InputPath], j)
	})
	return reportResults(results, s)
}

// exportReport renders one sections file and writes its outputs.
func exportReport(ctx context.Context, s *session, pool *deckgen.ExporterPool, p *reportParams, rf *reportFile, j job) ([]string, error) {
	f := p.flags
	title := reportTitle(rf, f, j.InputPath)
	tmpl := rf.Template
	if name := f.assets.template; name != "" {
		var t deckgen.StyleTemplate
		if rf.Template != nil {
			t = *rf.Template
		}
		t.Name = name
		tmpl = &t
	}

	e, err := pool.Acquire()
	if err != nil {
		return nil, err
	}
	defer pool.Release(e)

	result, err := e.Export(ctx, deckgen.ReportInput{
		Title:    title,
		Author:   first(f.author, rf.Author, s.cfg.Report.Author),
		Date:     first(f.date, rf.Date, s.cfg.Report.Date),
		Cover:    p.cover,
		Template: tmpl,
		Style:    first(f.style, s.cfg.Report.Style),
		CSS:      p.css,
		Sections: rf.Sections,
		HTMLOnly: p.html,
	})
	if err != nil {
		return nil, err
	}

	data := result.PDF
	if p.html {
		data = []byte(result.HTML)
	}
	if err := writeOutput(j.OutputPath, data); err != nil {
		return nil, err
	}
	outputs := []string{j.OutputPath}

	if f.pptx {
		deckPath := fileutil.ReplaceExtension(j.OutputPath, "pptx")
		if err := writeSectionsDeck(ctx, s, f, rf, title, tmpl, deckPath); err != nil {
			return outputs, err
		}
		outputs = append(outputs, deckPath)
	}
	return outputs, nil
}

// writeSectionsDeck turns report sections into a presentation.
func writeSectionsDeck(ctx context.Context, s *session, f *reportFlags, rf *reportFile, title string, tmpl *deckgen.StyleTemplate, path string) error {
	deck := deckgen.DeckFromSections(title, first(f.author, rf.Author, s.cfg.Report.Author), tmpl, rf.Sections)
	asm, err := deckgen.NewAssembler(s.options(f.assets.assetPath)...)
	if err != nil {
		return err
	}
	doc, err := asm.Assemble(ctx, deck)
	if err != nil {
		return fmt.Errorf("building deck: %w", err)
	}
	return writeOutput(path, doc)
}

// reportTitle picks the flag, then the file title, then the file name.
func reportTitle(rf *reportFile, f *reportFlags, input string) string {
	if f.title != "" {
		return f.title
	}
	if rf != nil && rf.Title != "" {
		return rf.Title
	}
	base := filepath.Base(input)
	return base[:len(base)-len(filepath.Ext(base))]
}
