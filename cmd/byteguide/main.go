package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/byteguide"
	"pkt.systems/byteguide/docx"
	"pkt.systems/byteguide/internal/config"
	"pkt.systems/byteguide/pdf"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	demoSection      = "5"

	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func init() {
	version.SetDefaultModule("pkt.systems/byteguide")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		printGuide   bool
		section      string
		listSections bool
		styled       bool
		themeName    string
		wrap         bool
		widthFlag    int
		pdfMode      bool
		outPath      string
		docxPath     string
		inputPath    string
		configPath   string
		listThemes   bool
		showVersion  bool
	)

	flags := pflag.NewFlagSet("byteguide", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&printGuide, "print", false, "Print the full guide as Markdown")
	flags.StringVarP(&section, "section", "s", "", "Print one numbered section")
	flags.BoolVar(&listSections, "list-sections", false, "List numbered sections")
	flags.BoolVar(&styled, "styled", false, "Print the guide with terminal styling")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name for --styled")
	flags.BoolVar(&wrap, "wrap", false, "Wrap console output at the terminal width")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Wrap console output at this width (implies --wrap)")
	flags.BoolVar(&pdfMode, "pdf", false, "Generate the PDF")
	flags.StringVarP(&outPath, "output", "o", byteguide.DefaultFilename, "PDF output path (- for stdout)")
	flags.StringVar(&docxPath, "docx", "", "Also write the guide as DOCX to this path")
	flags.StringVarP(&inputPath, "input", "i", "", "Read the guide from a Markdown file instead of the built-in text")
	flags.StringVarP(&configPath, "config", "c", "", "YAML style file")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: byteguide [flags]\n")
		fmt.Fprintln(stderr, "\nWithout flags the guide and section 5 are printed and the PDF is generated.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	if !pdf.Available {
		logger.Warn("pdf support not compiled in; PDF generation disabled")
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return exitOK
	}
	if listThemes {
		printThemes(stdout)
		return exitOK
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(normalizePath(configPath))
		if err != nil {
			fmt.Fprintf(stderr, "load config: %v\n", err)
			return exitUsage
		}
		cfg = loaded
	}
	if flags.Changed("output") {
		cfg.Output = outPath
	}

	document, meta, err := loadDocument(inputPath)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return exitError
	}
	// Front matter fills metadata the config file left at defaults.
	if cfg.Meta.Title == "" {
		cfg.Meta.Title = meta.Title
	}
	if meta.Author != "" && cfg.Meta.Author == config.Default().Meta.Author {
		cfg.Meta.Author = meta.Author
	}

	theme, ok := byteguide.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", themeName)
		printThemes(stderr)
		return exitUsage
	}
	if theme.Name() == defaultThemeName {
		theme = byteguide.AccentTheme(cfg.Accent())
	}

	if flags.Changed("width") {
		wrap = true
	}
	a := &app{
		stdout:   stdout,
		logger:   logger,
		document: document,
		cfg:      cfg,
		width:    resolveWidth(wrap, widthFlag),
		theme:    theme,
	}

	actions := printGuide || section != "" || listSections || styled || pdfMode || docxPath != ""
	if !actions {
		return exitCode(stderr, a.demo())
	}
	if listSections {
		a.listSections()
	}
	if printGuide {
		if err := byteguide.WriteMarkdown(stdout, document, a.width); err != nil {
			return exitCode(stderr, err)
		}
	}
	if styled {
		if err := a.styled(); err != nil {
			return exitCode(stderr, err)
		}
	}
	if section != "" {
		if err := byteguide.WriteSection(stdout, document, section, a.width); err != nil {
			return exitCode(stderr, err)
		}
	}
	if pdfMode {
		if err := a.generatePDF(); err != nil {
			return exitCode(stderr, err)
		}
	}
	if docxPath != "" {
		if err := a.generateDOCX(docxPath); err != nil {
			return exitCode(stderr, err)
		}
	}
	return exitOK
}

type app struct {
	stdout   io.Writer
	logger   *slog.Logger
	document string
	cfg      config.Config
	width    int
	theme    byteguide.Theme
}

// demo prints the guide and section 5, then writes the PDF.
func (a *app) demo() error {
	fmt.Fprint(a.stdout, "--- ByteRead Official Article Submission Guide ---\n\n")
	if err := byteguide.WriteMarkdown(a.stdout, a.document, a.width); err != nil {
		return err
	}
	fmt.Fprint(a.stdout, "\n\n--- Example of Retrieving Section 5 (Legal and Ethical Policy) ---\n\n")
	if err := byteguide.WriteSection(a.stdout, a.document, demoSection, a.width); err != nil {
		return err
	}
	fmt.Fprint(a.stdout, "\n\n--- Attempting to Generate PDF ---\n\n")
	return a.generatePDF()
}

func (a *app) listSections() {
	for _, h := range byteguide.Outline(a.document) {
		if h.Number == "" {
			continue
		}
		fmt.Fprintln(a.stdout, h.Title)
	}
}

func (a *app) styled() error {
	return byteguide.WriteBlocks(a.stdout, byteguide.ParseTitle(a.document), byteguide.Render(a.document), byteguide.ConsoleOptions{
		Width: a.width,
		Theme: a.theme,
	})
}

// generatePDF is a no-op with a console message when PDF support is
// compiled out. The output file is created only after rendering succeeds.
func (a *app) generatePDF() error {
	if !pdf.Available {
		fmt.Fprintln(a.stdout, "Cannot generate PDF: PDF support is not compiled in.")
		return nil
	}
	out := a.cfg.Output
	if strings.TrimSpace(out) == "" {
		out = byteguide.DefaultFilename
	}
	if strings.TrimSpace(out) == "-" && isTerminal(a.stdout) {
		return fmt.Errorf("refusing to write PDF to terminal; use -o/--output")
	}
	var buf bytes.Buffer
	if err := pdf.RenderMarkdown(&buf, a.document, a.cfg.PDF()); err != nil {
		return err
	}
	if err := writeOutput(out, a.stdout, &buf); err != nil {
		return err
	}
	if strings.TrimSpace(out) == "-" {
		return nil
	}
	a.logger.Info("pdf written", "path", out)
	fmt.Fprintf(a.stdout, "\nPDF successfully generated as: %s\n", out)
	return nil
}

func (a *app) generateDOCX(path string) error {
	var buf bytes.Buffer
	err := docx.Render(docx.RenderRequest{
		Title:     byteguide.ParseTitle(a.document),
		Blocks:    byteguide.Render(a.document),
		Writer:    &buf,
		AccentHex: a.cfg.Brand.Accent,
	})
	if err != nil {
		return err
	}
	if err := writeOutput(path, a.stdout, &buf); err != nil {
		return err
	}
	a.logger.Info("docx written", "path", path)
	return nil
}

// writeOutput copies a rendered document to path, or to stdout for "-".
func writeOutput(path string, stdout io.Writer, doc *bytes.Buffer) error {
	w, closer, err := resolveOutput(path, stdout)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if _, err := doc.WriteTo(w); err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return fmt.Errorf("write output: %w", err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}
	return nil
}

func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "byteguide: %v\n", err)
	return exitError
}

// loadDocument returns the built-in guide, or the file at path with any
// front matter removed.
func loadDocument(path string) (string, byteguide.FrontMatter, error) {
	if strings.TrimSpace(path) == "" {
		return byteguide.Markdown(), byteguide.FrontMatter{}, nil
	}
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return "", byteguide.FrontMatter{}, err
	}
	if err := byteguide.ValidateInput(data); err != nil {
		return "", byteguide.FrontMatter{}, fmt.Errorf("%s: %w", path, err)
	}
	meta, body, err := byteguide.SplitFrontMatter(string(data))
	if err != nil {
		return "", byteguide.FrontMatter{}, fmt.Errorf("%s: %w", path, err)
	}
	return body, meta, nil
}

func printThemes(w io.Writer) {
	for _, name := range byteguide.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

// resolveWidth returns 0 (no wrapping) unless wrapping was requested.
func resolveWidth(wrap bool, width int) int {
	if width > 0 {
		return width
	}
	if !wrap {
		return 0
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "-" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
