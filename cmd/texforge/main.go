// Command texforge is the CLI tool for TexForge.
// It provides commands for parsing, converting, and verifying BibTeX text,
// managing a persistent citation library, and rendering documents.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/texforge/texforge/core/bib"
	"github.com/texforge/texforge/core/bibtex"
	"github.com/texforge/texforge/core/digest"
	"github.com/texforge/texforge/core/tex"
	"github.com/texforge/texforge/internal/library"
	"github.com/texforge/texforge/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for texforge.
var CLI struct {
	// Global flags
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogJSON  bool   `name:"log-json" help:"Emit logs as JSON"`

	// Command groups (noun-first organization)
	Bib     BibGroup     `cmd:"" help:"BibTeX operations (parse, convert, verify)"`
	Library LibraryGroup `cmd:"" help:"Citation library operations"`
	Doc     DocGroup     `cmd:"" help:"Document rendering"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// BibGroup contains BibTeX text operations.
type BibGroup struct {
	Parse   ParseCmd   `cmd:"" help:"Parse a .bib file and list its entries"`
	Convert ConvertCmd `cmd:"" help:"Convert a .bib file to a filecontents* envelope"`
	Verify  VerifyCmd  `cmd:"" help:"Verify a .bib file round-trips byte-exactly"`
}

// LibraryGroup contains citation library operations.
type LibraryGroup struct {
	Add      LibraryAddCmd      `cmd:"" help:"Add a citation to the library"`
	List     LibraryListCmd     `cmd:"" help:"List citations in the library"`
	Remove   LibraryRemoveCmd   `cmd:"" help:"Remove a citation from the library"`
	Export   LibraryExportCmd   `cmd:"" help:"Export the library as a .bib file"`
	Snapshot LibrarySnapshotCmd `cmd:"" help:"Write an xz-compressed snapshot of the library"`
	Restore  LibraryRestoreCmd  `cmd:"" help:"Restore citations from a snapshot"`
}

// DocGroup contains document rendering operations.
type DocGroup struct {
	Sample SampleCmd `cmd:"" help:"Render a sample document with citations"`
}

// libraryFlags holds flags shared by all library subcommands.
type libraryFlags struct {
	DB string `name:"db" default:"texforge.db" help:"Library database path" type:"path"`
}

func (f *libraryFlags) open() (*library.Store, error) {
	s, err := library.Open(f.DB)
	if err != nil {
		return nil, fmt.Errorf("open library %s: %w", f.DB, err)
	}
	return s, nil
}

// ParseCmd parses a .bib file and lists its entries.
type ParseCmd struct {
	Path string `arg:"" help:"Path to .bib file" type:"existingfile"`
}

func (c *ParseCmd) Run() error {
	citations, err := bibtex.ParseFile(c.Path)
	if err != nil {
		return err
	}
	for _, cit := range citations {
		fmt.Printf("%s\t%s\t%s\t%s\n", cit.Key, cit.Author, cit.Title, cit.Year)
	}
	logging.Info("parsed bib file", "path", c.Path, "entries", len(citations))
	return nil
}

// ConvertCmd converts a .bib file to a filecontents* envelope.
type ConvertCmd struct {
	Path string `arg:"" help:"Path to .bib file" type:"existingfile"`
	Out  string `help:"Output path (stdout if omitted)" type:"path"`
}

func (c *ConvertCmd) Run() error {
	citations, err := bibtex.ParseFile(c.Path)
	if err != nil {
		return err
	}
	envelope := bib.NewBibliography(citations).Filecontents()

	if c.Out == "" {
		fmt.Print(envelope)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(envelope), 0644); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	logging.Info("converted bib file", "path", c.Path, "out", c.Out)
	return nil
}

// VerifyCmd checks that a .bib file parses and re-emits byte-identically.
type VerifyCmd struct {
	Path string `arg:"" help:"Path to .bib file" type:"existingfile"`
}

func (c *VerifyCmd) Run() error {
	original, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Path, err)
	}
	citations, err := bibtex.Parse(original)
	if err != nil {
		return err
	}
	reEmitted := []byte(bib.NewBibliography(citations).String())

	origSum := digest.Sum(original)
	reSum := digest.Sum(reEmitted)
	if !origSum.Equal(reSum) {
		return fmt.Errorf("round-trip mismatch for %s: source %s, re-emitted %s",
			c.Path, origSum.SHA256[:12], reSum.SHA256[:12])
	}

	fmt.Printf("ok\t%s\t%d entries\tsha256:%s\n", c.Path, len(citations), origSum.SHA256)
	return nil
}

// LibraryAddCmd adds one citation to the library.
type LibraryAddCmd struct {
	libraryFlags
	Key    string `arg:"" help:"Citation key"`
	Title  string `required:"" help:"Title"`
	Author string `required:"" help:"Author"`
	Year   string `required:"" help:"Year (opaque text)"`
}

func (c *LibraryAddCmd) Run() error {
	s, err := c.open()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.Add(bib.Citation{
		Key:    c.Key,
		Kind:   bib.Article,
		Title:  c.Title,
		Author: c.Author,
		Year:   c.Year,
	})
	if err != nil {
		return err
	}
	logging.LibraryEvent("add", c.Key, "id", id)
	fmt.Println(id)
	return nil
}

// LibraryListCmd lists all citations in the library.
type LibraryListCmd struct {
	libraryFlags
}

func (c *LibraryListCmd) Run() error {
	s, err := c.open()
	if err != nil {
		return err
	}
	defer s.Close()

	citations, err := s.List()
	if err != nil {
		return err
	}
	for _, cit := range citations {
		fmt.Printf("%s\t%s\t%s\t%s\n", cit.Key, cit.Author, cit.Title, cit.Year)
	}
	return nil
}

// LibraryRemoveCmd removes one citation from the library.
type LibraryRemoveCmd struct {
	libraryFlags
	Key string `arg:"" help:"Citation key"`
}

func (c *LibraryRemoveCmd) Run() error {
	s, err := c.open()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Remove(c.Key); err != nil {
		return err
	}
	logging.LibraryEvent("remove", c.Key)
	return nil
}

// LibraryExportCmd exports the library as a .bib file.
type LibraryExportCmd struct {
	libraryFlags
	Out string `required:"" help:"Output .bib path" type:"path"`
}

func (c *LibraryExportCmd) Run() error {
	s, err := c.open()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Export(c.Out); err != nil {
		return err
	}
	logging.LibraryEvent("export", "", "out", c.Out)
	return nil
}

// LibrarySnapshotCmd writes an xz-compressed snapshot of the library.
type LibrarySnapshotCmd struct {
	libraryFlags
	Out string `required:"" help:"Output snapshot path" type:"path"`
}

func (c *LibrarySnapshotCmd) Run() error {
	s, err := c.open()
	if err != nil {
		return err
	}
	defer s.Close()

	manifest, err := s.Snapshot(c.Out)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%d entries\tsha256:%s\n", manifest.Path, manifest.Citations, manifest.Digest.SHA256)
	return nil
}

// LibraryRestoreCmd restores citations from a snapshot.
type LibraryRestoreCmd struct {
	libraryFlags
	Path string `arg:"" help:"Snapshot path" type:"existingfile"`
}

func (c *LibraryRestoreCmd) Run() error {
	s, err := c.open()
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Restore(c.Path)
	if err != nil {
		return err
	}
	logging.LibraryEvent("restore", "", "path", c.Path, "entries", n)
	fmt.Printf("restored %d entries\n", n)
	return nil
}

// SampleCmd renders a small document exercising citations end to end.
type SampleCmd struct {
	Out string `help:"Output .tex path (stdout if omitted)" type:"path"`
}

func (c *SampleCmd) Run() error {
	doc := sampleDocument()
	rendered, err := tex.Render(doc)
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Print(rendered)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	logging.RenderEvent(string(doc.Class()), len(doc.Elements()), len(rendered), "out", c.Out)
	return nil
}

// sampleDocument builds the demonstration document: two sections, a declared
// registry, single and grouped citations, and an attached bibliography.
func sampleDocument() *tex.Document {
	refs := bib.MustNewRegistry(
		bib.Declare("CITATION1", bib.Citation{
			Key: "key1", Kind: bib.Article, Title: "title1", Author: "author1", Year: "year1",
		}),
		bib.Declare("CITATION2", bib.Citation{
			Key: "key2", Kind: bib.Article, Title: "title2", Author: "author2", Year: "year2",
		}),
	)

	doc := tex.NewDocument(tex.ClassArticle)
	doc.Preamble.Title("My Document with Citation").Author("TexForge")
	doc.AttachBibliography(refs.Bibliography())

	doc.Push(tex.TitlePage{}).
		Push(tex.ClearPage{}).
		Push(tex.TableOfContents{}).
		Push(tex.ClearPage{})

	section1 := tex.NewSection("Section 1")
	section1.Push("Here is some text which will be put in paragraph 1.")
	section1.Push(bib.Cited(bib.Segment{
		Text: "And here is some more text for paragraph 2.",
		Ref:  refs.MustGet("CITATION1"),
	}))
	section1.Push(bib.Cited(bib.Segment{
		Text: "And here is some more text for paragraph 3.",
		Ref:  bib.Citations{refs.MustGet("CITATION2"), refs.MustGet("CITATION1")},
	}))
	doc.Push(section1)

	doc.Push(tex.NewSection("Section 2").Push("More text..."))
	return doc
}

// logLevel maps the flag value to a logging level.
func logLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("texforge %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("texforge"),
		kong.Description("Build LaTeX documents and byte-exact bibliographies."),
		kong.UsageOnError(),
	)

	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(logLevel(CLI.LogLevel), format)

	if err := ctx.Run(); err != nil {
		logging.Error("command failed", "error", err)
		os.Exit(1)
	}
}
