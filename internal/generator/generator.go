package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/seitarof/ptrprint/internal/classifier"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator writes field-visiting methods for parsed structs.
type Generator interface {
	Generate(cfg Config, files []File) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
}

// File is one generated output file: all traversable structs of one package.
type File struct {
	Dir     string
	Package string
	Types   []TypeVisit
}

// TypeVisit holds the classified field plans for one struct.
type TypeVisit struct {
	Name  string
	Plans []classifier.FieldPlan
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Package string
	Types   []TypeVisit
}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"renderField": renderField,
	}).ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, files []File) error {
	if len(files) == 0 {
		return fmt.Errorf("no traversable structs")
	}

	for _, file := range files {
		filename := filepath.Join(file.Dir, cfg.OutputFilename())

		var buf bytes.Buffer
		data := templateData{Package: file.Package, Types: file.Types}
		if err := g.tmpl.ExecuteTemplate(&buf, "visit.go.tmpl", data); err != nil {
			return fmt.Errorf("template: %w", err)
		}

		formatted, err := g.formatter.Format(filename, buf.Bytes())
		if err != nil {
			return fmt.Errorf("format %s: %w", filename, err)
		}
		if err := g.writer.Write(filename, formatted); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	return nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

// renderField emits the per-field body of a VisitFields method. Skipped
// fields contribute nothing, not even a comment, so padding leaves no trace
// in the output tree.
func renderField(plan classifier.FieldPlan) string {
	switch plan.Strategy {
	case classifier.StrategyPlainPrint:
		return renderPlainPrint(plan)
	case classifier.StrategyPointerFollow:
		return renderPointerFollow(plan)
	default:
		return ""
	}
}

func renderPlainPrint(plan classifier.FieldPlan) string {
	f := plan.Field
	return "\t\ttr.PlainField(depth, " + strconv.Quote(f.Name) + ", " + strconv.Quote(f.TypeLabel) + ", v." + f.Name + ")\n"
}

// renderPointerFollow emits the dedup-read-recurse block for one pointer
// field. The address is marked visited before the read so a pointee linking
// back to an ancestor is cut off with a notice instead of re-entered.
func renderPointerFollow(plan classifier.FieldPlan) string {
	name := plan.Field.Name
	quoted := strconv.Quote(name)

	var b bytes.Buffer
	fmt.Fprintf(&b, "\t\tif addr := v.%s.Address(); tr.Visited(addr) {\n", name)
	fmt.Fprintf(&b, "\t\t\ttr.AlreadyVisited(depth, %s, addr)\n", quoted)
	fmt.Fprintf(&b, "\t\t} else {\n")
	fmt.Fprintf(&b, "\t\t\ttr.MarkVisited(addr)\n")
	fmt.Fprintf(&b, "\t\t\tif target, err := v.%s.Read(mem); err != nil {\n", name)
	fmt.Fprintf(&b, "\t\t\t\ttr.ReadError(depth, %s, err)\n", quoted)
	fmt.Fprintf(&b, "\t\t\t} else {\n")
	fmt.Fprintf(&b, "\t\t\t\ttr.PointerField(depth, %s)\n", quoted)
	fmt.Fprintf(&b, "\t\t\t\ttarget.VisitFields(mem, depth+1, tr)\n")
	fmt.Fprintf(&b, "\t\t\t}\n")
	fmt.Fprintf(&b, "\t\t}\n")
	return b.String()
}
