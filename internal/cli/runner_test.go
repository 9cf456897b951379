package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/seitarof/ptrprint/internal/classifier"
	"github.com/seitarof/ptrprint/internal/generator"
	"github.com/seitarof/ptrprint/internal/parser"
)

type mockParser struct {
	infos []*parser.StructInfo
	err   error
}

func (m *mockParser) Parse(pkgPath, typeName string) (*parser.StructInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.infos[0], nil
}

func (m *mockParser) ParseRecursive(pkgPath, typeName string) ([]*parser.StructInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.infos, nil
}

type mockClassifier struct {
	callCount int
}

func (m *mockClassifier) Classify(fields []parser.FieldInfo) []classifier.FieldPlan {
	m.callCount++
	plans := make([]classifier.FieldPlan, 0, len(fields))
	for _, f := range fields {
		plans = append(plans, classifier.FieldPlan{Field: f, Strategy: classifier.StrategyPlainPrint})
	}
	return plans
}

type mockGenerator struct {
	callCount int
	files     []generator.File
	err       error
}

func (m *mockGenerator) Generate(cfg generator.Config, files []generator.File) error {
	m.callCount++
	m.files = files
	return m.err
}

func TestRunner_Run_GroupsStructsByPackage(t *testing.T) {
	p := &mockParser{infos: []*parser.StructInfo{
		{Name: "Leaf", PkgPath: "example.com/chain/remote", PkgName: "remote", Dir: "/src/chain/remote"},
		{Name: "Root", PkgPath: "example.com/chain", PkgName: "chain", Dir: "/src/chain",
			Fields: []parser.FieldInfo{{Name: "Seq", TypeLabel: "uint64"}}},
		{Name: "Extra", PkgPath: "example.com/chain", PkgName: "chain", Dir: "/src/chain"},
	}}
	c := &mockClassifier{}
	g := &mockGenerator{}

	r := NewRunner(p, c, g)
	cfg := &Config{TypeName: "Root", PkgPath: "example.com/chain", Filename: "ptrprint_gen.go"}

	if err := r.Run(cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if g.callCount != 1 {
		t.Fatalf("generator call count = %d, want 1", g.callCount)
	}
	if len(g.files) != 2 {
		t.Fatalf("generated files = %d, want 2", len(g.files))
	}

	remote := g.files[0]
	if remote.Package != "remote" || len(remote.Types) != 1 || remote.Types[0].Name != "Leaf" {
		t.Fatalf("first file should hold remote.Leaf, got %#v", remote)
	}

	chain := g.files[1]
	if chain.Package != "chain" || len(chain.Types) != 2 {
		t.Fatalf("second file should hold both chain structs, got %#v", chain)
	}
	if chain.Types[0].Name != "Root" || chain.Types[1].Name != "Extra" {
		t.Fatalf("parser order not preserved: %#v", chain.Types)
	}
	if len(chain.Types[0].Plans) != 1 {
		t.Fatalf("Root plans = %d, want 1", len(chain.Types[0].Plans))
	}

	if c.callCount != 3 {
		t.Fatalf("classifier call count = %d, want 3", c.callCount)
	}
}

func TestRunner_Run_ParseError(t *testing.T) {
	r := NewRunner(&mockParser{err: errors.New("load failed")}, &mockClassifier{}, &mockGenerator{})

	err := r.Run(&Config{TypeName: "Node", PkgPath: "./nodes", Filename: "ptrprint_gen.go"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunner_Run_NoStructs(t *testing.T) {
	r := NewRunner(&mockParser{}, &mockClassifier{}, &mockGenerator{})

	err := r.Run(&Config{TypeName: "Node", PkgPath: "./nodes", Filename: "ptrprint_gen.go"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no traversable structs") {
		t.Fatalf("unexpected error: %v", err)
	}
}
