package cli

import (
	"fmt"
	"log"

	"github.com/seitarof/ptrprint/internal/classifier"
	"github.com/seitarof/ptrprint/internal/generator"
	"github.com/seitarof/ptrprint/internal/parser"
)

// Runner orchestrates parser/classifier/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	parser     parser.Parser
	classifier classifier.Classifier
	generator  generator.Generator
}

// NewRunner creates a default runner implementation.
func NewRunner(p parser.Parser, c classifier.Classifier, g generator.Generator) Runner {
	return &runnerImpl{
		parser:     p,
		classifier: c,
		generator:  g,
	}
}

// Run executes a single generation cycle: parse the root type and everything
// reachable through its pointer fields, classify each field, and write one
// generated file per package.
func (r *runnerImpl) Run(cfg *Config) error {
	infos, err := r.parser.ParseRecursive(cfg.PkgPath, cfg.TypeName)
	if err != nil {
		return fmt.Errorf("parse %s.%s: %w", cfg.PkgPath, cfg.TypeName, err)
	}
	if len(infos) == 0 {
		return fmt.Errorf("no traversable structs found for %q", cfg.TypeName)
	}

	files := r.buildFiles(infos)
	return r.generator.Generate(cfg, files)
}

// buildFiles groups structs by package, preserving the parser's pointee-first
// order within each file. Methods must be generated into the package that
// declares the struct.
func (r *runnerImpl) buildFiles(infos []*parser.StructInfo) []generator.File {
	index := map[string]int{}
	files := []generator.File{}

	for _, info := range infos {
		plans := r.classifier.Classify(info.Fields)
		logSkippedPointers(info, plans)

		i, ok := index[info.PkgPath]
		if !ok {
			i = len(files)
			index[info.PkgPath] = i
			files = append(files, generator.File{
				Dir:     info.Dir,
				Package: info.PkgName,
			})
		}
		files[i].Types = append(files[i].Types, generator.TypeVisit{
			Name:  info.Name,
			Plans: plans,
		})
	}
	return files
}

func logSkippedPointers(info *parser.StructInfo, plans []classifier.FieldPlan) {
	for _, plan := range plans {
		if plan.Strategy != classifier.StrategySkip || plan.Field.IsPadding {
			continue
		}
		log.Printf(
			"gen-ptrprint: warning: field %q of %s not classified, skipped",
			plan.Field.Name,
			info.Name,
		)
	}
}
