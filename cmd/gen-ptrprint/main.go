package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seitarof/ptrprint/internal/classifier"
	"github.com/seitarof/ptrprint/internal/cli"
	"github.com/seitarof/ptrprint/internal/generator"
	"github.com/seitarof/ptrprint/internal/parser"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	p := parser.New()
	c := classifier.New(classifier.DefaultRules()...)
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)

	runner := cli.NewRunner(p, c, g)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
