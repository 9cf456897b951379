package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// DefaultFilename is the generated file name when --output is omitted.
const DefaultFilename = "ptrprint_gen.go"

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("gen-ptrprint", pflag.ContinueOnError)
	fs.StringVarP(&cfg.TypeName, "type", "t", "", "root struct type to generate field-visiting methods for")
	fs.StringVarP(&cfg.PkgPath, "pkg", "p", "", "package path containing the root type")
	fs.StringVarP(&cfg.Filename, "output", "o", DefaultFilename, "generated file name, written into each package directory")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if strings.TrimSpace(cfg.TypeName) == "" {
		return nil, fmt.Errorf("--type is required")
	}
	if strings.TrimSpace(cfg.PkgPath) == "" {
		return nil, fmt.Errorf("--pkg is required")
	}
	if strings.TrimSpace(cfg.Filename) == "" {
		return nil, fmt.Errorf("--output must not be empty")
	}

	return cfg, nil
}
