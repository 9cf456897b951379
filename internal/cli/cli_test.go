package cli

import "testing"

func TestParseArgs_Success(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--type", "Node",
		"--pkg", "./nodes",
	})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.TypeName != "Node" || cfg.PkgPath != "./nodes" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.Filename != DefaultFilename {
		t.Fatalf("filename = %q, want default %q", cfg.Filename, DefaultFilename)
	}
}

func TestParseArgs_CustomOutput(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"-t", "Node",
		"-p", "./nodes",
		"-o", "node_visit_gen.go",
	})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.OutputFilename() != "node_visit_gen.go" {
		t.Fatalf("output filename = %q", cfg.OutputFilename())
	}
}

func TestParseArgs_RequiresType(t *testing.T) {
	_, err := ParseArgs([]string{"--pkg", "./nodes"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestParseArgs_RequiresPkg(t *testing.T) {
	_, err := ParseArgs([]string{"--type", "Node"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
