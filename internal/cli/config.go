package cli

// Config stores CLI options for a single generation run.
type Config struct {
	TypeName    string
	PkgPath     string
	Filename    string
	ShowVersion bool
}

// OutputFilename returns the generated file name used in each package
// directory.
func (c *Config) OutputFilename() string {
	return c.Filename
}
