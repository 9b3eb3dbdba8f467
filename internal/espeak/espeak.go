// Package espeak holds the knowledge about the downstream espeak-ng
// dictionary compiler: which phoneme strings it accepts, and how to
// invoke it on a generated dictionary directory.
package espeak

import (
	"fmt"
	"os/exec"
)

// Config holds settings for invoking the espeak-ng dictionary compiler.
type Config struct {
	Binary   string // espeak-ng executable name or path
	Language string // dictionary language to compile, e.g. "de"
}

// DefaultConfig returns the default configuration for the German
// dictionary.
func DefaultConfig() *Config {
	return &Config{
		Binary:   "espeak-ng",
		Language: "de",
	}
}

// Compiler wraps the espeak-ng dictionary compilation step.
type Compiler struct {
	config *Config
}

// NewCompiler creates a new Compiler with the given configuration.
func NewCompiler(config *Config) (*Compiler, error) {
	if config == nil {
		config = DefaultConfig()
	}

	// Check if espeak-ng is installed
	if err := checkInstalled(config.Binary); err != nil {
		return nil, err
	}

	return &Compiler{config: config}, nil
}

// Compile runs espeak-ng's dictionary compilation in dictDir. espeak-ng
// picks up the <lang>_extra file from its working directory, so dictDir
// must be the directory the import file was written to.
func (c *Compiler) Compile(dictDir string) error {
	if dictDir == "" {
		return fmt.Errorf("dictionary directory cannot be empty")
	}

	cmd := exec.Command(c.config.Binary, fmt.Sprintf("--compile=%s", c.config.Language))
	cmd.Dir = dictDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", c.config.Binary, err, string(output))
	}

	return nil
}

// checkInstalled verifies that the espeak-ng binary can be found.
func checkInstalled(binary string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s is not installed or not in PATH: %w", binary, err)
	}
	return nil
}
