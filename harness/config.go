// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/stackasm/render"
)

// CONFIG_FILE is the configuration file name looked up in a project directory.
const CONFIG_FILE = "stackasm.toml"

// Config describes a simulation project.
//
// Paths are relative to Dir, which is also the simulator working directory.
type Config struct {
	Dir       string        `toml:"-"`         // Project directory.
	Programs  string        `toml:"programs"`  // Directory of test programs.
	Memory    string        `toml:"memory"`    // Rendered instruction memory file.
	Module    string        `toml:"module"`    // Verilog module name of the memory.
	Results   string        `toml:"results"`   // Results file written by the testbench.
	Simulator []string      `toml:"simulator"` // Simulator command line.
	Viewers   []string      `toml:"viewers"`   // Executables to replace with no-op stubs.
	Timeout   time.Duration `toml:"timeout"`   // Per-simulation timeout, zero for none.
}

// DefaultConfig returns the configuration of an apio project in dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:       dir,
		Programs:  "programs",
		Memory:    "instruction_memory.v",
		Module:    render.DEFAULT_MODULE,
		Results:   "top_tb_data.star",
		Simulator: []string{"apio", "sim"},
		Viewers:   []string{"gtkwave"},
		Timeout:   5 * time.Minute,
	}
}

// LoadConfig reads a TOML configuration file over the defaults for the
// file's directory. A missing file yields the defaults.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig(filepath.Dir(path))

	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return
	}

	if keys := meta.Undecoded(); len(keys) != 0 {
		err = ErrConfigKey(keys[0].String())
		return
	}

	return
}

// Path resolves a project path against Dir.
func (cfg *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Dir, name)
}
