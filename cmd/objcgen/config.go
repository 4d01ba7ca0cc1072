// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "objcgen.yaml"

// config holds the settings of a generate run. It is read from a YAML file
// and then overridden by whichever flags were set.
type config struct {
	ImportPaths []string `yaml:"import_paths"`
	Out         string   `yaml:"out"`
	Parallelism int      `yaml:"parallelism"`
	// FatalWarnings makes any warning fail the run.
	FatalWarnings bool `yaml:"fatal_warnings"`
}

type flags struct {
	config        string
	importPaths   []string
	out           string
	parallelism   int
	fatalWarnings bool
	verbose       bool
}

func bindFlags(set *pflag.FlagSet, f *flags) {
	set.StringVar(&f.config, "config", defaultConfigFile, "config file; a missing default file is ignored")
	set.StringSliceVarP(&f.importPaths, "import-path", "I", nil, "directory to search for imports (repeatable)")
	set.StringVarP(&f.out, "out", "o", ".", "output directory")
	set.IntVar(&f.parallelism, "parallelism", 0, "files to generate at once (0 means one per CPU)")
	set.BoolVar(&f.fatalWarnings, "fatal-warnings", false, "fail if the input produces any warning")
	set.BoolVarP(&f.verbose, "verbose", "v", false, "log every file written")
}

// loadConfig reads the config file named by the flags and applies every
// flag the user set on top of it.
func loadConfig(set *pflag.FlagSet, f *flags) (*config, error) {
	cfg := &config{Out: "."}
	data, err := os.ReadFile(f.config)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !set.Changed("config"):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", f.config, err)
		}
	}

	if set.Changed("import-path") {
		cfg.ImportPaths = f.importPaths
	}
	if set.Changed("out") || cfg.Out == "" {
		cfg.Out = f.out
	}
	if set.Changed("parallelism") {
		cfg.Parallelism = f.parallelism
	}
	if set.Changed("fatal-warnings") {
		cfg.FatalWarnings = f.fatalWarnings
	}
	if cfg.Parallelism < 0 {
		return nil, fmt.Errorf("parallelism must not be negative, got %d", cfg.Parallelism)
	}
	return cfg, nil
}
