package main

import (
	"flag"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds every CLI setting. A TOML file given with -config fills it
// first; flags set on the command line override the file.
type Config struct {
	Procs         int    `toml:"procs"`          // P; 0 selects from the physical core count
	KernelWorkers int    `toml:"kernel_workers"` // pool workers per block product
	ExtraRounds   int    `toml:"extra_rounds"`
	StepBarrier   bool   `toml:"step_barrier"`
	Inf           string `toml:"inf"` // rendering of unreachable pairs
	Table         bool   `toml:"table"`
	NoColor       bool   `toml:"no_color"`
	Progress      bool   `toml:"progress"`
	Stats         bool   `toml:"stats"`
	Verify        bool   `toml:"verify"`
}

func defaultConfig() Config {
	return Config{Procs: 1, KernelWorkers: 1, Inf: "inf"}
}

// loadConfig decodes path over base. Unknown keys are an error.
func loadConfig(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, errors.Wrapf(err, "failed to load config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, errors.Errorf("config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// flagBinding ties one flag name to the Config field it sets.
type flagBinding struct {
	name  string
	usage string
	bind  func(fs *flag.FlagSet, c *Config, name, usage string)
	copy  func(dst, src *Config)
}

var bindings = []flagBinding{
	{"procs", "number of units P (a perfect square; 0 = auto from physical cores)",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.IntVar(&c.Procs, n, c.Procs, u) },
		func(d, s *Config) { d.Procs = s.Procs }},
	{"kernel-workers", "pool workers per block product",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.IntVar(&c.KernelWorkers, n, c.KernelWorkers, u) },
		func(d, s *Config) { d.KernelWorkers = s.KernelWorkers }},
	{"extra-rounds", "squaring rounds beyond the required count",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.IntVar(&c.ExtraRounds, n, c.ExtraRounds, u) },
		func(d, s *Config) { d.ExtraRounds = s.ExtraRounds }},
	{"step-barrier", "synchronise all units after every Fox step",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.BoolVar(&c.StepBarrier, n, c.StepBarrier, u) },
		func(d, s *Config) { d.StepBarrier = s.StepBarrier }},
	{"inf", "token printed for unreachable pairs",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.StringVar(&c.Inf, n, c.Inf, u) },
		func(d, s *Config) { d.Inf = s.Inf }},
	{"table", "render the result as a table",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.BoolVar(&c.Table, n, c.Table, u) },
		func(d, s *Config) { d.Table = s.Table }},
	{"no-color", "disable colours in table output",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.BoolVar(&c.NoColor, n, c.NoColor, u) },
		func(d, s *Config) { d.NoColor = s.NoColor }},
	{"progress", "show a progress bar over squaring rounds",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.BoolVar(&c.Progress, n, c.Progress, u) },
		func(d, s *Config) { d.Progress = s.Progress }},
	{"stats", "print run statistics to stderr",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.BoolVar(&c.Stats, n, c.Stats, u) },
		func(d, s *Config) { d.Stats = s.Stats }},
	{"verify", "cross-check the result with sequential Floyd-Warshall",
		func(fs *flag.FlagSet, c *Config, n, u string) { fs.BoolVar(&c.Verify, n, c.Verify, u) },
		func(d, s *Config) { d.Verify = s.Verify }},
}

// registerFlags binds every Config field to fs and returns the struct the
// flags write into.
func registerFlags(fs *flag.FlagSet) *Config {
	c := defaultConfig()
	for _, b := range bindings {
		b.bind(fs, &c, b.name, b.usage)
	}

	return &c
}

// resolveConfig merges the optional file with the flags the user set
// explicitly. fs must already be parsed.
func resolveConfig(fs *flag.FlagSet, fromFlags *Config, path string) (Config, error) {
	if path == "" {
		return *fromFlags, nil
	}
	cfg, err := loadConfig(path, defaultConfig())
	if err != nil {
		return cfg, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, b := range bindings {
		if set[b.name] {
			b.copy(&cfg, fromFlags)
		}
	}

	return cfg, nil
}
