package main

import (
	"flag"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
)

// DefaultOutputName is the generated file name used when -output is not set.
const DefaultOutputName = "builder_gen.go"

// Options is the command line configuration of buildergen.
type Options struct {
	Output   string
	Package  string
	Prefix   string        `default:"Set"`
	Workers  int           `default:"0"`
	Check    bool          `default:"false"`
	Watch    bool          `default:"false"`
	Debounce time.Duration `default:"300ms"`
	Verbose  bool          `default:"false"`

	Dir   string `default:"."`
	Types []string
}

// parseOptions reads flags and positional arguments into Options. The first
// positional argument is the package directory, the rest are type names.
func parseOptions(args []string) (*Options, error) {
	opts := &Options{}
	if err := defaults.Set(opts); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("buildergen", flag.ContinueOnError)
	fs.StringVar(&opts.Output, "output", opts.Output,
		"Location where generated methods will be written (default <dir>/"+DefaultOutputName+")")
	fs.StringVar(&opts.Package, "package", opts.Package,
		"Name of package to use in output file (default: the source package name)")
	fs.StringVar(&opts.Prefix, "prefix", opts.Prefix,
		"Prefix of generated method names; a prefix ending in _ keeps field names as written")
	fs.IntVar(&opts.Workers, "workers", opts.Workers,
		"Number of records generated concurrently (0 means GOMAXPROCS)")
	fs.BoolVar(&opts.Check, "check", opts.Check,
		"Do not write; fail with a diff if the output file is out of date")
	fs.BoolVar(&opts.Watch, "watch", opts.Watch,
		"Regenerate whenever a Go file in the package changes")
	fs.DurationVar(&opts.Debounce, "debounce", opts.Debounce,
		"Quiet period before regenerating in watch mode")
	fs.BoolVar(&opts.Verbose, "v", opts.Verbose,
		"Print the field inventory of every record")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		opts.Dir = fs.Arg(0)
		opts.Types = fs.Args()[1:]
	}
	if opts.Output == "" {
		opts.Output = filepath.Join(opts.Dir, DefaultOutputName)
	}
	return opts, nil
}

func (o *Options) typeFilter() map[string]struct{} {
	filter := make(map[string]struct{}, len(o.Types))
	for _, name := range o.Types {
		filter[name] = struct{}{}
	}
	return filter
}
