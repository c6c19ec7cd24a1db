package main

import (
	"fmt"
	"os"
	"strings"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/treepath/pkg/common"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = "JSON"

func main() {
	report := common.NewReporter("treepath-convert-tree")

	// Define command line flags.
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format ("+strings.Join(common.Formats, ", ")+")")
	var inputFormat = pflag.StringP("input-format", "i", DEFAULT_FORMAT, "Input format (JSON, YAML)")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var trim = pflag.Int("trim", 0, "Trim values for display purposes")
	var showPaths = pflag.Bool("show-paths", false, "Annotate nodes with their index paths (ASCIITREE, DOT)")
	var configFile = pflag.String("config", "", "YAML file of print options; flags given explicitly override it")
	var inputFile = pflag.String("input", "", "Input file (defaults to stdin)")
	var outputFile = pflag.String("output", "", "Output file (defaults to stdout)")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nConverts a tree between formats.\n")
		fmt.Fprintf(os.Stderr, "Reads from stdin and writes the converted tree to stdout unless --input/--output are given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		report.Version(Version)
		os.Exit(0)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	options := common.DefaultPrintOptions()
	if *configFile != "" {
		loaded, err := common.LoadPrintOptions(*configFile)
		if err != nil {
			report.Fatalf("reading config file '%s': %v", *configFile, err)
		}
		options = loaded
	}
	if *configFile == "" || pflag.CommandLine.Changed("format") {
		options.Format = *format
	}
	if *configFile == "" || pflag.CommandLine.Changed("indent") {
		options.Indent = *indent
	}
	if *configFile == "" || pflag.CommandLine.Changed("trim") {
		options.TrimTokenOnOutput = *trim
	}
	if *configFile == "" || pflag.CommandLine.Changed("show-paths") {
		options.ShowPaths = *showPaths
	}

	tree, err := common.ReadTreeFile(*inputFile, *inputFormat)
	if err != nil {
		report.Fatalf("reading input: %v", err)
	}

	if err := common.WriteTreeFile(*outputFile, tree, options); err != nil {
		report.Fatalf("writing output: %v", err)
	}
}
