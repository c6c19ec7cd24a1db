package main

import (
	"fmt"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/treepath/pkg/common"
	"github.com/spicery/treepath/pkg/rewriter"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `treepath-rewrite - applies a YAML edit script to a tree`

func main() {
	report := common.NewReporter("treepath-rewrite")

	var showHelp, showVersion, showDiff, trace bool
	var inputFile, outputFile, rulesFile, format, inputFormat string

	// Set up custom usage function that includes the description and flags
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\nUsage:\n", usage)
		pflag.PrintDefaults()
	}

	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version")
	pflag.StringVar(&inputFile, "input", "", "Input file (defaults to stdin)")
	pflag.StringVar(&outputFile, "output", "", "Output file (defaults to stdout)")
	pflag.StringVar(&rulesFile, "rules", "", "YAML edit script (required)")
	pflag.StringVarP(&format, "format", "f", "JSON", "Output format")
	pflag.StringVarP(&inputFormat, "input-format", "i", "JSON", "Input format (JSON, YAML)")
	pflag.BoolVar(&showDiff, "diff", false, "Write a diff of the tree's paths to stderr")
	pflag.BoolVar(&trace, "trace", false, "Report each applied edit on stderr")

	pflag.Parse()

	if showHelp {
		pflag.Usage()
		os.Exit(0)
	}

	if showVersion {
		report.Version(Version)
		os.Exit(0)
	}

	// Reject any positional arguments
	if len(pflag.Args()) > 0 {
		report.Errorf("Unexpected positional arguments. Use --input and --output flags instead.")
		pflag.Usage()
		os.Exit(1)
	}

	if rulesFile == "" {
		report.Errorf("--rules flag is required")
		pflag.Usage()
		os.Exit(1)
	}

	config, err := rewriter.LoadRewriteConfig(rulesFile)
	if err != nil {
		report.Fatalf("loading edit script '%s': %v", rulesFile, err)
	}
	r, err := rewriter.NewRewriter(config)
	if err != nil {
		report.Fatalf("%v", err)
	}
	if trace {
		r.Trace = os.Stderr
	}

	tree, err := common.ReadTreeFile(inputFile, inputFormat)
	if err != nil {
		report.Fatalf("reading input: %v", err)
	}

	var before *common.Node
	if showDiff {
		before = tree.Clone()
	}

	if err := r.Rewrite(tree); err != nil {
		report.Fatalf("%v", err)
	}

	options := common.DefaultPrintOptions()
	options.Format = format

	if showDiff {
		diff, err := common.DiffTrees(before, tree, options)
		if err != nil {
			report.Fatalf("computing diff: %v", err)
		}
		fmt.Fprint(os.Stderr, diff)
	}

	if err := common.WriteTreeFile(outputFile, tree, options); err != nil {
		report.Fatalf("writing output: %v", err)
	}
}
