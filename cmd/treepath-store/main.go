package main

import (
	"errors"
	"fmt"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/treepath/pkg/common"
	"github.com/spicery/treepath/pkg/store"
	"github.com/spicery/treepath/pkg/treenode"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `treepath-store - keeps named trees in a SQLite database`

func main() {
	report := common.NewReporter("treepath-store")

	var showHelp, showVersion, migrate, list bool
	var dbFile, inputFile, outputFile, saveName, loadName, deleteName, pathText, format, inputFormat string

	// Set up custom usage function.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\nUsage:\n", usage)
		pflag.PrintDefaults()
	}

	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.BoolVar(&showVersion, "version", false, "Show version")
	pflag.BoolVar(&migrate, "migrate", false, "Perform database migration")
	pflag.StringVar(&dbFile, "db", "", "Database file path (required)")
	pflag.StringVar(&inputFile, "input", "", "Input file for --save (defaults to stdin)")
	pflag.StringVar(&outputFile, "output", "", "Output file for --load (defaults to stdout)")
	pflag.StringVar(&saveName, "save", "", "Store the input tree under this name")
	pflag.StringVar(&loadName, "load", "", "Print the tree stored under this name")
	pflag.StringVar(&deleteName, "delete", "", "Delete the tree stored under this name")
	pflag.BoolVar(&list, "list", false, "List stored tree names")
	pflag.StringVarP(&pathText, "path", "p", "", "With --load, print only the subtree at this index path")
	pflag.StringVarP(&format, "format", "f", "JSON", "Output format for --load")
	pflag.StringVarP(&inputFormat, "input-format", "i", "JSON", "Input format for --save (JSON, YAML)")

	pflag.Parse()

	if showHelp {
		pflag.Usage()
		os.Exit(0)
	}

	if showVersion {
		report.Version(Version)
		os.Exit(0)
	}

	// Database file is mandatory.
	if dbFile == "" {
		report.Errorf("--db flag is required")
		pflag.Usage()
		os.Exit(1)
	}

	commands := 0
	for _, set := range []bool{saveName != "", loadName != "", deleteName != "", list} {
		if set {
			commands++
		}
	}
	if commands > 1 {
		report.Fatalf("use only one of --save, --load, --delete and --list")
	}

	cmd := command{
		migrate:     migrate,
		list:        list,
		inputFile:   inputFile,
		outputFile:  outputFile,
		saveName:    saveName,
		loadName:    loadName,
		deleteName:  deleteName,
		pathText:    pathText,
		format:      format,
		inputFormat: inputFormat,
	}
	if err := cmd.run(dbFile, report); err != nil {
		report.Fatalf("%v", err)
	}
}

type command struct {
	migrate, list                  bool
	inputFile, outputFile          string
	saveName, loadName, deleteName string
	pathText, format, inputFormat  string
}

// run opens the database and performs the selected command. The database is
// closed on every path out.
func (c *command) run(dbFile string, report *common.Reporter) error {
	// Check if the database file exists.
	_, err := os.Stat(dbFile)
	fileExists := err == nil

	s, err := store.Open(dbFile)
	if err != nil {
		return err
	}
	defer s.Close()

	// Check if migration is needed.
	upToDate, err := s.CheckMigration()
	if err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}

	if !upToDate {
		// A fresh database is migrated automatically; an existing one needs --migrate.
		if fileExists && !c.migrate {
			return errors.New("database schema is not up to date; use --migrate to update")
		}
		if err := s.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		if fileExists {
			report.Infof("Database migration completed successfully.")
		} else {
			report.Infof("Database initialized successfully.")
		}
	}

	switch {
	case c.saveName != "":
		tree, err := common.ReadTreeFile(c.inputFile, c.inputFormat)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if err := s.SaveTree(c.saveName, tree); err != nil {
			return err
		}
		report.Infof("Saved tree %q.", c.saveName)

	case c.loadName != "":
		path, err := treenode.ParsePath(c.pathText)
		if err != nil {
			return err
		}
		tree, err := s.LoadNode(c.loadName, path)
		if err != nil {
			return err
		}
		options := common.DefaultPrintOptions()
		options.Format = c.format
		if err := common.WriteTreeFile(c.outputFile, tree, options); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

	case c.deleteName != "":
		if err := s.DeleteTree(c.deleteName); err != nil {
			return err
		}
		report.Infof("Deleted tree %q.", c.deleteName)

	case c.list:
		names, err := s.ListTrees()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
	}
	return nil
}
