package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/toyz/specgen/internal/cli"
	"github.com/toyz/specgen/internal/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("specgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFlag      = fs.String("config", "", "Path to a YAML config file (defaults to ./"+cli.DefaultConfigFile+" when present)")
		outFlag         = fs.String("out", "", "Directory for spec files, relative to each source (defaults to beside the source)")
		suffixFlag      = fs.String("suffix", "", "Spec file suffix replacing the source extension (default \""+cli.DefaultSpecSuffix+"\")")
		descriptorFlag  = fs.String("descriptor-suffix", "", "Suffix appended to a source path to find its descriptor (default \""+cli.DefaultDescriptorSuffix+"\")")
		concurrencyFlag = fs.Int("concurrency", 0, "Number of files generated at once (defaults to the number of CPUs)")
		stdoutFlag      = fs.Bool("stdout", false, "Print specs instead of writing files")
		forceFlag       = fs.Bool("force", false, "Overwrite existing spec files")
		cleanFlag       = fs.Bool("clean", false, "Delete unedited generated spec files of the matched sources")
		verboseFlag     = fs.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag       = fs.Bool("quiet", false, "Only show errors and final results")
		helpFlag        = fs.Bool("help", false, "Show help information")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: specgen [options] <source-patterns...>\n\n")
		fmt.Fprintf(stderr, "Spec Scaffolding Generator\n")
		fmt.Fprintf(stderr, "Generates placeholder vitest specs for the exports of JavaScript modules.\n")
		fmt.Fprintf(stderr, "Each source is paired with an AST descriptor sidecar (e.g. use-counter.js.json).\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nArguments:\n")
		fmt.Fprintf(stderr, "  source-patterns    Source files or doublestar globs like 'src/**/*.js'\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  specgen 'src/composables/**/*.js'             # Generate specs beside each source\n")
		fmt.Fprintf(stderr, "  specgen --out __tests__ src/utils/format.js   # Write into a __tests__ directory\n")
		fmt.Fprintf(stderr, "  specgen --stdout src/use-counter.js           # Print the spec\n")
		fmt.Fprintf(stderr, "  specgen --clean 'src/**/*.js'                 # Delete generated specs\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	if *helpFlag {
		fs.Usage()
		return 0
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		fmt.Fprintf(stderr, "Error: At least one source pattern is required\n\n")
		fs.Usage()
		return 1
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	diagnostics.SetOutput(stdout, stderr)

	configPath, required := cli.DefaultConfigFile, false
	if *configFlag != "" {
		configPath, required = *configFlag, true
	}

	config, err := cli.LoadConfig(configPath, required)
	if err != nil {
		diagnostics.Error("Invalid configuration: %v", err)
		return 1
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			config.OutDir = *outFlag
		case "suffix":
			config.SpecSuffix = *suffixFlag
		case "descriptor-suffix":
			config.DescriptorSuffix = *descriptorFlag
		case "concurrency":
			config.Concurrency = *concurrencyFlag
		case "force":
			config.Force = *forceFlag
		}
	})
	config.Patterns = patterns
	config.Stdout = *stdoutFlag
	config.Verbose = *verboseFlag

	if *stdoutFlag {
		// keep stdout clean for the generated specs
		diagnostics.SetOutput(stderr, stderr)
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Patterns: %s", strings.Join(config.Patterns, ", "))
		diagnostics.List("Descriptor suffix: %s", config.DescriptorSuffix)
		diagnostics.List("Spec suffix: %s", config.SpecSuffix)
		if config.OutDir != "" {
			diagnostics.List("Output directory: %s", config.OutDir)
		}
		diagnostics.List("Concurrency: %d", config.Concurrency)
	}

	if *cleanFlag {
		cleaned, err := cli.NewCleaner(config).CleanGeneratedFiles()
		for _, path := range cleaned.Removed {
			diagnostics.Verbose("Removed %s", path)
		}
		for _, path := range cleaned.Kept {
			diagnostics.Warn("Keeping %s: it differs from the generated scaffold", path)
		}
		if err != nil {
			diagnostics.Error("Clean operation failed: %v", err)
			return 1
		}
		diagnostics.Success("Removed %d spec files", len(cleaned.Removed))
		return 0
	}

	generator := cli.NewGenerator(diagnostics)
	generator.SetStdout(stdout)

	runErr := generator.Run(ctx, config)

	summary := generator.GetSummary()
	diagnostics.Summary("Generation Complete!", map[string]interface{}{
		"Sources matched": summary.SourcesMatched,
		"Specs generated": summary.SpecsGenerated,
		"Specs skipped":   summary.SpecsSkipped,
		"Specs failed":    summary.SpecsFailed,
		"Test blocks":     summary.BlocksWritten,
	})

	if runErr != nil {
		if summary.SpecsFailed == 0 {
			diagnostics.Error("Generation failed: %v", runErr)
		}
		return 1
	}

	return 0
}
