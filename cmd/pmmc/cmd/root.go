package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pmm-lang/pmmc/internal/compiler"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const (
	tokenOutputPath = "tokenOutput.txt"
	diagOutputPath  = "output.txt"
)

var rootCmd = &cobra.Command{
	Use:   "pmmc <source-file>",
	Short: "P‑‑ front-end compiler",
	Long: `pmmc is the front-end compiler for P‑‑, a small Pascal-family teaching
language. It runs lexical analysis and LL(1) syntactic validation over a
single source file, never building an AST, performing semantic checks, or
generating code.

It writes the classified token stream to tokenOutput.txt and every
diagnostic to output.txt, both mirrored to standard output, then prints a
one-line compilation summary.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print extra diagnostic detail about the run")
}

// runCompile implements the CLI contract: read the one positional
// argument, run the driver, mirror both output sinks to stdout, print the
// summary line, and map failures to exit code -1.
func runCompile(cmd *cobra.Command, args []string) error {
	path := args[0]

	tokenFile, err := os.Create(tokenOutputPath)
	if err != nil {
		exitWithError("could not create %s: %v", tokenOutputPath, err)
	}
	defer tokenFile.Close()

	diagFile, err := os.Create(diagOutputPath)
	if err != nil {
		exitWithError("could not create %s: %v", diagOutputPath, err)
	}
	defer diagFile.Close()

	tokens := io.MultiWriter(tokenFile, os.Stdout)
	diagnostics := io.MultiWriter(diagFile, os.Stdout)

	driver := compiler.New(tokens, diagnostics)
	summary, err := driver.Run(path)
	if err != nil {
		exitWithError("could not read %s: %v", path, err)
	}

	if summary.ErrorCount == 0 {
		fmt.Println("Program compiled successfully")
	} else {
		fmt.Printf("Program compiled with %d errors\n", summary.ErrorCount)
	}

	return nil
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(-1)
}
