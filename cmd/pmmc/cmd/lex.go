package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmm-lang/pmmc/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	showPos     bool
	showType    bool
	onlyErrors  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a P‑‑ file and print the resulting tokens",
	Long: `Tokenize (lex) a P‑‑ source file and print the classified token stream.

This command is useful for debugging the lexer in isolation, without
running the parser over the result.

Examples:
  # Tokenize a script file
  pmmc lex program.pmm

  # Tokenize an inline expression
  pmmc lex -e "x := 1 + 2;"

  # Show token classes and positions
  pmmc lex --show-type --show-pos program.pmm

  # Show only lexical errors
  pmmc lex --only-errors program.pmm`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:col)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token class names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only lexical errors")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case lexEvalExpr != "":
		input = lexEvalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(strings.NewReader(input), os.Stdout)

	tokenCount := 0
	for {
		tok := l.NextToken()
		tokenCount++

		if !onlyErrors {
			printToken(tok)
		}

		if tok.Class == lexer.LAMBDA {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if n := len(l.Errors()); n > 0 {
			fmt.Printf("Errors: %d\n", n)
		}
	}

	if errs := l.Errors(); onlyErrors && len(errs) > 0 {
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Class)
	}

	if tok.Class == lexer.LAMBDA {
		output += " EOF"
	} else {
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
