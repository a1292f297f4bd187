package cmd

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
	"github.com/mbsulliv/c2go/transpiler"
	"github.com/spf13/cobra"
)

var (
	inputFormat string
	packageName string
	outputPath  string
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate a C AST dump into a Go source file",
	Long: `Read a serialized Clang AST (JSON or YAML) from a file or stdin,
lower it through the Renamer, Type Converter and Translator, and print
the resulting Go source.

Examples:
  # Translate a JSON dump on disk
  c2go translate prog.ast.json

  # Translate YAML piped in over stdin
  cat prog.ast.yaml | c2go translate --format=yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&inputFormat, "format", "", "input format: json or yaml (default: guessed from file extension, json for stdin)")
	translateCmd.Flags().StringVar(&packageName, "package", "main", "package name for the emitted Go file")
	translateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to this file instead of stdout")
}

func runTranslate(_ *cobra.Command, args []string) (err error) {
	defer diag.Recover(&err)

	data, filename, readErr := readInput(args)
	if readErr != nil {
		return readErr
	}

	inputFmt := resolveFormat(filename)
	ctx, loadErr := loadContext(data, inputFmt)
	if loadErr != nil {
		return loadErr
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "loaded %d top-level node(s) from %s (%s)\n", len(ctx.TopNodes), displayName(filename), inputFmt)
	}

	translation := transpiler.New(ctx)
	translation.Translate()
	file := translation.Emit(packageName)

	src, renderErr := renderSource(file)
	if renderErr != nil {
		return diag.Wrap(renderErr, "printing translated source")
	}

	// go/format additionally normalizes import grouping and runs
	// gofmt's simplification pass over go/printer's raw output; fall
	// back to the unformatted rendering if the tree somehow doesn't
	// parse back (still useful for debugging a malformed lowering).
	if formatted, err := format.Source(src); err == nil {
		src = formatted
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(outputPath, src, 0o644)
}

func renderSource(file *ast.File) ([]byte, error) {
	var buf bytes.Buffer
	fset := token.NewFileSet()
	if err := printer.Fprint(&buf, fset, file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", diag.Wrap(err, "reading %s", args[0])
		}
		return data, args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", diag.Wrap(err, "reading stdin")
	}
	return data, "<stdin>", nil
}

func resolveFormat(filename string) string {
	if inputFormat != "" {
		return strings.ToLower(inputFormat)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func loadContext(data []byte, formatName string) (*astctx.Context, error) {
	switch formatName {
	case "yaml":
		return astctx.LoadYAML(data)
	case "json":
		return astctx.LoadJSON(data)
	default:
		return nil, fmt.Errorf("unknown input format %q (want json or yaml)", formatName)
	}
}

func displayName(filename string) string {
	if filename == "" {
		return "<stdin>"
	}
	return filename
}
