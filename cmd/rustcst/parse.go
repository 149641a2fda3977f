package main

import (
	"fmt"
	"os"

	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file> [file...]",
	Short: "Parse one or more source files and print their concrete syntax trees",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	outFormat := resolveFormat(format, cfg.Format)
	if depth := resolveMaxDepth(maxDepth, cfg.MaxDepth); depth > 0 {
		parser.SetMaxDepth(depth)
	}

	failed := false
	for _, path := range args {
		if err := parseOne(path, outFormat); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("one or more files failed to parse")
	}
	return nil
}

func parseOne(path, outFormat string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	file, d := parser.Parse(source)
	if d != nil {
		fmt.Fprint(os.Stderr, diag.Render(source, *d))
		return fmt.Errorf("parse failed")
	}
	return writeEncoded(os.Stdout, outFormat, file)
}
