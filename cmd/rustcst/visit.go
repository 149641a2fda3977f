package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rustcst/parser/cst"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/parser"
	"github.com/spf13/cobra"
)

var visitDemoCmd = &cobra.Command{
	Use:   "visit-demo <file> [file...]",
	Short: "Walk a parsed file with cst.Visitor and print a per-kind node count",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVisitDemo,
}

func runVisitDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if depth := resolveMaxDepth(maxDepth, cfg.MaxDepth); depth > 0 {
		parser.SetMaxDepth(depth)
	}

	failed := false
	for _, path := range args {
		if err := visitOne(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("one or more files failed to parse")
	}
	return nil
}

func visitOne(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	file, d := parser.Parse(source)
	if d != nil {
		fmt.Fprint(os.Stderr, diag.Render(source, *d))
		return fmt.Errorf("parse failed")
	}

	sv := &summaryVisitor{counts: make(map[string]int)}
	cst.Walk(file, sv)

	kinds := make([]string, 0, len(sv.counts))
	for k := range sv.counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	fmt.Printf("%s:\n", path)
	for _, k := range kinds {
		fmt.Printf("  %-12s %d\n", k, sv.counts[k])
	}
	return nil
}

// summaryVisitor tallies node kinds by overriding the hooks a node-count
// summary cares about, embedding BaseVisitor for everything else (spec §4.7's
// ~130-hook protocol is built for partial overriding like this, not just
// exhaustive rewriting).
type summaryVisitor struct {
	cst.BaseVisitor
	counts map[string]int
}

func (s *summaryVisitor) VisitFunction(*cst.Function)     { s.counts["fn"]++ }
func (s *summaryVisitor) VisitStruct(*cst.Struct)         { s.counts["struct"]++ }
func (s *summaryVisitor) VisitEnum(*cst.Enum)             { s.counts["enum"]++ }
func (s *summaryVisitor) VisitTrait(*cst.Trait)           { s.counts["trait"]++ }
func (s *summaryVisitor) VisitImpl(*cst.Impl)             { s.counts["impl"]++ }
func (s *summaryVisitor) VisitConst(*cst.Const)           { s.counts["const"]++ }
func (s *summaryVisitor) VisitStatic(*cst.Static)         { s.counts["static"]++ }
func (s *summaryVisitor) VisitUse(*cst.Use)               { s.counts["use"]++ }
func (s *summaryVisitor) VisitModule(*cst.Module)         { s.counts["mod"]++ }
func (s *summaryVisitor) VisitTypeAlias(*cst.TypeAlias)   { s.counts["type"]++ }
func (s *summaryVisitor) VisitMacroCall(*cst.MacroCall)   { s.counts["macro_call"]++ }
func (s *summaryVisitor) VisitAttribute(*cst.Attribute)   { s.counts["attribute"]++ }
func (s *summaryVisitor) VisitExternCrate(*cst.ExternCrate) { s.counts["extern_crate"]++ }
func (s *summaryVisitor) VisitExternBlock(*cst.ExternBlock) { s.counts["extern_block"]++ }
func (s *summaryVisitor) VisitCall(*cst.Call)             { s.counts["call_expr"]++ }
func (s *summaryVisitor) VisitMatch(*cst.Match)           { s.counts["match_expr"]++ }
func (s *summaryVisitor) VisitIf(*cst.If)                 { s.counts["if_expr"]++ }
func (s *summaryVisitor) VisitLiteral(*cst.Literal)       { s.counts["literal"]++ }
