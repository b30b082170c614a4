// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"secrecy/internal/ast"
	"secrecy/internal/errors"
	"secrecy/internal/parser"
	"secrecy/internal/secrecy"
)

func main() {
	var printAST, debug bool
	var atSpec, path string

	for _, arg := range os.Args[1:] {
		switch {
		case arg == "--print":
			printAST = true
		case arg == "--debug":
			debug = true
		case strings.HasPrefix(arg, "--at="):
			atSpec = strings.TrimPrefix(arg, "--at=")
		default:
			path = arg
		}
	}

	if path == "" {
		fmt.Println("Usage: secrecy-cli [--print] [--debug] [--at=LINE:COL] <file.abs>")
		os.Exit(1)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	result := parser.ParseSourceWithMetadata(path, string(source))
	reporter := errors.NewErrorReporter(path, string(source))

	if len(result.ScanErrors) > 0 || len(result.ParseErrors) > 0 {
		for _, se := range result.ScanErrors {
			fmt.Print(reporter.FormatError(scanErrorToCompilerError(path, se)))
		}
		for _, pe := range result.ParseErrors {
			fmt.Print(reporter.FormatError(parseErrorToCompilerError(path, pe)))
		}
		os.Exit(1)
	}

	if printAST {
		fmt.Println(result.Model.String())
	}

	diags := secrecy.Run(result.Model)
	for _, d := range diags {
		fmt.Print(reporter.FormatError(d))
	}

	if atSpec != "" {
		printNodeAt(result, atSpec)
	}

	if debug {
		nodes := ast.CollectAllNodes(result.Model)
		tracked := result.MetadataVisitor.GetTracker().GetAllMetadata()
		fmt.Printf("AST nodes: %d, metadata-tracked nodes: %d\n", len(nodes), len(tracked))
		fmt.Println(result.GetDebugInfo())
	}

	if len(diags) > 0 {
		os.Exit(1)
	}
	color.Green("no secrecy leaks found in %s", path)
}

// printNodeAt resolves a "LINE:COL" hover-style query against the parsed
// source's metadata and prints the enclosing node's source range, source
// text, and any secrecy analysis the checking pass recorded for it.
func printNodeAt(result *parser.ParseResult, spec string) {
	line, col, ok := parseLineCol(spec)
	if !ok {
		color.Red("invalid --at value %q, expected LINE:COL", spec)
		return
	}

	meta := result.FindNodeByPosition(ast.Position{Line: line, Column: col})
	if meta == nil {
		fmt.Printf("no node found at %d:%d\n", line, col)
		return
	}

	fmt.Printf("%s: %q\n", meta.Source.String(), meta.SourceText)
	if meta.AnalysisInfo != nil {
		fmt.Printf("  level=%s pc=%s\n", meta.AnalysisInfo.Level, meta.AnalysisInfo.PCAtNode)
	}
}

func parseLineCol(spec string) (line, col int, ok bool) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	line, err1 := strconv.Atoi(parts[0])
	col, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return line, col, true
}

func scanErrorToCompilerError(path string, se parser.ScanError) errors.CompilerError {
	return errors.CompilerError{
		Level:   errors.Error,
		Message: se.Message,
		Position: ast.Position{
			Filename: path,
			Offset:   se.Position.Offset,
			Line:     se.Position.Line,
			Column:   se.Position.Column,
		},
		Length: max(se.Length, 1),
	}
}

func parseErrorToCompilerError(path string, pe parser.ParseError) errors.CompilerError {
	return errors.CompilerError{
		Level:   errors.Error,
		Message: pe.Message,
		Position: ast.Position{
			Filename: path,
			Offset:   pe.Position.Offset,
			Line:     pe.Position.Line,
			Column:   pe.Position.Column,
		},
		Length: 1,
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
