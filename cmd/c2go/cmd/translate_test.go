package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const addFunctionDump = `{
  "top_nodes": [1],
  "nodes": {
    "1": {"tag": "FunctionDecl", "children": [2, 3, 4], "type_id": 10, "extras": ["add"]},
    "2": {"tag": "CompoundStmt", "children": [5]},
    "3": {"tag": "ParmVarDecl", "type_id": 10, "extras": ["a"]},
    "4": {"tag": "ParmVarDecl", "type_id": 10, "extras": ["b"]},
    "5": {"tag": "ReturnStmt", "children": [6]},
    "6": {"tag": "BinaryOperator", "type_id": 10, "children": [7, 8], "extras": ["+"]},
    "7": {"tag": "DeclRefExpr", "type_id": 10, "extras": ["a"]},
    "8": {"tag": "DeclRefExpr", "type_id": 10, "extras": ["b"]}
  },
  "types": {
    "10": {"tag": "Builtin", "unsigned": false, "extras": ["int"]}
  }
}`

// resetTranslateFlags restores translate's package-level flag state
// between tests, since cobra flag variables are shared package
// globals rather than per-invocation state.
func resetTranslateFlags() {
	inputFormat = ""
	packageName = "main"
	outputPath = ""
}

func TestRunTranslateWritesGoSourceToOutputFile(t *testing.T) {
	resetTranslateFlags()
	defer resetTranslateFlags()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "add.ast.json")
	if err := os.WriteFile(inPath, []byte(addFunctionDump), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	outPath := filepath.Join(dir, "add.go")
	outputPath = outPath

	if err := runTranslate(translateCmd, []string{inPath}); err != nil {
		t.Fatalf("runTranslate: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading translated output: %v", err)
	}
	got := string(out)
	for _, want := range []string{"package main", "func add(a int32, b int32) int32", "return a + b"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRunTranslateHonorsPackageFlag(t *testing.T) {
	resetTranslateFlags()
	defer resetTranslateFlags()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "add.ast.json")
	if err := os.WriteFile(inPath, []byte(addFunctionDump), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	outPath := filepath.Join(dir, "add.go")
	outputPath = outPath
	packageName = "translated"

	if err := runTranslate(translateCmd, []string{inPath}); err != nil {
		t.Fatalf("runTranslate: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading translated output: %v", err)
	}
	if !strings.Contains(string(out), "package translated") {
		t.Errorf("expected --package to control the emitted package name, got:\n%s", out)
	}
}

func TestRunTranslateRejectsUnknownFormat(t *testing.T) {
	resetTranslateFlags()
	defer resetTranslateFlags()

	inputFormat = "xml"
	dir := t.TempDir()
	inPath := filepath.Join(dir, "add.ast.json")
	if err := os.WriteFile(inPath, []byte(addFunctionDump), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := runTranslate(translateCmd, []string{inPath}); err == nil {
		t.Fatalf("expected an error for an unknown --format value")
	}
}
