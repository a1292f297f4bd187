package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunDumpContextStampsGeneratedBy(t *testing.T) {
	resetTranslateFlags()
	defer resetTranslateFlags()
	dumpGeneratedBy = ""
	defer func() { dumpGeneratedBy = "" }()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "add.ast.json")
	if err := os.WriteFile(inPath, []byte(addFunctionDump), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	dumpGeneratedBy = "c2go-test"

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	origStdout := os.Stdout
	os.Stdout = w
	runErr := runDumpContext(dumpContextCmd, []string{inPath})
	w.Close()
	os.Stdout = origStdout
	if runErr != nil {
		t.Fatalf("runDumpContext: %v", runErr)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte(`"generated_by"`)) || !bytes.Contains(buf.Bytes(), []byte("c2go-test")) {
		t.Errorf("expected the dumped JSON to carry a generated_by tag, got:\n%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("FunctionDecl")) {
		t.Errorf("expected the round-tripped dump to still carry the original nodes, got:\n%s", buf.String())
	}
}
