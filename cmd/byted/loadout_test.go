package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/bytedspace/byted-space/internal/config"
)

// captureStdout returns what fn prints to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestResolveAndPrintCountsDistinctModifiers(t *testing.T) {
	flagHull, flagNoBudget = "frigate", true
	defer func() { flagHull, flagNoBudget = "frigate", false }()

	out := captureStdout(t, func() {
		resolveAndPrint(nil, config.DefaultConfig(), []string{"acceleration", "acceleration"})
	})

	if !strings.Contains(out, "with 1 modifiers") {
		t.Errorf("output = %q, expected duplicates to count once", out)
	}
	if !strings.Contains(out, "movement_speed") {
		t.Errorf("output = %q, expected the resolved stat table", out)
	}
}
