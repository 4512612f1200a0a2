package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunPlotWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	plotOutDir = dir
	plotHTML = filepath.Join(dir, "anscombe.html")

	if err := runPlot(plotCmd, nil); err != nil {
		t.Fatalf("runPlot() error = %v", err)
	}

	// All four PNGs and the fully flushed HTML page must exist.
	names := []string{
		"anscombe_i.png",
		"anscombe_ii.png",
		"anscombe_iii.png",
		"anscombe_iv.png",
		"anscombe.html",
	}
	for _, name := range names {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("output %s is empty", name)
		}
	}
}
