package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/hikelist/internal/config"
)

func TestRunReturnsLogOpenError(t *testing.T) {
	cfg := config.Config{Log: config.LogConfig{Path: filepath.Join(t.TempDir(), "missing", "hikelist.log")}}
	err := run(cfg)
	if err == nil {
		t.Fatal("expected error for unwritable log path")
	}
	if !strings.Contains(err.Error(), "open log") {
		t.Fatalf("err = %v, want open log error", err)
	}
}
