package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"debug": true,
		"history": "/tmp/h.json",
		"binops": {">": 10, "%": 40, "<": 0}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug || cfg.History != "/tmp/h.json" {
		t.Fatalf("config %+v", cfg)
	}
	if cfg.Binops['>'] != 10 || cfg.Binops['%'] != 40 || cfg.Binops['<'] != 0 {
		t.Fatalf("binops %v", cfg.Binops)
	}

	prec := cfg.Precedence()
	if prec.Of('>') != 10 || prec.Of('<') != -1 || prec.Of('+') != 20 {
		t.Fatalf("precedence %s", prec)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Debug || !strings.HasSuffix(cfg.History, "kale_history.json") || len(cfg.Binops) != 0 {
		t.Fatalf("defaults %+v", cfg)
	}
	if cfg.Precedence().String() != "*:40 +:20 -:20 /:40 <:10" {
		t.Fatalf("default precedence %s", cfg.Precedence())
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		`{"debug": `:              "invalid json",
		`{"binops": {"<=": 10}}`:  "single character",
		`{"binops": {"^": "hi"}}`: "must be a number",
	}
	for data, msg := range tests {
		_, err := Parse([]byte(data))
		if err == nil || !strings.Contains(err.Error(), msg) {
			t.Errorf("%s: expect error with %q, got %v", data, msg, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.json"))
	if err != nil || cfg.Debug {
		t.Fatalf("missing file should give defaults: %+v %v", cfg, err)
	}

	path := filepath.Join(dir, "kale.json")
	if err := os.WriteFile(path, []byte(`{"debug": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil || !cfg.Debug {
		t.Fatalf("load %+v %v", cfg, err)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("KALE_CONFIG", "/etc/kale.json")
	if Path() != "/etc/kale.json" {
		t.Fatalf("env override ignored: %s", Path())
	}
	t.Setenv("KALE_CONFIG", "")
	if !strings.HasSuffix(Path(), filepath.Join(".config", "kale.json")) {
		t.Fatalf("default path %s", Path())
	}
}
