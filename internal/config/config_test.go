package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHESSCORE_ADDR", "")
	t.Setenv("CHESSCORE_DB", "")
	cfg, err := Load("test", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.DBDir != "" || cfg.InMemory {
		t.Errorf("unexpected storage settings %+v", cfg)
	}
	if !cfg.RequestLog {
		t.Error("request logging should default to on")
	}
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("CHESSCORE_ADDR", ":8080")
	t.Setenv("CHESSCORE_DB", "/tmp/env-db")

	cfg, err := Load("test", []string{"-db", "/tmp/flag-db", "-in-memory"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want env value :8080", cfg.Addr)
	}
	if cfg.DBDir != "/tmp/flag-db" {
		t.Errorf("DBDir = %q, want flag value", cfg.DBDir)
	}
	if !cfg.InMemory {
		t.Error("InMemory not set")
	}
}

func TestLoadRejectsBadArgs(t *testing.T) {
	if _, err := Load("test", []string{"-nope"}); err == nil {
		t.Error("unknown flag accepted")
	}
	if _, err := Load("test", []string{"extra"}); err == nil {
		t.Error("positional argument accepted")
	}
}
