package config

import (
	"strings"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "PROJECTID", "REGION", "LOGLEVEL", "VERTEXMODEL", "AITTL", "CORSORIGINS", "USEMEMORYSTORE"} {
		t.Setenv(k, "")
	}

	cfg := New()
	if cfg.Port != 8080 {
		t.Fatalf("Port = %d", cfg.Port)
	}
	if cfg.AITTL != 24*time.Hour {
		t.Fatalf("AITTL = %v", cfg.AITTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.UseMemoryStore {
		t.Fatal("UseMemoryStore should default to false")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AITTL", "90m")
	t.Setenv("CORSORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("USEMEMORYSTORE", "true")

	cfg := New()
	if cfg.Port != 9090 || cfg.Addr() != ":9090" {
		t.Fatalf("Port = %d, Addr = %s", cfg.Port, cfg.Addr())
	}
	if cfg.AITTL != 90*time.Minute {
		t.Fatalf("AITTL = %v", cfg.AITTL)
	}
	if strings.Join(cfg.CORSOrigins, "|") != "https://a.example|https://b.example" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if !cfg.UseMemoryStore {
		t.Fatal("expected memory store")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 0, AITTL: time.Hour}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"PORT", "PROJECTID", "REGION", "VERTEXMODEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %s in %q", want, err.Error())
		}
	}

	local := &Config{Port: 8080, UseMemoryStore: true}
	if err := local.Validate(); err != nil {
		t.Fatalf("memory store config should be valid: %v", err)
	}
}
