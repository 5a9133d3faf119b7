package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "uncapped pages", mutate: func(c *Config) { c.MaxPages = 0 }, wantErr: false},
		{name: "empty seed url", mutate: func(c *Config) { c.BaseURL = "" }, wantErr: true},
		{name: "relative seed url", mutate: func(c *Config) { c.BaseURL = "catalogue/page-1.html" }, wantErr: true},
		{name: "non-http scheme", mutate: func(c *Config) { c.BaseURL = "ftp://books.toscrape.com" }, wantErr: true},
		{name: "negative pages", mutate: func(c *Config) { c.MaxPages = -1 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "empty user agent", mutate: func(c *Config) { c.UserAgent = "" }, wantErr: true},
		{name: "empty output file", mutate: func(c *Config) { c.OutputFile = "" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.OutputFormat = "xml" }, wantErr: true},
		{name: "json format", mutate: func(c *Config) { c.OutputFormat = "json" }, wantErr: false},
		{name: "dual format", mutate: func(c *Config) { c.OutputFormat = "dual" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("SPIDER_TEST_PAGES", "25")
	value, ok, err := EnvInt("SPIDER_TEST_PAGES")
	if err != nil || !ok || value != 25 {
		t.Fatalf("EnvInt() = (%d, %v, %v), want (25, true, nil)", value, ok, err)
	}

	if _, ok, err := EnvInt("SPIDER_TEST_UNSET"); ok || err != nil {
		t.Fatalf("EnvInt() on unset var = (ok=%v, err=%v), want (false, nil)", ok, err)
	}

	t.Setenv("SPIDER_TEST_BAD", "lots")
	if _, _, err := EnvInt("SPIDER_TEST_BAD"); err == nil {
		t.Fatal("EnvInt() on non-numeric value = nil error, want error")
	}
}

func TestEnvString(t *testing.T) {
	t.Setenv("SPIDER_TEST_OUTPUT", "books.csv")
	value, ok := EnvString("SPIDER_TEST_OUTPUT")
	if !ok || value != "books.csv" {
		t.Fatalf("EnvString() = (%q, %v), want (books.csv, true)", value, ok)
	}

	t.Setenv("SPIDER_TEST_BLANK", "   ")
	if _, ok := EnvString("SPIDER_TEST_BLANK"); ok {
		t.Fatal("EnvString() on blank value reported ok")
	}
}

func TestDefaultTimeout(t *testing.T) {
	if got := DefaultConfig().Timeout; got != 10*time.Second {
		t.Fatalf("default timeout = %v, want 10s", got)
	}
}
