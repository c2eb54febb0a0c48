package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-pageinclude/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads every variable", func(t *testing.T) {
		t.Parallel()

		e, err := loadEnvConfig([]string{
			"PAGEINCLUDE_CONFIG=site",
			"PAGEINCLUDE_DOCUMENT_ROOT=/srv/www",
			"PAGEINCLUDE_SCRIPT_PATH=/shop/index.php",
			"PAGEINCLUDE_HOST=example.com",
			"PAGEINCLUDE_HTTPS=true",
			"PAGEINCLUDE_CACHE_BUST=false",
			"PAGEINCLUDE_ADDR=:9090",
			"HOME=/root",
		})
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}
		if e.ConfigPath != "site" || e.DocumentRoot != "/srv/www" || e.ScriptPath != "/shop/index.php" {
			t.Errorf("paths = %+v", e)
		}
		if e.Host != "example.com" || e.Addr != ":9090" {
			t.Errorf("host/addr = %q, %q", e.Host, e.Addr)
		}
		if e.HTTPS == nil || !*e.HTTPS {
			t.Errorf("HTTPS = %v, want true", e.HTTPS)
		}
		if e.CacheBust == nil || *e.CacheBust {
			t.Errorf("CacheBust = %v, want false", e.CacheBust)
		}
	})

	t.Run("unset booleans stay nil", func(t *testing.T) {
		t.Parallel()

		e, err := loadEnvConfig(nil)
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}
		if e.HTTPS != nil || e.CacheBust != nil {
			t.Errorf("unset booleans = %v, %v, want nil", e.HTTPS, e.CacheBust)
		}
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Parallel()

		_, err := loadEnvConfig([]string{"PAGEINCLUDE_HTTPS=maybe"})
		if !errors.Is(err, ErrEnvConfig) {
			t.Errorf("loadEnvConfig() error = %v, want ErrEnvConfig", err)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"PAGEINCLUDE_HOST=example.com",
		"PAGEINCLUDE_DOCROOT=/srv",
		"PATH=/usr/bin",
	})

	got := buf.String()
	if !strings.Contains(got, "PAGEINCLUDE_DOCROOT") {
		t.Errorf("warning should name the unknown variable, got %q", got)
	}
	if strings.Contains(got, "PAGEINCLUDE_HOST") || strings.Contains(got, "PATH") {
		t.Errorf("known or foreign variables should not be reported, got %q", got)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	yes := true
	cfg := config.DefaultConfig()
	cfg.Site.Host = "from-file"

	applyEnvConfig(&envConfig{Host: "from-env", CacheBust: &yes}, cfg)

	if cfg.Site.Host != "from-env" {
		t.Errorf("Host = %q, env should override the file", cfg.Site.Host)
	}
	if !cfg.Assets.CacheBust {
		t.Error("CacheBust should be enabled by env")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, unset env must keep the default", cfg.Server.Addr)
	}
}
