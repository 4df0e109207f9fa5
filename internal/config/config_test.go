package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearAWSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AWS_BUCKET_NAME", "AWS_DEFAULT_REGION",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"REPORT_PERIOD", "SQLITE_PATH", "HTTPS_PROXY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearAWSEnv(t)

	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("a missing config file is not an error: %v", err)
	}
	if cfg.AWS.Region != "us-east-1" {
		t.Errorf("expected default region us-east-1, got %s", cfg.AWS.Region)
	}
	if cfg.Report.Period != "5y" {
		t.Errorf("expected default period 5y, got %s", cfg.Report.Period)
	}
	if len(cfg.Groups) != 2 {
		t.Fatalf("expected 2 default groups, got %d", len(cfg.Groups))
	}
	if cfg.Groups[0].Name != "US Banks" || cfg.Groups[1].Name != "US Banks in India" {
		t.Errorf("unexpected default group names: %s, %s", cfg.Groups[0].Name, cfg.Groups[1].Name)
	}
	if len(cfg.Groups[0].Symbols) != 5 {
		t.Errorf("expected 5 symbols in US Banks, got %v", cfg.Groups[0].Symbols)
	}
}

func TestValidate_RequiresCredentials(t *testing.T) {
	clearAWSEnv(t)

	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error without credentials")
	}

	cfg.AWS.AccessKeyID = "AKIATEST"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error without secret key")
	}

	cfg.AWS.SecretAccessKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearAWSEnv(t)
	t.Setenv("AWS_BUCKET_NAME", "dashboards")
	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIATEST")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AWS.Bucket != "dashboards" {
		t.Errorf("expected bucket override, got %s", cfg.AWS.Bucket)
	}
	if cfg.AWS.Region != "eu-west-1" {
		t.Errorf("expected region override, got %s", cfg.AWS.Region)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_YAMLGroups(t *testing.T) {
	clearAWSEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `groups:
  - name: Tech
    symbols: [AAPL, MSFT]
report:
  period: 1y
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Groups) != 1 || cfg.Groups[0].Name != "Tech" {
		t.Fatalf("unexpected groups: %+v", cfg.Groups)
	}
	if cfg.Report.Period != "1y" {
		t.Errorf("expected period 1y, got %s", cfg.Report.Period)
	}

	groups := cfg.TickerGroups()
	if groups[0].Symbols[1] != "MSFT" {
		t.Errorf("unexpected symbols: %v", groups[0].Symbols)
	}
}
