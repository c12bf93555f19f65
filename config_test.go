package hostedpay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigRequiresServer(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); !errors.Is(err, ErrMissingServer) {
		t.Fatalf("expected ErrMissingServer got %v", err)
	}
	if err := testConfig().Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestValidateNamesOffendingKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.KeyGeneration = "one"
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig got %v", err)
	}
	if !strings.Contains(err.Error(), "key_generation must contain digits only") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "gateway.yaml", `
server_url: https://test1.maksuturva.fi/NewPaymentExtended.pmt
seller_id: testikauppias
seller_iban: FI2112345600000785
secret: "s3cr3t"
key_generation: "002"
callback_variant: custom_data
ok_return: https://shop.example.com/gateway/ok
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ServerURL != "https://test1.maksuturva.fi/NewPaymentExtended.pmt" {
		t.Fatalf("unexpected server url %s", cfg.ServerURL)
	}
	if cfg.SellerIBAN == nil || *cfg.SellerIBAN != "FI2112345600000785" {
		t.Fatalf("unexpected seller iban %v", cfg.SellerIBAN)
	}
	if cfg.KeyGeneration != "002" || cfg.Secret != "s3cr3t" {
		t.Fatalf("unexpected key settings %s %s", cfg.KeyGeneration, cfg.Secret)
	}
	if cfg.CallbackVariant != CallbackVariantCustomData {
		t.Fatalf("unexpected callback variant %s", cfg.CallbackVariant)
	}
	if cfg.OKReturn != "https://shop.example.com/gateway/ok" {
		t.Fatalf("unexpected ok return %s", cfg.OKReturn)
	}
	if cfg.Version != ProtocolVersion || cfg.Currency != "EUR" || cfg.ErrorReturn != "http://127.0.0.1/error" {
		t.Fatalf("expected defaults for unset keys, got %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "gateway.yaml", `
server_url: https://test1.maksuturva.fi/NewPaymentExtended.pmt
sellerid: typo
`)
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig got %v", err)
	}
}

func TestLoadConfigRequiresServer(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "gateway.json", `{"seller_id": "testikauppias"}`)
	if _, err := LoadConfig(path); !errors.Is(err, ErrMissingServer) {
		t.Fatalf("expected ErrMissingServer got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected read error got %v", err)
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOSTEDPAY_SERVER_URL", "https://test1.maksuturva.fi/NewPaymentExtended.pmt")
	t.Setenv("HOSTEDPAY_SECRET", "from-env")
	t.Setenv("HOSTEDPAY_ESCROW", "N")

	path := writeConfigFile(t, "gateway.yaml", "secret: from-file\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Secret != "from-env" {
		t.Fatalf("expected environment to win, got %s", cfg.Secret)
	}
	if cfg.Escrow != "N" {
		t.Fatalf("unexpected escrow %s", cfg.Escrow)
	}

	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error = %v", err)
	}
	if cfg.ServerURL == "" || cfg.Secret != "from-env" {
		t.Fatalf("unexpected env-only config %+v", cfg)
	}
}
