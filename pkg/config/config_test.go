package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv makes sure a variable is truly unset for the test (t.Setenv alone
// leaves an empty value in the environment, which godotenv treats as set).
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("POCKETSMITH_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("POCKETSMITH_DEVELOPER_KEY", "env_key")
	t.Setenv("POCKETSMITH_API_URL", "http://localhost:8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.PocketSmith.DeveloperKey != "env_key" {
		t.Errorf("DeveloperKey = %q, expected %q", cfg.PocketSmith.DeveloperKey, "env_key")
	}
	if cfg.PocketSmith.APIURL != "http://localhost:8080" {
		t.Errorf("APIURL = %q, expected %q", cfg.PocketSmith.APIURL, "http://localhost:8080")
	}
}

func TestLoadYAMLConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "developer_key: file_key\napi_url: http://example.test\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("POCKETSMITH_CONFIG", path)
	clearEnv(t, "POCKETSMITH_DEVELOPER_KEY")
	clearEnv(t, "POCKETSMITH_API_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.PocketSmith.DeveloperKey != "file_key" {
		t.Errorf("DeveloperKey = %q, expected %q", cfg.PocketSmith.DeveloperKey, "file_key")
	}
	if cfg.PocketSmith.APIURL != "http://example.test" {
		t.Errorf("APIURL = %q, expected %q", cfg.PocketSmith.APIURL, "http://example.test")
	}
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("developer_key: file_key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("POCKETSMITH_CONFIG", path)
	t.Setenv("POCKETSMITH_DEVELOPER_KEY", "env_key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.PocketSmith.DeveloperKey != "env_key" {
		t.Errorf("DeveloperKey = %q, environment must win over the config file", cfg.PocketSmith.DeveloperKey)
	}
}

func TestLoadInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("POCKETSMITH_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("Load() with an unparsable config file should fail")
	}
}

func TestLoadCustomEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("POCKETSMITH_DEVELOPER_KEY=dotenv_key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("POCKETSMITH_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	clearEnv(t, "POCKETSMITH_DEVELOPER_KEY")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.PocketSmith.DeveloperKey != "dotenv_key" {
		t.Errorf("DeveloperKey = %q, expected %q", cfg.PocketSmith.DeveloperKey, "dotenv_key")
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such.env")); err == nil {
		t.Fatal("Load() with an explicit missing .env path should fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() without a developer key should fail")
	}
	if !strings.Contains(err.Error(), "POCKETSMITH_DEVELOPER_KEY") {
		t.Errorf("error %q should name POCKETSMITH_DEVELOPER_KEY", err.Error())
	}

	cfg.PocketSmith.DeveloperKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with a developer key returned error: %v", err)
	}
}
