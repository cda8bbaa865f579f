package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/slugsweep/internal/configs"
	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
)

func TestConfigInit(t *testing.T) {
	setupTestEnvironment(t, t.TempDir(), t.TempDir())

	output, err := runCLI("config", "init")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	path := configs.DefaultConfigPath()
	assertExists(t, path)
	if !strings.Contains(output, "Config written to "+path) {
		t.Errorf("Unexpected output:\n%s", output)
	}

	config, err := configs.LoadConfig(path)
	if err != nil {
		t.Fatalf("Written config does not load: %v", err)
	}
	if config.Rename.PrintLimit != configs.DefaultConfig().Rename.PrintLimit {
		t.Errorf("Expected defaults, got %+v", config.Rename)
	}
}

func TestConfigInit_Exists(t *testing.T) {
	setupTestEnvironment(t, t.TempDir(), t.TempDir())

	if _, err := runCLI("config", "init"); err != nil {
		t.Fatalf("First init failed: %v", err)
	}

	ResetGlobalState()
	output, err := runCLI("config", "init")
	if !errors.Is(err, serrors.ErrConfigExists) {
		t.Fatalf("Expected ErrConfigExists, got %v", err)
	}
	if !strings.Contains(output, "--force") {
		t.Errorf("Expected a --force hint:\n%s", output)
	}

	ResetGlobalState()
	if _, err := runCLI("config", "init", "--force"); err != nil {
		t.Errorf("Init with --force failed: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	workDir := t.TempDir()
	setupTestEnvironment(t, workDir, t.TempDir())

	path := filepath.Join(workDir, "custom.toml")
	if err := os.WriteFile(path, []byte("[rename]\nprint_limit = 7\n"), 0600); err != nil {
		t.Fatal(err)
	}

	output, err := runCLI("config", "show", "--config", path)
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	for _, want := range []string{"[rename]", "print_limit = 7", `mapping_file = "rename-mapping.json"`, "[audit]", "enabled = true"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output:\n%s", want, output)
		}
	}
}

func TestConfigShow_DefaultsWithoutFile(t *testing.T) {
	setupTestEnvironment(t, t.TempDir(), t.TempDir())

	output, err := runCLI("config", "show")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(output, "showing defaults") {
		t.Errorf("Expected a defaults notice:\n%s", output)
	}
}

func TestConfigShow_JSON(t *testing.T) {
	setupTestEnvironment(t, t.TempDir(), t.TempDir())

	output, err := runCLI("config", "show", "--json")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	var config configs.Config
	if err := json.Unmarshal([]byte(output), &config); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, output)
	}
	if !config.Audit.Enabled || config.Rename.MappingFile != "rename-mapping.json" {
		t.Errorf("Unexpected config: %+v", config)
	}
}
