// Package config manages the durfmt configuration file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Output != OutputText {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputText)
	}

	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}

	if cfg.Verbose {
		t.Error("Verbose should be false by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tmpDir)

		path := ConfigPath()
		expected := filepath.Join(tmpDir, "durfmt", "config.yaml")

		if path != expected {
			t.Errorf("ConfigPath() = %q, want %q", path, expected)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		path := ConfigPath()

		if !strings.HasSuffix(path, filepath.Join(".config", "durfmt", "config.yaml")) {
			t.Errorf("ConfigPath() should end with .config/durfmt/config.yaml, got %q", path)
		}
	})
}

func TestLoadNonExistent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Load from non-existent file should return default config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults %+v", *cfg, *DefaultConfig())
	}
}

func TestLoadValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "durfmt")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	content := "output: table\ncolor: never\nverbose: true\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != OutputTable {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputTable)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: json\n"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputJSON)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want default %q", cfg.Color, ColorAuto)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: [unterminated"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should return error for invalid YAML")
	}
}

func TestLoadUnknownOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: xml\n"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, ErrInvalidOutput) {
		t.Errorf("LoadFrom() error = %v, want ErrInvalidOutput", err)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		Output:  OutputYAML,
		Color:   ColorAlways,
		Verbose: true,
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath := filepath.Join(tmpDir, "durfmt", "config.yaml")
	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Failed to stat config file: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("Config file permissions = %o, want %o", mode, 0600)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() error = %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("Loaded = %+v, want %+v", *loaded, *cfg)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := &Config{Output: OutputText, Color: "sometimes"}

	err := cfg.SaveTo(filepath.Join(t.TempDir(), "config.yaml"))
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SaveTo() error = %v, want ErrInvalidColor", err)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr error
	}{
		{
			name: "no variables",
			env:  map[string]string{},
			want: Config{Output: OutputText, Color: ColorAuto},
		},
		{
			name: "all variables",
			env: map[string]string{
				"DURFMT_OUTPUT":  "json",
				"DURFMT_COLOR":   "never",
				"DURFMT_VERBOSE": "true",
			},
			want: Config{Output: OutputJSON, Color: ColorNever, Verbose: true},
		},
		{
			name:    "bad output",
			env:     map[string]string{"DURFMT_OUTPUT": "xml"},
			wantErr: ErrInvalidOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DURFMT_OUTPUT", "DURFMT_COLOR", "DURFMT_VERBOSE"} {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := DefaultConfig()
			err := cfg.ApplyEnv()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ApplyEnv() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			if *cfg != tt.want {
				t.Errorf("ApplyEnv() = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestApplyEnvBadVerbose(t *testing.T) {
	t.Setenv("DURFMT_VERBOSE", "loud")

	if err := DefaultConfig().ApplyEnv(); err == nil {
		t.Error("ApplyEnv() should fail for non-boolean DURFMT_VERBOSE")
	}
}

func TestValidateNormalizesCase(t *testing.T) {
	cfg := &Config{Output: " Table ", Color: "ALWAYS"}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Output != OutputTable {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputTable)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAlways)
	}
}

func TestLoadUppercaseOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: YAML\n"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Output != OutputYAML {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputYAML)
	}
}
