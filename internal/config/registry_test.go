package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "growform") {
		t.Errorf("GetConfigDir() = %v, should contain 'growform'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, "growform"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}

	if reg.Preferences.InitialEntries != 3 {
		t.Errorf("InitialEntries = %v, want 3", reg.Preferences.InitialEntries)
	}

	if reg.Preferences.MinLines != 1 {
		t.Errorf("MinLines = %v, want 1", reg.Preferences.MinLines)
	}

	if reg.Preferences.OutputFormat != FormatText {
		t.Errorf("OutputFormat = %v, want %v", reg.Preferences.OutputFormat, FormatText)
	}

	if err := reg.Preferences.Validate(); err != nil {
		t.Errorf("default preferences should validate, got %v", err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Preferences.Placeholder != "Placeholder" {
		t.Errorf("Placeholder = %q, want default", reg.Preferences.Placeholder)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		check   func(t *testing.T, r *Registry)
	}{
		{
			name: "full document",
			input: `version: 1
preferences:
  initial_entries: 5
  placeholder: "Type here"
  min_lines: 2
  max_width: 60
  print_on_exit: true
  output_format: yaml
`,
			check: func(t *testing.T, r *Registry) {
				p := r.Preferences
				if p.InitialEntries != 5 || p.Placeholder != "Type here" || p.MinLines != 2 ||
					p.MaxWidth != 60 || !p.PrintOnExit || p.OutputFormat != FormatYAML {
					t.Errorf("unexpected preferences: %+v", p)
				}
			},
		},
		{
			name:  "partial document keeps defaults",
			input: "version: 1\npreferences:\n  initial_entries: 0\n",
			check: func(t *testing.T, r *Registry) {
				p := r.Preferences
				if p.InitialEntries != 0 {
					t.Errorf("InitialEntries = %d, want 0", p.InitialEntries)
				}
				if p.MinLines != 1 || p.Placeholder != "Placeholder" || p.OutputFormat != FormatText {
					t.Errorf("defaults not filled: %+v", p)
				}
			},
		},
		{
			name:  "no preferences block",
			input: "version: 1\n",
			check: func(t *testing.T, r *Registry) {
				if r.Preferences == nil || r.Preferences.InitialEntries != 3 {
					t.Errorf("expected default preferences, got %+v", r.Preferences)
				}
			},
		},
		{
			name:    "unsupported version",
			input:   "version: 2\n",
			wantErr: "unsupported config version",
		},
		{
			name:    "bad format",
			input:   "version: 1\npreferences:\n  output_format: xml\n",
			wantErr: "unsupported output_format",
		},
		{
			name:    "negative entries",
			input:   "version: 1\npreferences:\n  initial_entries: -1\n",
			wantErr: "initial_entries",
		},
		{
			name:    "malformed yaml",
			input:   "version: [1",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, reg)
		})
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.Preferences.Placeholder = "Notes"
	reg.Preferences.PrintOnExit = true

	if err := reg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# growform configuration file") {
		t.Error("saved file should start with the header comment")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after save")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Preferences.Placeholder != "Notes" || !loaded.Preferences.PrintOnExit {
		t.Errorf("loaded preferences = %+v", loaded.Preferences)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	got, err := CreateDefaultConfig(path)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if got != path {
		t.Errorf("CreateDefaultConfig() path = %v, want %v", got, path)
	}

	if _, err := CreateDefaultConfig(path); err == nil {
		t.Error("CreateDefaultConfig() should refuse to overwrite an existing file")
	}
}

func BenchmarkParse(b *testing.B) {
	data := []byte("version: 1\npreferences:\n  initial_entries: 3\n")
	for i := 0; i < b.N; i++ {
		_, _ = Parse(data)
	}
}
