package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetResultsPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   New(),
			expected: "test_results.json",
		},
		{
			name: "configured file under project path",
			config: &Config{
				ProjectPath: "/project",
				ResultsFile: "reports/jest.json",
			},
			expected: "/project/reports/jest.json",
		},
		{
			name: "absolute configured file",
			config: &Config{
				ProjectPath: "/project",
				ResultsFile: "/tmp/jest.json",
			},
			expected: "/tmp/jest.json",
		},
		{
			name: "flag wins and is taken as given",
			config: &Config{
				ProjectPath: "/project",
				ResultsFile: "reports/jest.json",
				Flags: Flags{
					ResultsFile: "other.json",
				},
			},
			expected: "other.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetResultsPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetLogLevel(t *testing.T) {
	cfg := New()
	if cfg.GetLogLevel() != DefaultLogLevel {
		t.Errorf("expected %s, got %s", DefaultLogLevel, cfg.GetLogLevel())
	}

	cfg.Flags.Verbose = true
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("expected debug when verbose, got %s", cfg.GetLogLevel())
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.ResultsFile != DefaultResultsFile {
		t.Errorf("expected ResultsFile %s, got %s", DefaultResultsFile, cfg.ResultsFile)
	}

	if cfg.ResultsGlob != DefaultResultsGlob {
		t.Errorf("expected ResultsGlob %s, got %s", DefaultResultsGlob, cfg.ResultsGlob)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvResultsFile, "")
	t.Setenv(EnvLogLevel, "")

	t.Run("no files keeps defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ResultsFile != DefaultResultsFile || cfg.LogLevel != DefaultLogLevel {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		dir := t.TempDir()
		content := "results_file: reports/jest.json\nlog_level: info\npaths_to_ignore: [dist]\n"
		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.GetResultsPath() != filepath.Join(dir, "reports/jest.json") {
			t.Errorf("unexpected results path %s", cfg.GetResultsPath())
		}
		if cfg.LogLevel != "info" {
			t.Errorf("expected info, got %s", cfg.LogLevel)
		}
		if len(cfg.PathsToIgnore) != 1 || cfg.PathsToIgnore[0] != "dist" {
			t.Errorf("unexpected paths to ignore %v", cfg.PathsToIgnore)
		}
	})

	t.Run("env file overrides yaml", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("results_file: from-yaml.json\n"), 0644)
		os.WriteFile(filepath.Join(dir, EnvFileName), []byte("FTR_RESULTS_FILE=from-env.json\n"), 0644)

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ResultsFile != "from-env.json" {
			t.Errorf("expected from-env.json, got %s", cfg.ResultsFile)
		}
	})

	t.Run("process environment overrides env file", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, EnvFileName), []byte("FTR_LOG_LEVEL=info\n"), 0644)
		t.Setenv(EnvLogLevel, "error")

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.LogLevel != "error" {
			t.Errorf("expected error, got %s", cfg.LogLevel)
		}
	})

	t.Run("results glob", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("results_glob: \"shard-*.json\"\n"), 0644)

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ResultsGlob != "shard-*.json" {
			t.Errorf("expected shard-*.json, got %s", cfg.ResultsGlob)
		}
	})

	t.Run("project env file is not read", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD LINE\nFTR_RESULTS_FILE=from-dotenv.json\n"), 0644)

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ResultsFile != DefaultResultsFile {
			t.Errorf("expected %s, got %s", DefaultResultsFile, cfg.ResultsFile)
		}
	})
}

func TestLoad_BrokenFiles(t *testing.T) {
	t.Setenv(EnvResultsFile, "")
	t.Setenv(EnvLogLevel, "")

	tests := []struct {
		name        string
		files       map[string]string
		env         map[string]string
		resultsFile string
		logLevel    string
		resultsGlob string
	}{
		{
			name:        "malformed yaml keeps defaults",
			files:       map[string]string{ConfigFileName: "results_file: [unclosed\n"},
			resultsFile: DefaultResultsFile,
			logLevel:    DefaultLogLevel,
			resultsGlob: DefaultResultsGlob,
		},
		{
			name:        "malformed yaml still reads env file",
			files:       map[string]string{ConfigFileName: "results_file: [unclosed\n", EnvFileName: "FTR_LOG_LEVEL=info\n"},
			resultsFile: DefaultResultsFile,
			logLevel:    "info",
			resultsGlob: DefaultResultsGlob,
		},
		{
			name:        "malformed glob skips the file",
			files:       map[string]string{ConfigFileName: "results_file: a.json\nresults_glob: \"[\"\n"},
			resultsFile: DefaultResultsFile,
			logLevel:    DefaultLogLevel,
			resultsGlob: DefaultResultsGlob,
		},
		{
			name:        "malformed env file keeps yaml",
			files:       map[string]string{ConfigFileName: "results_file: from-yaml.json\n", EnvFileName: "BAD LINE\n"},
			resultsFile: "from-yaml.json",
			logLevel:    DefaultLogLevel,
			resultsGlob: DefaultResultsGlob,
		},
		{
			name:        "unterminated quote in env file",
			files:       map[string]string{EnvFileName: "FTR_RESULTS_FILE=\"unterminated\n"},
			resultsFile: DefaultResultsFile,
			logLevel:    DefaultLogLevel,
			resultsGlob: DefaultResultsGlob,
		},
		{
			name:        "process environment applies despite malformed env file",
			files:       map[string]string{EnvFileName: "BAD LINE\n"},
			env:         map[string]string{EnvResultsFile: "from-process.json"},
			resultsFile: "from-process.json",
			logLevel:    DefaultLogLevel,
			resultsGlob: DefaultResultsGlob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
					t.Fatalf("failed to write %s: %v", name, err)
				}
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load(dir)
			if err == nil {
				t.Error("expected error for broken config file")
			}
			if cfg == nil {
				t.Fatal("expected a config alongside the error")
			}
			if cfg.ResultsFile != tt.resultsFile {
				t.Errorf("expected results file %s, got %s", tt.resultsFile, cfg.ResultsFile)
			}
			if cfg.LogLevel != tt.logLevel {
				t.Errorf("expected log level %s, got %s", tt.logLevel, cfg.LogLevel)
			}
			if cfg.ResultsGlob != tt.resultsGlob {
				t.Errorf("expected results glob %s, got %s", tt.resultsGlob, cfg.ResultsGlob)
			}
		})
	}
}
