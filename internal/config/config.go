package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Directory holding .ftr.yaml and .ftr.env
	ProjectPath string

	// Results file, relative to ProjectPath unless absolute
	ResultsFile string

	LogLevel string

	// Glob selecting results files when a directory is scanned
	ResultsGlob string

	// Paths to ignore when scanning for results files
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ResultsFile string
	Verbose     bool
	NameFilter  string
	TestCases   bool
	Textfile    string
}

// fileConfig mirrors .ftr.yaml
type fileConfig struct {
	ResultsFile   string   `yaml:"results_file"`
	LogLevel      string   `yaml:"log_level"`
	ResultsGlob   string   `yaml:"results_glob"`
	PathsToIgnore []string `yaml:"paths_to_ignore"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		ResultsFile: DefaultResultsFile,
		LogLevel:    DefaultLogLevel,
		ResultsGlob: DefaultResultsGlob,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load builds a config for the project at dir. Later sources win:
// defaults, .ftr.yaml, .ftr.env, then the process environment.
// Missing files are skipped. A file that cannot be read or parsed is
// skipped too and reported in the returned error; the config is never nil.
func Load(dir string) (*Config, error) {
	cfg := New()
	if dir != "" {
		cfg.ProjectPath = dir
	}

	fileErr := cfg.loadFile(filepath.Join(cfg.ProjectPath, ConfigFileName))
	envErr := cfg.loadEnv(filepath.Join(cfg.ProjectPath, EnvFileName))
	return cfg, errors.Join(fileErr, envErr)
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if fc.ResultsGlob != "" {
		if _, err := filepath.Match(fc.ResultsGlob, ""); err != nil {
			return fmt.Errorf("results_glob %q in %s: %w", fc.ResultsGlob, path, err)
		}
		c.ResultsGlob = fc.ResultsGlob
	}

	if fc.ResultsFile != "" {
		c.ResultsFile = fc.ResultsFile
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if len(fc.PathsToIgnore) > 0 {
		c.PathsToIgnore = fc.PathsToIgnore
	}
	return nil
}

// loadEnv reads the dotenv file without touching the process environment,
// then lets real environment variables override it. Real variables apply
// even when the file is unreadable.
func (c *Config) loadEnv(path string) error {
	var readErr error
	values, err := godotenv.Read(path)
	if err != nil {
		values = nil
		if !errors.Is(err, fs.ErrNotExist) {
			readErr = fmt.Errorf("read env file %s: %w", path, err)
		}
	}

	c.ResultsFile = getEnv(values, EnvResultsFile, c.ResultsFile)
	c.LogLevel = getEnv(values, EnvLogLevel, c.LogLevel)
	return readErr
}

func getEnv(dotenv map[string]string, key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	if value := dotenv[key]; value != "" {
		return value
	}
	return fallback
}

// GetResultsPath returns the results file to read, using the flag if provided.
// The flag is taken as given; the configured file is relative to ProjectPath.
func (c *Config) GetResultsPath() string {
	if c.Flags.ResultsFile != "" {
		return c.Flags.ResultsFile
	}
	if filepath.IsAbs(c.ResultsFile) {
		return c.ResultsFile
	}
	return filepath.Join(c.ProjectPath, c.ResultsFile)
}

// GetLogLevel returns the effective log level
func (c *Config) GetLogLevel() string {
	if c.Flags.Verbose {
		return "debug"
	}
	return c.LogLevel
}
