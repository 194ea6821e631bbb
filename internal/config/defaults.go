package config

const (
	// DefaultProjectPath is the directory config files are read from
	DefaultProjectPath = "."
	// DefaultResultsFile is the results file read when none is configured
	DefaultResultsFile = "test_results.json"
	// DefaultLogLevel keeps diagnostics quiet unless something is wrong
	DefaultLogLevel = "warn"
	// DefaultResultsGlob selects results files when a directory is scanned
	DefaultResultsGlob = "*results*.json"

	// ConfigFileName is the optional YAML config file in the project path
	ConfigFileName = ".ftr.yaml"
	// EnvFileName is the optional dotenv file in the project path.
	// Named for the tool so a project's own .env is never parsed.
	EnvFileName = ".ftr.env"

	// EnvResultsFile overrides the results file
	EnvResultsFile = "FTR_RESULTS_FILE"
	// EnvLogLevel overrides the log level
	EnvLogLevel = "FTR_LOG_LEVEL"
)

// DefaultPathsToIgnore are the directories skipped when scanning for results files
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
	"coverage",
}
