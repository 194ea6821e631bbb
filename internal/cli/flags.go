package cli

import "ftr/internal/config"

// Flags holds command-line flags
type Flags struct {
	ResultsFile string
	Verbose     bool
	ConfigDir   string
	NameFilter  string
	TestCases   bool
	Textfile    string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ResultsFile: f.ResultsFile,
		Verbose:     f.Verbose,
		NameFilter:  f.NameFilter,
		TestCases:   f.TestCases,
		Textfile:    f.Textfile,
	}
}
