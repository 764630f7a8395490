package main

// Options holds the resolved configuration for a single run, after flags,
// environment variables, and the config file have been merged by viper.
type Options struct {
	// Traversal
	Recursive bool
	Exclude   []string
	Gitignore bool

	// Rendering
	Header      string
	Verbose     bool
	Hex         bool
	SkipNonText bool

	// Output
	Color      bool
	LogColor   bool
	OutputFile string
	Clipboard  bool

	// Statistics
	Counter bool
	Tokens  bool
}

// headerPlaceholder is substituted with the display path in header templates.
const headerPlaceholder = "{file}"
