package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Traversal
	flagRecursive bool
	flagExclude   []string
	flagGitignore bool

	// Rendering
	flagHeader      string
	flagVerbose     bool
	flagHex         bool
	flagSkipNonText bool

	// Output
	flagColor      bool
	flagNoLogColor bool
	flagOutput     string
	flagClipboard  bool

	// Statistics
	flagCounter bool
	flagTokens  bool
)

// version is set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "filecat [flags] PATTERN...",
	Short: "Print file contents with headers",
	Long: `filecat prints the contents of one or more files, each preceded by a
configurable header. Inputs are glob patterns; directories can be read
recursively, paths excluded by pattern, and binary content rendered as a
hex dump or skipped.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run(args))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "Recursively read directories")
	viper.BindPFlag("recursive", rootCmd.Flags().Lookup("recursive"))
	rootCmd.Flags().StringArrayVarP(&flagExclude, "exclude", "e", nil, "Exclude files or directories (glob patterns, repeatable)")
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	rootCmd.Flags().BoolVar(&flagGitignore, "gitignore", false, "Respect .gitignore files while recursing")
	viper.BindPFlag("gitignore", rootCmd.Flags().Lookup("gitignore"))

	rootCmd.Flags().StringVar(&flagHeader, "header", "==> {file}", "Header template, {file} is replaced by the path")
	viper.BindPFlag("header", rootCmd.Flags().Lookup("header"))
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Raw text rendering instead of escaping non-printable characters")
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	rootCmd.Flags().BoolVar(&flagHex, "hex", false, "Print non-text file contents in hexadecimal")
	viper.BindPFlag("hex", rootCmd.Flags().Lookup("hex"))
	rootCmd.Flags().BoolVar(&flagSkipNonText, "skip-non-text", false, "Skip non-text file contents but still print headers")
	viper.BindPFlag("skip_non_text", rootCmd.Flags().Lookup("skip-non-text"))

	rootCmd.Flags().BoolVar(&flagColor, "color", false, "Colorize header lines")
	viper.BindPFlag("color", rootCmd.Flags().Lookup("color"))
	rootCmd.Flags().BoolVar(&flagNoLogColor, "no-log-color", false, "Disable colored log messages")
	viper.BindPFlag("no_log_color", rootCmd.Flags().Lookup("no-log-color"))
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write content to a new file instead of stdout")
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	rootCmd.Flags().BoolVar(&flagClipboard, "clipboard", false, "Copy content to the clipboard instead of stdout")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))

	rootCmd.Flags().BoolVar(&flagCounter, "counter", false, "Log running and total processed-file counts")
	viper.BindPFlag("counter", rootCmd.Flags().Lookup("counter"))
	rootCmd.Flags().BoolVar(&flagTokens, "tokens", false, "Log token counts for text files")
	viper.BindPFlag("tokens", rootCmd.Flags().Lookup("tokens"))
}

// initConfig reads the config file and FILECAT_* environment variables.
// Precedence is flag > env > config file > default.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "filecat"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("FILECAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "[warning] Error reading config file: %v\n", err)
		}
	}
}

// optionsFromConfig assembles the run options from the merged viper state.
func optionsFromConfig() Options {
	return Options{
		Recursive:   viper.GetBool("recursive"),
		Exclude:     viper.GetStringSlice("exclude"),
		Gitignore:   viper.GetBool("gitignore"),
		Header:      viper.GetString("header"),
		Verbose:     viper.GetBool("verbose"),
		Hex:         viper.GetBool("hex"),
		SkipNonText: viper.GetBool("skip_non_text"),
		Color:       viper.GetBool("color"),
		LogColor:    !viper.GetBool("no_log_color") && stderrIsTerminal(),
		OutputFile:  viper.GetString("output"),
		Clipboard:   viper.GetBool("clipboard"),
		Counter:     viper.GetBool("counter"),
		Tokens:      viper.GetBool("tokens"),
	}
}

// Exit codes: fatal configuration errors exit 1; soft conditions (no
// matches, unreadable entries) log and exit 0.
const (
	exitOK    = 0
	exitFatal = 1
)

func run(args []string) int {
	opts := optionsFromConfig()
	log := newLogger(os.Stderr, opts.LogColor)

	if len(args) == 0 {
		log.Errorf("No files or directories provided")
		return exitFatal
	}

	// Fatal configuration checks happen before any filesystem work so the
	// run either proceeds cleanly or stops with nothing touched.
	var inputs, gitURLs []string
	for _, arg := range args {
		if isGitURL(arg) {
			gitURLs = append(gitURLs, arg)
		} else {
			inputs = append(inputs, arg)
		}
	}
	if err := validatePatterns(inputs); err != nil {
		log.Errorf("%v", err)
		return exitFatal
	}
	excluder, err := NewExcluder(opts.Exclude)
	if err != nil {
		log.Errorf("%v", err)
		return exitFatal
	}
	if opts.OutputFile != "" && opts.Clipboard {
		log.Errorf("Cannot combine --output and --clipboard")
		return exitFatal
	}
	if err := validateOutput(opts.OutputFile); err != nil {
		log.Errorf("%v", err)
		return exitFatal
	}

	if !strings.Contains(opts.Header, headerPlaceholder) {
		log.Warningf("Header does not contain the placeholder %s", headerPlaceholder)
	}

	var tempDirs []string
	defer func() {
		for _, dir := range tempDirs {
			_ = os.RemoveAll(dir)
		}
	}()
	for _, url := range gitURLs {
		dir, cloneErr := cloneGitRepo(url, log)
		if cloneErr != nil {
			log.Errorf("%v", cloneErr)
			continue
		}
		tempDirs = append(tempDirs, dir)
		inputs = append(inputs, dir)
	}

	paths, err := expandPatterns(inputs, log)
	if err != nil {
		log.Errorf("%v", err)
		return exitFatal
	}
	if len(paths) == 0 {
		log.Errorf("No matching files found")
		return exitOK
	}

	sink, err := openSink(opts.OutputFile, opts.Clipboard)
	if err != nil {
		log.Errorf("%v", err)
		return exitFatal
	}

	session := newCatSession(opts, excluder, log, sink)
	for _, path := range paths {
		if err := session.ProcessPath(path); err != nil {
			log.Errorf("Failed to write output: %v", err)
			_ = sink.Close()
			return exitFatal
		}
	}
	session.Finish()

	if err := sink.Close(); err != nil {
		log.Errorf("Failed to finalize output: %v", err)
		return exitFatal
	}
	if opts.Clipboard {
		log.Infof("Output copied to clipboard")
	}
	return exitOK
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitFatal)
	}
}
