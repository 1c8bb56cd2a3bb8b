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
	// Filtering (directory and git sources)
	includePatterns string
	excludePatterns string
	maxSizeBytes    int64
	maxDepth        int
	showHidden      bool
	noIgnore        bool

	// Batch modes
	csvList   bool
	csvMerged bool
	linkList  bool

	// Output
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string

	// Processing
	numThreads int

	// Token Counting
	tokenizerType  string
	tokenizerModel string
	tokenizerFile  string

	// Interactive Mode
	interactiveMode bool

	langData *LoadedLanguageData
)

// version is the application version, set via ldflags.
var version string = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "count <command> [SOURCE]",
	Short: "count reports byte, character, line, word and token counts for text sources.",
	Long: `count reads a file, directory, git repository or web URL and prints a
count over its contents. CSV batch flags repeat the count over a list of
files supplied as a comma-separated path list.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Counting commands are subcommands; reaching this RunE means the
		// invocation named none of them. The error makes Execute fail, so
		// main exits non-zero without computing anything.
		if len(args) == 0 {
			return fmt.Errorf("missing command")
		}
		return fmt.Errorf("command not recognized: %s", args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the count version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("count version %s\n", version)
	},
}

// newCountCmd builds one counting subcommand around the shared runner.
func newCountCmd(command Command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <source>", command),
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			runCommand(command, source)
		},
	}
}

// runCommand validates the invocation and executes it, terminating the
// process on any failure.
func runCommand(command Command, source string) {
	if interactiveMode && source == "" {
		picked, err := runInteractiveFinder()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Interactive mode error: %v\n", err)
			os.Exit(1)
		}
		if picked == "" {
			// User aborted the picker.
			os.Exit(0)
		}
		source = picked
	}
	if source == "" {
		fmt.Fprintln(os.Stderr, "Missing filename.")
		os.Exit(1)
	}

	mode, err := resolveFileMode()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var tk Tokenizer
	if command == CommandTokens {
		tk, err = getTokenizer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing tokenizer: %v\n", err)
			os.Exit(1)
		}
		defer tk.Close()
	}

	args := Arguments{Command: command, Source: source, FileMode: mode}
	if err := runCount(args, tk, langData); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveFileMode maps the batch flags onto a FileMode. The flags are
// mutually exclusive.
func resolveFileMode() (FileMode, error) {
	set := 0
	mode := FileModeNormal
	if csvList {
		set++
		mode = FileModeCsvList
	}
	if csvMerged {
		set++
		mode = FileModeCsvMerged
	}
	if linkList {
		set++
		mode = FileModeLinks
	}
	if set > 1 {
		return FileModeNormal, fmt.Errorf("--csv-list, --csv-merged and --links are mutually exclusive")
	}
	return mode, nil
}

func init() {
	cobra.OnInitialize(initConfig, initLanguages)

	// Batch modes
	rootCmd.PersistentFlags().BoolVar(&csvList, "csv-list", false, "Treat the source as a CSV list of files and count each one")
	rootCmd.PersistentFlags().BoolVar(&csvMerged, "csv-merged", false, "Treat the source as a CSV list of files and count their concatenation")
	rootCmd.PersistentFlags().BoolVar(&linkList, "links", false, "Count each page linked from an HTML source")

	// Filtering (directory sources)
	rootCmd.PersistentFlags().StringVarP(&includePatterns, "include", "i", "", `Patterns to include when counting a directory (comma-separated, e.g. *.go,*.md)`)
	viper.BindPFlag("include", rootCmd.PersistentFlags().Lookup("include"))
	rootCmd.PersistentFlags().StringVarP(&excludePatterns, "exclude", "e", "", "Patterns to exclude when counting a directory (comma-separated)")
	viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	rootCmd.PersistentFlags().Int64VarP(&maxSizeBytes, "max-size", "s", 0, "Maximum file size in bytes for directory sources (0 for no limit)")
	viper.BindPFlag("max_size", rootCmd.PersistentFlags().Lookup("max-size"))
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "Maximum directory depth to traverse (0 for no limit)")
	viper.BindPFlag("max_depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	rootCmd.PersistentFlags().BoolVarP(&showHidden, "hidden", "H", false, "Include hidden files and directories")
	viper.BindPFlag("hidden", rootCmd.PersistentFlags().Lookup("hidden"))
	rootCmd.PersistentFlags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect .gitignore files")
	viper.BindPFlag("no_ignore", rootCmd.PersistentFlags().Lookup("no-ignore"))

	// Output
	rootCmd.PersistentFlags().StringVarP(&outputFile, "file", "f", "", "Save output to the specified file")
	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	rootCmd.PersistentFlags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy output to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.PersistentFlags().Lookup("clipboard"))
	rootCmd.PersistentFlags().StringVar(&pdfOutputFile, "pdf", "", "Save results as a PDF report")
	viper.BindPFlag("pdf", rootCmd.PersistentFlags().Lookup("pdf"))

	// Processing
	rootCmd.PersistentFlags().IntVarP(&numThreads, "threads", "t", 0, "Number of workers for batch counting (0 for auto)")
	viper.BindPFlag("threads", rootCmd.PersistentFlags().Lookup("threads"))

	// Token Counting
	rootCmd.PersistentFlags().StringVar(&tokenizerType, "tokenizer", "tiktoken", "Tokenizer to use: tiktoken or huggingface")
	viper.BindPFlag("tokenizer", rootCmd.PersistentFlags().Lookup("tokenizer"))
	rootCmd.PersistentFlags().StringVar(&tokenizerModel, "model", "", "Model name for the tokenizer (e.g., gpt-4o, gpt2)")
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	rootCmd.PersistentFlags().StringVar(&tokenizerFile, "tokenizer-file", "", "Path to a local tokenizer file")
	viper.BindPFlag("tokenizer_file", rootCmd.PersistentFlags().Lookup("tokenizer-file"))

	// Interactive Mode
	rootCmd.PersistentFlags().BoolVar(&interactiveMode, "interactive", false, "Pick the source with a fuzzy finder when none is given")
	viper.BindPFlag("interactive", rootCmd.PersistentFlags().Lookup("interactive"))

	viper.SetDefault("threads", 0)
	viper.SetDefault("hidden", false)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("max_size", 0)
	viper.SetDefault("max_depth", 0)
	viper.SetDefault("tokenizer", "tiktoken")
	viper.SetDefault("model", "")

	rootCmd.AddCommand(
		versionCmd,
		newCountCmd(CommandBytes, "Count the bytes in a source"),
		newCountCmd(CommandCharacters, "Count the Unicode characters in a source"),
		newCountCmd(CommandLines, "Count the lines in a source"),
		newCountCmd(CommandWords, "Count the words in a source"),
		newCountCmd(CommandTokens, "Count LLM tokens in a source"),
	)
}

// initConfig reads in the config file and COUNT_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "count"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("COUNT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	applyConfig()
}

// applyConfig copies config/env values into flag variables that were not set
// explicitly on the command line, so precedence is flag > env > config.
func applyConfig() {
	flags := rootCmd.PersistentFlags()
	if !flags.Changed("include") {
		includePatterns = viper.GetString("include")
	}
	if !flags.Changed("exclude") {
		excludePatterns = viper.GetString("exclude")
	}
	if !flags.Changed("max-size") {
		maxSizeBytes = viper.GetInt64("max_size")
	}
	if !flags.Changed("max-depth") {
		maxDepth = viper.GetInt("max_depth")
	}
	if !flags.Changed("hidden") {
		showHidden = viper.GetBool("hidden")
	}
	if !flags.Changed("no-ignore") {
		noIgnore = viper.GetBool("no_ignore")
	}
	if !flags.Changed("threads") {
		numThreads = viper.GetInt("threads")
	}
	if !flags.Changed("tokenizer") {
		if v := viper.GetString("tokenizer"); v != "" {
			tokenizerType = v
		}
	}
	if !flags.Changed("model") {
		tokenizerModel = viper.GetString("model")
	}
	if !flags.Changed("tokenizer-file") {
		tokenizerFile = viper.GetString("tokenizer_file")
	}
	if !flags.Changed("file") {
		outputFile = viper.GetString("file")
	}
	if !flags.Changed("clipboard") {
		copyToClipboard = viper.GetBool("clipboard")
	}
	if !flags.Changed("pdf") {
		pdfOutputFile = viper.GetString("pdf")
	}
	if !flags.Changed("interactive") {
		interactiveMode = viper.GetBool("interactive")
	}
}

// initLanguages loads the optional language definitions used to filter
// directory sources.
func initLanguages() {
	data, err := loadLanguageData()
	if err != nil {
		// No definitions means no language filtering, not a failure.
		langData = nil
		return
	}
	langData = data
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
