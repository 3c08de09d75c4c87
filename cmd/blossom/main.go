// Package main provides the CLI entrypoint for blossom.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/blossom/internal/config"
	"github.com/verte-zerg/blossom/internal/dictionary"
	"github.com/verte-zerg/blossom/internal/generator"
	"github.com/verte-zerg/blossom/internal/logger"
	"github.com/verte-zerg/blossom/internal/model"
	"github.com/verte-zerg/blossom/internal/report"
	"github.com/verte-zerg/blossom/internal/solve"
	"github.com/verte-zerg/blossom/internal/tui"
	"github.com/verte-zerg/blossom/internal/wordlist"
)

const (
	defaultFormat = report.FormatText
	defaultLimit  = solve.DefaultLimit
)

var (
	solvePetals string
	solveCenter string
	solveBonus  string
	solveLimit  int
	solveDict   string
	solveFormat string
	solveColor  bool
	solveTiming bool
	verbose     bool

	dictURL   string
	dictForce bool

	randomSeed int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "blossom",
		Short:         "Solve Merriam-Webster Blossom puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runSolveCmd,
	}

	rootCmd.PersistentFlags().StringVar(&solveDict, "dict", "", "dictionary word list (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVar(&solvePetals, "petals", "", "outer letters")
	rootCmd.Flags().StringVar(&solveCenter, "center", "", "center letter")
	rootCmd.Flags().StringVar(&solveBonus, "bonus", "", "bonus letter")
	rootCmd.Flags().IntVar(&solveLimit, "limit", defaultLimit, "number of solutions to display")
	rootCmd.Flags().StringVar(&solveFormat, "format", defaultFormat, "output format: text, json or msgpack")
	rootCmd.Flags().BoolVar(&solveColor, "color", false, "force colored text output")
	rootCmd.Flags().BoolVar(&solveTiming, "timing", false, "log how long the search took")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDictCmd())
	rootCmd.AddCommand(newRandomCmd())

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dict", &solveDict, fileCfg.Solve.Dict)
	applyIntConfig(cmd, "limit", &solveLimit, fileCfg.Solve.Limit)
	applyStringConfig(cmd, "format", &solveFormat, fileCfg.Solve.Format)
	applyBoolConfig(cmd, "color", &solveColor, fileCfg.Solve.Color)
	applyBoolConfig(cmd, "timing", &solveTiming, fileCfg.Solve.Timing)

	cfg := model.Config{
		DictPath: solveDict,
		DictURL:  dictionary.DefaultURL,
		Limit:    solveLimit,
		Format:   solveFormat,
		Color:    solveColor,
		Timing:   solveTiming,
		Verbose:  verbose,
	}
	if fileCfg.Dict.URL != nil {
		cfg.DictURL = *fileCfg.Dict.URL
	}
	if cfg.DictPath == "" {
		cfg.DictPath = config.DefaultDictPath()
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg model.Config) *log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	return logger.New("", level)
}

func runSolveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lg := newLogger(cfg)

	interactive := solvePetals == "" && solveCenter == "" && solveBonus == ""
	if interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		interactive = false
	}

	if interactive {
		if err := ensureDictionary(cmd.Context(), lg, cfg); err != nil {
			return err
		}
		return runInteractive(lg, cfg)
	}

	q, err := solve.NewQuery(solvePetals, solveCenter, solveBonus, cfg.Limit)
	if err != nil {
		return err
	}
	if err := ensureDictionary(cmd.Context(), lg, cfg); err != nil {
		return err
	}
	lg.Debug("searching", "dict", cfg.DictPath, "letters", q.Letters(), "center", string(q.Center), "bonus", string(q.Bonus))
	res, err := logger.Timed(lg, cfg.Timing, func() (model.Result, error) {
		return solveFile(cfg.DictPath, q)
	})
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), res, cfg.Format, report.Options{Color: cfg.Color})
}

func solveFile(path string, q model.Query) (model.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()
	return solve.Solve(file, q)
}

func runInteractive(lg *log.Logger, cfg model.Config) error {
	words, err := wordlist.LoadWords(cfg.DictPath)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	lg.Debug("dictionary loaded", "words", len(words))
	program := tea.NewProgram(tui.NewModel(words, cfg.Limit))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// ensureDictionary downloads the default word list when the configured one is missing.
func ensureDictionary(ctx context.Context, lg *log.Logger, cfg model.Config) error {
	ok, err := dictionary.Exists(cfg.DictPath)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if cfg.DictPath != config.DefaultDictPath() {
		return fmt.Errorf("dictionary not found: %s", cfg.DictPath)
	}
	lg.Info("No dictionary found. Downloading...", "url", cfg.DictURL)
	dl, err := dictionary.Fetch(ctx, cfg.DictURL, cfg.DictPath, false)
	if err != nil {
		return fmt.Errorf("failed to download dictionary: %w", err)
	}
	lg.Info("Dictionary downloaded!", "path", dl.Path, "bytes", dl.Bytes)
	return nil
}

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Download the dictionary word list",
		Args:  cobra.NoArgs,
		RunE:  runDictCmd,
	}
	cmd.Flags().StringVar(&dictURL, "url", "", "word list URL")
	cmd.Flags().BoolVar(&dictForce, "force", false, "overwrite an existing dictionary")
	return cmd
}

func runDictCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lg := newLogger(cfg)
	url := cfg.DictURL
	if dictURL != "" {
		url = dictURL
	}
	lg.Info("Fetching dictionary...", "url", url)
	dl, err := dictionary.Fetch(cmd.Context(), url, cfg.DictPath, dictForce)
	if err != nil {
		return fmt.Errorf("failed to download dictionary: %w", err)
	}
	if dl.Cached {
		lg.Info("Dictionary already present (use --force to overwrite)", "path", dl.Path)
		return nil
	}
	lg.Info("Wrote dictionary", "path", dl.Path, "bytes", dl.Bytes)
	return nil
}

func newRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random puzzle and solve it",
		Args:  cobra.NoArgs,
		RunE:  runRandomCmd,
	}
	cmd.Flags().Int64Var(&randomSeed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().IntVar(&solveLimit, "limit", defaultLimit, "number of solutions to display")
	return cmd
}

func runRandomCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lg := newLogger(cfg)
	if err := ensureDictionary(cmd.Context(), lg, cfg); err != nil {
		return err
	}
	words, err := wordlist.LoadWords(cfg.DictPath)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	gen := generator.New()
	if cmd.Flags().Changed("seed") {
		gen = generator.NewWithSeed(randomSeed)
	}
	puzzle, err := gen.Puzzle(words)
	if err != nil {
		return err
	}
	lg.Debug("generated puzzle", "seed", puzzle.Seed)

	q := model.Query{Petals: puzzle.Petals, Center: puzzle.Center, Bonus: puzzle.Bonus, Limit: cfg.Limit}
	res := solve.SolveWords(words, q)
	return writeRandom(cmd.OutOrStdout(), q, res, cfg)
}

func writeRandom(w io.Writer, q model.Query, res model.Result, cfg model.Config) error {
	if strings.EqualFold(cfg.Format, report.FormatText) {
		header := fmt.Sprintf("Petals %s · Center %s · Bonus %s",
			strings.ToUpper(q.Petals), strings.ToUpper(string(q.Center)), strings.ToUpper(string(q.Bonus)))
		if _, err := fmt.Fprintln(w, header); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return report.Write(w, res, cfg.Format, report.Options{Color: cfg.Color})
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

// flagChanged is false for flags cmd does not define.
func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return false
	}
	return flag.Changed
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# blossom configuration
# Uncomment a value to enable it. CLI flags override config values.

[solve]
# dict = %q     # Dictionary word list
# limit = %d              # Number of solutions to display
# format = %q         # Output format: text, json or msgpack
# color = false           # Force colored text output
# timing = false          # Log how long the search took

[dict]
# url = %q
`,
		config.DefaultDictPath(),
		defaultLimit,
		defaultFormat,
		dictionary.DefaultURL,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Limit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	if !report.ValidFormat(cfg.Format) {
		return fmt.Errorf("--format must be one of text, json, msgpack")
	}
	if cfg.DictURL == "" {
		return fmt.Errorf("dictionary url must not be empty")
	}
	return nil
}
