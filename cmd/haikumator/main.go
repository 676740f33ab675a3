package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/aayushbajaj/haikumator/internal/config"
	"github.com/aayushbajaj/haikumator/internal/lexicon"
	"github.com/aayushbajaj/haikumator/internal/logging"
	"github.com/aayushbajaj/haikumator/internal/runner"
	"github.com/aayushbajaj/haikumator/internal/storage"
	"github.com/aayushbajaj/haikumator/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	seed       uint64
	logLevel   string
	verbose    bool
	logToFile  bool

	// Flags shared by the processing commands
	poemPath     string
	synonymsPath string
	antonymsPath string
	savePath     string
	outputDir    string
	lexiconPath  string

	cfg    *config.Config
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "haikumator",
	Short: "Haikumator - rewrite haiku with a thesaurus",
	Long: `Rewrites three-line poems by swapping words for synonyms or antonyms
from a plain-text lexicon, enumerates every variant in batch, and guesses the
season a poem evokes.

Run without a subcommand to open the interactive menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var synonymizeCmd = newTransformCmd(runner.Synonymize,
	"Replace words with random synonyms")

var zenizeCmd = newTransformCmd(runner.Zenize,
	"Replace words with their shortest synonyms")

var lengthenCmd = newTransformCmd(runner.Lengthen,
	"Replace words with their longest synonyms")

var antonymizeCmd = newTransformCmd(runner.Antonymize,
	"Replace words with antonyms, bridging through synonyms")

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Write every synonym variant of a poem to a folder",
	Long: `Write every combination of synonym replacements as v1.txt, v2.txt, ...
into an existing folder. The last replaceable word changes fastest.

Examples:
  haikumator batch -p haiku.txt -s synonyms.txt -o out/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd)
	},
}

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Detect the season a poem evokes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeason(cmd)
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup WORD",
	Short: "Show the lexicon entry for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, args[0])
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Create the user config file if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.NewLoader(logger).EnsureUserConfig()
		if err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func newTransformCmd(kind, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, kind)
		},
	}
	cmd.Flags().StringVarP(&poemPath, "poem", "p", "", "Path to the poem file")
	cmd.Flags().StringVarP(&synonymsPath, "synonyms", "s", "", "Path to the synonym lexicon")
	cmd.Flags().StringVar(&savePath, "save", "", "Also write the result to this file")
	if runner.NeedsAntonyms(kind) {
		cmd.Flags().StringVarP(&antonymsPath, "antonyms", "a", "", "Path to the antonym lexicon")
	}
	_ = cmd.MarkFlagRequired("poem")
	return cmd
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: user and project config)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for the random policies (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level debug")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-file", false, "Write logs to the data directory")

	batchCmd.Flags().StringVarP(&poemPath, "poem", "p", "", "Path to the poem file")
	batchCmd.Flags().StringVarP(&synonymsPath, "synonyms", "s", "", "Path to the synonym lexicon")
	batchCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Existing folder for the variants")
	_ = batchCmd.MarkFlagRequired("poem")

	seasonCmd.Flags().StringVarP(&poemPath, "poem", "p", "", "Path to the poem file")
	seasonCmd.Flags().StringVar(&savePath, "save", "", "Also write the report to this file")
	_ = seasonCmd.MarkFlagRequired("poem")

	lookupCmd.Flags().StringVarP(&lexiconPath, "lexicon", "l", "", "Path to the lexicon (default: configured synonyms)")

	rootCmd.AddCommand(synonymizeCmd)
	rootCmd.AddCommand(zenizeCmd)
	rootCmd.AddCommand(lengthenCmd)
	rootCmd.AddCommand(antonymizeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(initConfigCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setup loads the layered config, applies flag overrides and builds the
// logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.NewLoader(nil).Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		loaded.Seed = seed
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if verbose {
		loaded.Log.Level = "debug"
	}
	if logToFile || !cmd.HasParent() {
		// stderr belongs to the TUI while it runs
		loaded.Log.File = true
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(logging.Options{Level: loaded.Log.Level, File: loaded.Log.File})
	if err != nil {
		return err
	}
	cfg, logger = loaded, l
	return nil
}

func newRunner() *runner.Runner {
	return runner.New(logger, cfg.Seed)
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func inputs(needAntonyms bool) (runner.Inputs, error) {
	in := runner.Inputs{
		Poem:     poemPath,
		Synonyms: orDefault(synonymsPath, cfg.Lexicons.Synonyms),
		Antonyms: orDefault(antonymsPath, cfg.Lexicons.Antonyms),
	}
	if in.Synonyms == "" {
		return in, errors.New("no synonym lexicon given (use --synonyms or set lexicons.synonyms)")
	}
	if needAntonyms && in.Antonyms == "" {
		return in, errors.New("no antonym lexicon given (use --antonyms or set lexicons.antonyms)")
	}
	return in, nil
}

func runTUI() error {
	if err := tui.SetTheme(cfg.Theme); err != nil {
		return err
	}

	model := tui.New(newRunner(), tui.Defaults{
		Synonyms:  cfg.Lexicons.Synonyms,
		Antonyms:  cfg.Lexicons.Antonyms,
		OutputDir: cfg.OutputDir,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func runTransform(cmd *cobra.Command, kind string) error {
	in, err := inputs(runner.NeedsAntonyms(kind))
	if err != nil {
		return err
	}

	out, err := newRunner().Transform(kind, in)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "The Haiku before processing:")
	fmt.Fprintln(w, out.Before.Render())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "The %s Haiku after processing:\n", out.Label)
	fmt.Fprintln(w, out.After.Render())

	return save(w, out.After.Render())
}

func save(w io.Writer, text string) error {
	if savePath == "" {
		return nil
	}
	if err := storage.SaveText(savePath, text); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nResult saved to %s\n", savePath)
	return nil
}

func runBatch(cmd *cobra.Command) error {
	in, err := inputs(false)
	if err != nil {
		return err
	}
	dir := orDefault(outputDir, cfg.OutputDir)
	if dir == "" {
		return errors.New("no output folder given (use --output or set output_dir)")
	}

	w := cmd.OutOrStdout()
	n, err := newRunner().Batch(cmd.Context(), in, dir, func(int) {
		fmt.Fprint(w, ".")
	})
	if n > 0 {
		fmt.Fprintln(w)
	}
	if err != nil {
		return fmt.Errorf("batch stopped after %d permutations: %w", n, err)
	}

	if n == 0 {
		fmt.Fprintln(w, "No replaceable words found in thesaurus.")
		return nil
	}
	fmt.Fprintf(w, "Batch processing completed with %d permutations\n", n)
	logger.Info("Batch finished", zap.Int("variants", n), zap.String("dir", dir))
	return nil
}

func runSeason(cmd *cobra.Command) error {
	src, res, err := newRunner().Season(poemPath)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, src.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, res.Report())

	return save(w, res.Report())
}

func runLookup(cmd *cobra.Command, word string) error {
	path := orDefault(lexiconPath, cfg.Lexicons.Synonyms)
	if path == "" {
		return errors.New("no lexicon given (use --lexicon or set lexicons.synonyms)")
	}
	lex, err := lexicon.LoadFile(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if lex.Contains(word) {
		fmt.Fprintf(w, "%s: %s\n", strings.ToLower(strings.TrimSpace(word)), strings.Join(lex.Lookup(word), ", "))
		return nil
	}

	fmt.Fprintf(w, "'%s' not found in lexicon.\n", word)
	if suggestions := lex.Suggest(word, 5); len(suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
	return nil
}
