// cmd/repocrew/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"repocrew/internal/config"
	"repocrew/internal/fetch"
	"repocrew/internal/integrations"
	"repocrew/internal/output"
	"repocrew/internal/pipeline"
	"repocrew/internal/provider"
	"repocrew/internal/store"

	// Register providers via init() side effects.
	_ "repocrew/internal/provider/anthropic"
	_ "repocrew/internal/provider/ollama"
	_ "repocrew/internal/provider/openai"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath   string
	modelFlag    string
	providerFlag string
	tokenFlag    string
	stagingFlag  string
	outputFlag   string
	plainFlag    bool
	noHistory    bool
	timeoutFlag  time.Duration
)

func versionString() string {
	return fmt.Sprintf("repocrew %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "repocrew [repository]",
		Short: "Review a GitHub repository with a crew of LLM workers",
		Long: "repocrew fetches a repository's top-level files, parses its Markdown and Python\n" +
			"content, and runs a sequential crew of role-specialized LLM workers to produce\n" +
			"a review report.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReview(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "override model name")
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "override provider name")
	rootCmd.Flags().StringVar(&tokenFlag, "token", "", "GitHub access token (defaults to GITHUB_TOKEN)")
	rootCmd.Flags().StringVar(&stagingFlag, "staging", "", "staging directory for fetched files")
	rootCmd.Flags().StringVar(&outputFlag, "output", "markdown", "output format: json, markdown")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "disable terminal rendering of reports")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this run in the history store")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", 10*time.Minute, "overall run timeout")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(versionString())
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path, loads the config, and applies flag
// overrides.
func loadConfig() (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".config", "repocrew", "config.toml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if modelFlag != "" {
		cfg.Provider.Model = modelFlag
	}
	if providerFlag != "" {
		cfg.Provider.Default = providerFlag
	}

	return cfg, nil
}

func runReview(repoArg string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token := tokenFlag
	if token == "" {
		token, err = cfg.ResolveGitHubToken()
		if err != nil {
			return fmt.Errorf("resolving GitHub token: %w", err)
		}
	}

	staging, err := resolveStagingDir(cfg)
	if err != nil {
		return err
	}

	p, err := provider.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("creating provider: %w", err)
	}
	backend := integrations.NewLLMCompleter(p, cfg.Provider.Model, cfg.Provider.MaxTokens)

	// Single top-level timeout governs the whole run; cancellation mid-
	// sequence aborts remaining tasks without executing them.
	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	fetcher := fetch.New(ctx, fetch.Options{Token: token, StagingDir: staging})

	res := pipeline.Run(ctx, pipeline.Config{Repo: repoArg, StagingDir: staging}, fetcher, backend)

	if !noHistory {
		recordRun(cfg, res)
	}

	result := output.FromPipeline(res)
	formatter, err := newFormatter(outputFlag)
	if err != nil {
		return err
	}

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if outputFlag == "markdown" && !plainFlag && term.IsTerminal(int(os.Stdout.Fd())) {
		data = output.RenderANSI(data)
	}

	os.Stdout.Write(data)

	if res.Status != pipeline.StatusSuccess {
		return fmt.Errorf("review failed (%s): %s", res.Status, res.Err)
	}

	fmt.Fprintln(os.Stderr, "repocrew: review completed successfully.")
	return nil
}

func newFormatter(format string) (output.Formatter, error) {
	switch format {
	case "markdown":
		return output.NewMarkdownFormatter(), nil
	case "json":
		return output.NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

// resolveStagingDir picks the staging directory: flag, then config, then a
// per-user cache location.
func resolveStagingDir(cfg *config.Config) (string, error) {
	if stagingFlag != "" {
		return stagingFlag, nil
	}
	if cfg.Pipeline.StagingDir != "" {
		return cfg.Pipeline.StagingDir, nil
	}

	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine cache directory: %w", err)
	}
	return filepath.Join(cache, "repocrew", "staging"), nil
}

// historyDBPath picks the history database location: config, then the
// per-user cache location.
func historyDBPath(cfg *config.Config) (string, error) {
	if cfg.Pipeline.HistoryDB != "" {
		return cfg.Pipeline.HistoryDB, nil
	}

	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine cache directory: %w", err)
	}
	dir := filepath.Join(cache, "repocrew")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	return filepath.Join(dir, "runs.db"), nil
}

// recordRun persists the run outcome. History is best-effort; failures warn
// instead of masking the review result.
func recordRun(cfg *config.Config, res *pipeline.Result) {
	dbPath, err := historyDBPath(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "repocrew: skipping history: %v\n", err)
		return
	}

	s, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "repocrew: skipping history: %v\n", err)
		return
	}
	defer s.Close()

	report := ""
	if res.Report != nil {
		report = res.Report.Text()
	}
	if _, err := s.SaveRun(res.Repo, string(res.Status), report); err != nil {
		fmt.Fprintf(os.Stderr, "repocrew: skipping history: %v\n", err)
	}
}
