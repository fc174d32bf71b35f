package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nholden/mailsort/internal/agent"
	"github.com/nholden/mailsort/internal/classify"
	"github.com/nholden/mailsort/internal/config"
	"github.com/nholden/mailsort/internal/store"
	"github.com/nholden/mailsort/internal/store/jsonfile"
	"github.com/nholden/mailsort/internal/store/sqlite"
	"github.com/nholden/mailsort/internal/tui"
)

var (
	// version is set via ldflags at build time.
	version = "dev"
	cfgFile string

	// jsonFlag enables JSON output for all commands.
	jsonFlag bool
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "mailsort",
		Short:   "Rule-based email sorter",
		Long:    "Classifies emails into folders, assigns priorities, and reports unread summaries.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shell, _ := cmd.Flags().GetString("generate-completion"); shell != "" {
				switch shell {
				case "bash":
					return cmd.Root().GenBashCompletion(os.Stdout)
				case "zsh":
					return cmd.Root().GenZshCompletion(os.Stdout)
				case "fish":
					return cmd.Root().GenFishCompletion(os.Stdout, true)
				default:
					return fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", shell)
				}
			}

			a, closeStore, err := setupAgent()
			if err != nil {
				return err
			}
			defer closeStore()

			return tui.Run(a)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("mailsort %s\n", version))
	root.CompletionOptions.DisableDefaultCmd = true
	root.Flags().String("generate-completion", "", "Generate shell completion (bash, zsh, fish)")
	root.Flags().MarkHidden("generate-completion")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	root.PersistentFlags().BoolVar(&jsonFlag, "json", false, "output in JSON format")
	root.AddCommand(newProcessCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newReadCmd())
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the application configuration from the config file.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "config.toml")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured persistence backend, creating the
// data directory when needed.
func openStore(cfg *config.Config) (store.Store, error) {
	path := cfg.StorePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	switch cfg.Store.Backend {
	case "", "json":
		return jsonfile.New(path), nil
	case "sqlite":
		db, err := sqlite.New(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (use json or sqlite)", cfg.Store.Backend)
	}
}

// setupAgent wires config, rules, store, and classifier. The returned
// func closes the store.
func setupAgent() (*agent.Agent, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	rulesPath := cfg.Rules.Path
	if rulesPath == "" {
		rulesPath = filepath.Join(config.ConfigDir(), "rules.toml")
	}
	rules, err := classify.LoadRules(rulesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rules: %w", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	return agent.New(s, classify.NewRuleClassifier(*rules)), s.Close, nil
}
