package genfix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Root        string
	Generated   string
	Extensions  []string
	Files       []string
	FromList    bool
	DryRun      bool
	Diff        bool
	Reload      bool
	NoAnimation bool
	Completion  string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "genfix",
	Short: "Rewrite generated-api imports that stall the TypeScript checker.",
	Long: `Scan a source tree for imports of 'internal' or 'api' from the generated
api barrel and rewrite them into runtime require bindings typed as any,
side-stepping a tsc deep-instantiation pathology. Files are rewritten in
place; re-running is a no-op.

Example: genfix -r web/src -n -d`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		if cfg.Diff {
			cfg.DryRun = true
		}

		normalizeExtensions()

		appCfg := &Config{
			Root:       cfg.Root,
			Generated:  cfg.Generated,
			Extensions: cfg.Extensions,
			Files:      cfg.Files,
			FromList:   cfg.FromList,
			DryRun:     cfg.DryRun,
			Diff:       cfg.Diff,
			Reload:     cfg.Reload,
		}

		app, err := NewApp(appCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		if cfg.Diff {
			summary, err := app.Execute()
			if err == nil {
				fmt.Print(FormatSummary(summary))
			}
			return err
		}

		ui := NewTUI(app, cfg.NoAnimation)
		return ui.Run()
	},
}

func handleCompletion(cmd *cobra.Command) error {
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func normalizeExtensions() {
	for i, ext := range cfg.Extensions {
		if len(ext) > 0 && ext[0] != '.' {
			cfg.Extensions[i] = "." + ext
		}
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().StringVarP(&cfg.Root, "root", "r", ".", "Source tree to scan")
	rootCmd.Flags().StringVarP(&cfg.Generated, "generated", "g", "src/_generated/api", "Generated api module, relative to root")
	rootCmd.Flags().StringSliceVarP(&cfg.Extensions, "extension", "e", []string{".ts", ".tsx"}, "Filter by extension")
	rootCmd.Flags().StringSliceVarP(&cfg.Files, "file", "f", []string{}, "Rewrite only these files")
	rootCmd.Flags().BoolVar(&cfg.FromList, "from-list", false, "Read file list from stdin or clipboard")
	rootCmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Classify without writing")
	rootCmd.Flags().BoolVarP(&cfg.Diff, "diff", "d", false, "Print a diff per fixed file (implies --dry-run)")
	rootCmd.Flags().BoolVar(&cfg.Reload, "reload", false, "Reload rewritten buffers in a running Neovim")
	rootCmd.Flags().BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable spinner")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}
