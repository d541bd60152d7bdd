package main

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fscode/internal/version"
	"github.com/arthur-debert/fscode/pkg/cobrax/topics"
	"github.com/arthur-debert/fscode/pkg/config"
	"github.com/arthur-debert/fscode/pkg/editor"
	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/arthur-debert/fscode/pkg/logging"
	"github.com/arthur-debert/fscode/pkg/paths"
	"github.com/arthur-debert/fscode/pkg/plan"
	"github.com/arthur-debert/fscode/pkg/script"
	"github.com/arthur-debert/fscode/pkg/ui"
)

//go:embed docs
var docsFS embed.FS

type rootFlags struct {
	verbosity    int
	dryRun       bool
	editor       string
	output       string
	exchange     bool
	tempTemplate string
	prefix       string
}

// NewRootCmd builds the fscode command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "fscode [paths...]",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&flags.editor, "editor", "", MsgFlagEditor)
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().BoolVar(&flags.exchange, "exchange", false, MsgFlagExchange)
	rootCmd.Flags().StringVar(&flags.tempTemplate, "temp-template", "", MsgFlagTempTemplate)
	rootCmd.Flags().StringVar(&flags.prefix, "prefix", "", MsgFlagPrefix)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newConfigCmd())

	initTemplateFormatting()
	attachTopics(rootCmd)

	return rootCmd
}

func attachTopics(rootCmd *cobra.Command) {
	docs, err := fs.Sub(docsFS, "docs")
	if err != nil {
		log.Warn().Err(err).Msg("Failed to open embedded docs")
		return
	}
	manager, err := topics.Load(docs, topics.Options{Renderer: topics.NewGlamourRenderer()})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load help topics")
		return
	}
	manager.Attach(rootCmd)
	rootCmd.AddCommand(newTopicsCmd(rootCmd, manager))
}

func newTopicsCmd(rootCmd *cobra.Command, manager *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		Run: func(cmd *cobra.Command, args []string) {
			names := manager.List()
			if len(names) == 0 {
				cmd.Println("No help topics available.")
				return
			}
			cmd.Println("Available help topics:")
			for _, name := range names {
				cmd.Printf("  %s\n", name)
			}
			cmd.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", rootCmd.Name())
		},
	}
}

// runRoot is the whole flow: gather paths, edit the table, parse, plan,
// emit the script.
func runRoot(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, flags)

	inputPaths, err := gatherPaths(args)
	if err != nil {
		return err
	}

	snap := plan.NewSnapshot(inputPaths)

	session, err := editor.NewSession(firstNonEmpty(flags.editor, cfg.Editor), cfg.Suffix)
	if err != nil {
		return err
	}
	edited, err := session.Edit(snap.Render())
	if err != nil {
		return err
	}

	rows, err := plan.ParseRows(edited, snap)
	if err != nil {
		return err
	}

	actions, err := plan.Build(snap, rows, plan.Options{
		Policy:       cfg.Cycle.Policy,
		TempTemplate: cfg.Cycle.Template,
		Rotate:       cfg.Cycle.Rotate,
		Fallback:     cfg.Cycle.Fallback,
	})
	if err != nil {
		return err
	}

	if len(actions) == 0 {
		pterm.Info.Println(MsgNoOperations)
		return nil
	}

	if flags.dryRun {
		cmd.Print(ui.RenderPreview(actions, ui.FormatAuto))
		pterm.Info.Println(MsgDryRunNotice)
		return nil
	}

	emitter := script.NewEmitter(script.TemplatesFromConfig(cfg))
	if err := emitter.WriteFile(cfg.Output, actions); err != nil {
		return err
	}

	pterm.Success.Printfln(MsgScriptWritten, countEffects(actions), cfg.Output)
	pterm.Info.Printfln(MsgReviewAndRun, cfg.Output)
	return nil
}

func applyFlagOverrides(cfg *config.Config, flags *rootFlags) {
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.prefix != "" {
		cfg.Prefix = flags.prefix
	}
	if flags.tempTemplate != "" {
		cfg.Cycle.Template = flags.tempTemplate
	}
	if flags.exchange {
		cfg.Cycle.Policy = config.PolicyExchange
	}
}

// gatherPaths combines argument paths with any piped on stdin, one per
// line, preserving order.
func gatherPaths(args []string) ([]string, error) {
	list := append([]string(nil), args...)

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r\n")
			if line != "" {
				list = append(list, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read paths from stdin")
		}
	}

	if len(list) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, MsgNoPathsGiven)
	}

	// Two IDs holding the same original path would let one row move a
	// file another row still claims.
	seen := make(map[string]bool, len(list))
	for _, p := range list {
		if seen[p] {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgDuplicatePath, p).
				WithDetail("path", p)
		}
		seen[p] = true
	}
	return list, nil
}

func countEffects(actions []plan.Action) int {
	n := 0
	for _, a := range actions {
		if a.Kind != plan.ActionComment {
			n++
		}
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fscode version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newConfigCmd() *cobra.Command {
	var initConfig bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initConfig {
				return writeDefaultConfig(cmd)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out, err := config.EffectiveTOML(cfg)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&initConfig, "init", false, "Write the default config to the user config file")
	return cmd
}

func writeDefaultConfig(cmd *cobra.Command) error {
	path := paths.ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, "config file already exists at %s", path)
	}
	if err := os.MkdirAll(paths.ConfigDir(), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create config dir")
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigContent()), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	pterm.Success.Printfln("Wrote default config to %s", path)
	return nil
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(fscode completion bash)

Zsh:
  $ fscode completion zsh > "${fpath[1]}/_fscode"

Fish:
  $ fscode completion fish | source

PowerShell:
  PS> fscode completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
