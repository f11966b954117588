package cli

import (
	"fmt"

	"github.com/arthur-debert/configtool/internal/version"
	"github.com/arthur-debert/configtool/pkg/commands"
	"github.com/arthur-debert/configtool/pkg/errors"
	"github.com/arthur-debert/configtool/pkg/logging"
	"github.com/arthur-debert/configtool/pkg/output"
	"github.com/arthur-debert/configtool/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		dryRun     bool
		noColor    bool
		configPath string
		themePath  string
	)

	rootCmd := &cobra.Command{
		Use:     "configtool",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile := ""
			if p, err := paths.FromEnv(); err == nil {
				logFile = p.LogFilePath()
			}
			logging.SetupLogger(verbosity, logFile)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.apply")
			logger.Info().
				Str("configPath", configPath).
				Str("themePath", themePath).
				Bool("dryRun", dryRun).
				Msg("Starting apply")

			result, err := commands.Apply(commands.ApplyOptions{
				ConfigPath: configPath,
				ThemePath:  themePath,
				DryRun:     dryRun,
			})
			if result != nil {
				output.NewRenderer(cmd.OutOrStdout(), noColor).RenderApply(result)
			}
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.Flags().StringVar(&configPath, "config-path", "", MsgFlagConfigPath)
	rootCmd.Flags().StringVar(&themePath, "theme-path", "", MsgFlagThemePath)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	_ = rootCmd.MarkFlagFilename("config-path", "json")
	_ = rootCmd.MarkFlagFilename("theme-path")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs the root command and prints any error to stderr. It returns
// the error so main can set the exit status.
func Execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		output.NewRenderer(rootCmd.ErrOrStderr(), false).RenderError(err)
		log.Debug().Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
	}
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info("configtool"))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(configtool completion bash)

Zsh:
  $ configtool completion zsh > "${fpath[1]}/_configtool"

Fish:
  $ configtool completion fish | source

PowerShell:
  PS> configtool completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
