package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mcptools/mcpconf/internal/version"
	"github.com/mcptools/mcpconf/pkg/commands"
	"github.com/mcptools/mcpconf/pkg/logging"
	"github.com/mcptools/mcpconf/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		baseDir   string
		verbosity int
	)

	rootCmd := &cobra.Command{
		Use:     "mcpconf",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&baseDir, "dir", "d", "", MsgFlagDir)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newAddCmd(&baseDir))
	rootCmd.AddCommand(newEnableCmd(&baseDir))
	rootCmd.AddCommand(newDisableCmd(&baseDir))
	rootCmd.AddCommand(newListCmd(&baseDir))
	rootCmd.AddCommand(newCombineCmd(&baseDir))
	rootCmd.AddCommand(newShowCmd(&baseDir))
	rootCmd.AddCommand(newBackupCmd(&baseDir))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newAddCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: MsgAddShort,
		Long:  MsgAddLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Add(commands.AddOptions{
				BaseDir:    *baseDir,
				SourcePath: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.OK(fmt.Sprintf(MsgAddSuccess, result.Name)))
			return nil
		},
	}
}

func newEnableCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "enable <name>",
		Short: MsgEnableShort,
		Long:  MsgEnableLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Enable(commands.EnableOptions{
				BaseDir: *baseDir,
				Name:    args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.OK(fmt.Sprintf(MsgEnableSuccess, result.Name)))
			return nil
		},
	}
}

func newDisableCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <name>",
		Short: MsgDisableShort,
		Long:  MsgDisableLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Disable(commands.DisableOptions{
				BaseDir: *baseDir,
				Name:    args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.OK(fmt.Sprintf(MsgDisableSuccess, result.Name)))
			return nil
		},
	}
}

func newListCmd(baseDir *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.List(commands.ListOptions{
				BaseDir: *baseDir,
			})
			if err != nil {
				return err
			}
			return renderListing(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "plain", MsgFlagOutput)
	return cmd
}

func newCombineCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "combine",
		Short: MsgCombineShort,
		Long:  MsgCombineLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Combine(commands.CombineOptions{
				BaseDir: *baseDir,
			})
			if err != nil {
				return err
			}
			if result.Backup != "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgCombineBackup+"\n", result.Backup)
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.OK(fmt.Sprintf(MsgCombineSuccess, style.Path(result.Path))))
			return nil
		},
	}
}

func newShowCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Show(commands.ShowOptions{
				BaseDir: *baseDir,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.JSON)
			return nil
		},
	}
}

func newBackupCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: MsgBackupShort,
		Long:  MsgBackupLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Backup(commands.BackupOptions{
				BaseDir: *baseDir,
			})
			if err != nil {
				return err
			}
			if result.Name == "" {
				fmt.Fprintln(cmd.OutOrStdout(), MsgBackupNone)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.OK(fmt.Sprintf(MsgBackupSuccess, result.Name)))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mcpconf version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
