package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gemini-teamcity/gemini-teamcity/internal/app/report"
	"github.com/gemini-teamcity/gemini-teamcity/internal/logging"
)

func makeReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [<flags>] [<events-file>|-]",
		Short: "Translate a gemini event stream into TeamCity service messages",
		Long: `Translate a gemini event stream into TeamCity service messages.

The events are read from the given file, or from stdin if the file is
omitted or "-". Service messages are written to stdout, screenshots are
copied to the images directory and published as hidden artifacts.`,
		RunE: runReport,
		Args: validateReportArgs,
	}

	cmd.Flags().String("images-dir", "", "Directory the screenshots are copied to. Defaults to a new gemini-* directory in the working directory for every run.")
	_ = viper.BindPFlag("images-dir", cmd.Flags().Lookup("images-dir"))

	cmd.Flags().Bool("follow", false, "Follow the events file while the runner is still writing it, until the run ends.")
	_ = viper.BindPFlag("follow", cmd.Flags().Lookup("follow"))

	cmd.Flags().Bool("quiet", false, "Omit test progress messages and the summary.")
	_ = viper.BindPFlag("quiet", cmd.Flags().Lookup("quiet"))

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	eventsFile := report.Stdin
	if len(args) > 0 {
		eventsFile = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := report.New(
		eventsFile,
		viper.GetString("images-dir"),
		viper.GetBool("follow"),
		viper.GetBool("quiet"),
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		cmd.ErrOrStderr(),
		viper.Get("logger").(logging.Logger),
	)

	return r.Run(ctx)
}

func validateReportArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("only one events file can be given, try --help")
	}
	if len(args) == 0 || args[0] == report.Stdin {
		if viper.GetBool("follow") {
			return errors.New("--follow requires an events file, try --help")
		}
		return nil
	}
	_, err := os.Stat(args[0])
	if os.IsNotExist(err) {
		return fmt.Errorf("path %q does not exist, try --help", args[0])
	}
	return nil
}
