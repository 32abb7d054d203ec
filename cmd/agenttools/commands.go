package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Station-Manager/agenttools/config"
	"github.com/Station-Manager/agenttools/logging"
	"github.com/Station-Manager/agenttools/tools"
	"github.com/Station-Manager/agenttools/tools/sleep"
	"github.com/spf13/cobra"
)

type app struct {
	configPath  string
	storagePath string
	fileLog     bool

	cfg      *config.Service
	log      *logging.Service
	registry *tools.Registry
}

// newRootCmd builds the command tree. The caller must call app.close once
// the command has run, whatever its outcome.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:           "agenttools",
		Short:         "Run agent tools from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.toml, .yaml); defaults to config.* in the working directory")
	root.PersistentFlags().StringVar(&a.storagePath, "storage", "", "storage root override")
	root.PersistentFlags().BoolVar(&a.fileLog, "file-log", false, "also write logs under <storage>/log where the host supports it")

	root.AddCommand(newSleepCmd(a), newToolsCmd(a), newConfigCmd(a))
	return root, a
}

// close releases the logger, including its file sink. Safe when setup never ran.
func (a *app) close() error {
	return a.log.Close()
}

func (a *app) setup(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	a.cfg = &config.Service{WorkDir: wd, FilePath: a.configPath}
	if err = a.cfg.Initialize(); err != nil {
		return err
	}
	a.cfg.SetStoragePath(a.storagePath)

	a.log = &logging.Service{
		ConfigService: a.cfg,
		ConsoleOut:    cmd.ErrOrStderr(),
	}
	if a.fileLog && logging.DetectCapabilities().SupportsFileLogging {
		err = a.log.EnableFileAndConsole()
	} else {
		if a.fileLog {
			fmt.Fprintln(cmd.ErrOrStderr(), "file logging is not supported on this host; logging to console only")
		}
		err = a.log.EnableConsoleOnly()
	}
	if err != nil {
		return err
	}
	logging.SetDefault(a.log)

	a.registry = tools.NewRegistry(a.log.Logger())
	return a.registry.Register(sleep.New())
}

func newSleepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sleep <seconds>",
		Short: sleep.Description,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.registry.Invoke(cmd.Context(), sleep.Name, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			return nil
		},
	}
}

func newToolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List registered tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, t := range a.registry.List() {
				fmt.Fprintf(w, "%s\t%s\n", t.Name(), t.Description())
			}
			return w.Flush()
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if src := a.cfg.Source(); src != "" {
				fmt.Fprintf(out, "# loaded from %s\n", src)
			}
			if p := a.log.LogFilePath(); p != "" {
				fmt.Fprintf(out, "# logging to %s\n", p)
			}
			return a.cfg.Encode(out)
		},
	}
}
