package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/blanktech/internal/app"
	"github.com/jask/blanktech/internal/config"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

type rootFlags struct {
	config   string
	noColor  bool
	logLevel string
}

// load returns the configuration the flags describe.
func (f *rootFlags) load() (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, err
	}
	if f.noColor {
		cfg.UI.Color = false
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	return cfg, nil
}

// NewRoot builds the command tree over the given streams.
func NewRoot(in io.Reader, out, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:          "blanktech",
		Short:        "BlankTech RedBox decorative terminal menu",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			logger, err := app.NewLogger(cfg.Log.Level, errOut)
			if err != nil {
				return err
			}
			a, err := app.New(cfg, in, out, app.WithLogger(logger))
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&flags.config, "config", "", "config file (toml, yaml or json)")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log to stderr at debug, info, warn or error")

	root.AddCommand(configCmd(flags), versionCmd())
	return root
}

// Execute runs the CLI on the process streams.
func Execute(ctx context.Context) error {
	return NewRoot(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}
