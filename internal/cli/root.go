package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sonard/internal/common/fsutil"
	"sonard/internal/config"
)

// Options carries resolved configuration to subcommands.
type Options struct {
	ConfigPath string
	Config     config.Config
	Logger     zerolog.Logger

	lookupEnv func(string) (string, bool)
}

func buildRootCmd(opts *Options, stdout, stderr io.Writer) *cobra.Command {
	if opts.lookupEnv == nil {
		opts.lookupEnv = os.LookupEnv
	}
	root := &cobra.Command{
		Use:           "sonard",
		Short:         "Event discovery engine: filtering, selection and idle carousel over an event catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "Config file (.yaml, .yml, .json, .toml); defaults to SONARD_CONFIG")
	pf.String("log-level", "", "Log level: debug|info|warn|error (overrides config)")
	pf.String("log-format", "", "Log format: json|console (overrides config)")
	pf.String("catalog", "", "Catalog file path (overrides config)")
	pf.String("catalog-url", "", "Catalog backend URL (overrides config)")
	pf.Bool("allow-sample-fallback", false, "Serve the built-in sample catalog when the source is unreachable")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := resolveConfig(cmd, opts); err != nil {
			return err
		}
		opts.Logger = newLogger(stderr, opts.Config.LogLevel, opts.Config.LogFormat)
		return nil
	}

	root.AddCommand(newServeCmd(opts), newQueryCmd(opts), newVersionCmd())
	return root
}

// resolveConfig applies defaults < file < env < flags.
func resolveConfig(cmd *cobra.Command, opts *Options) error {
	var cfg config.Config
	path := opts.ConfigPath
	if path == "" {
		path, _ = opts.lookupEnv("SONARD_CONFIG")
	}
	if path != "" {
		p, err := fsutil.Resolve(path)
		if err != nil {
			return err
		}
		if cfg, err = config.Load(p); err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(opts.lookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = f.Value.String()
	}
	if f := flags.Lookup("log-format"); f != nil && f.Changed {
		cfg.LogFormat = f.Value.String()
	}
	if f := flags.Lookup("catalog"); f != nil && f.Changed {
		cfg.CatalogPath = f.Value.String()
	}
	if f := flags.Lookup("catalog-url"); f != nil && f.Changed {
		cfg.CatalogURL = f.Value.String()
	}
	if f := flags.Lookup("allow-sample-fallback"); f != nil && f.Changed {
		cfg.AllowSampleFallback, _ = flags.GetBool("allow-sample-fallback")
	}
	if f := flags.Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}
	if f := flags.Lookup("watch"); f != nil && f.Changed {
		cfg.WatchCatalog, _ = flags.GetBool("watch")
	}

	cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts.Config = cfg
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "sonard", Version)
			return err
		},
	}
}
