// Package cli implements the framecode command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framecode/pkg/buildinfo"
	"github.com/matzehuels/framecode/pkg/config"
	"github.com/matzehuels/framecode/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and default file names.
const appName = "framecode"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath overrides the default config file location.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Framecode turns design selections into markup and styles",
		Long: `Framecode converts a selection of design nodes into a JSX or HTML
skeleton and a matching Less or CSS stylesheet. Flex layout is taken from
declared auto-layout where present and inferred from child geometry
everywhere else.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/framecode/config.toml)")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.selectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The resolver is picked
// per run from the options.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(nil, c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadConfig reads the config file selected by --config.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	c.Logger.Debug("config loaded", "markup", cfg.Markup, "stylesheet", cfg.Stylesheet, "resolver", cfg.Resolver)
	return cfg, nil
}

// optionFlags binds the pipeline flags shared by several commands.
type optionFlags struct {
	markup     string
	stylesheet string
	resolver   string
	minify     bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.markup, "markup", "m", "", "markup dialect: jsx (default), html")
	cmd.Flags().StringVarP(&f.stylesheet, "stylesheet", "s", "", "stylesheet dialect: less (default), css")
	cmd.Flags().StringVar(&f.resolver, "resolver", "", "style resolver: host (default), geometry")
	cmd.Flags().BoolVar(&f.minify, "minify", false, "minify html and css output")
}

// options merges the config file with the flags set on cmd. Flags win.
func (f *optionFlags) options(cmd *cobra.Command, cfg config.Config) (pipeline.Options, error) {
	opts := cfg.Options()
	if f.markup != "" {
		opts.Markup = f.markup
	}
	if f.stylesheet != "" {
		opts.Stylesheet = f.stylesheet
	}
	if f.resolver != "" {
		opts.Resolver = f.resolver
	}
	if cmd.Flags().Changed("minify") {
		opts.Minify = f.minify
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}
