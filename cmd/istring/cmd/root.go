package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/istring/catalog"
	ierror "github.com/msto63/istring/core/error"
	"github.com/msto63/istring/core/log"
	"github.com/msto63/istring/internal/render"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	settings *Settings
	logger   = log.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "istring",
	Short: "istring - string utilities",
	Long: `istring runs the string helpers of the stringx package from the
command line.

Commands:
  list     - all operations with parameters and aliases
  call     - invoke one operation
  format   - render a {{path}} template against a context file
  version  - version information

Settings are read from --config, or from istring.toml, istring.yaml or
istring.json in the working directory. ISTRING_* environment variables
override single keys (ISTRING_LOG_LEVEL for log.level).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and returns the process exit status
func Execute() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(err)
		return ierror.GetCode(err).ExitCode()
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: ./istring.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
}

func setup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cfgFile)
	if err != nil {
		return err
	}

	if verbose {
		s.Log.Level = "debug"
	}
	if logFormat != "" {
		s.Log.Format = logFormat
	}
	if err := s.Validate(); err != nil {
		return err
	}

	l, err := newLogger(s)
	if err != nil {
		return err
	}

	settings = s
	logger = l
	log.SetDefault(l)
	logger.Debug("settings loaded", log.Fields{"file": s.file, "level": s.Log.Level})
	return nil
}

func newLogger(s *Settings) (*log.Logger, error) {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := log.ParseFormat(s.Log.Format)
	if err != nil {
		return nil, err
	}
	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "istring",
	}), nil
}

func newCatalog() (*catalog.Registry, error) {
	return catalog.New(catalog.Options{Logger: logger})
}

func newRenderer(out io.Writer, quote, color bool) *render.Renderer {
	return render.New(render.Options{
		Color:  color && settings != nil && settings.Output.Color,
		Quote:  quote || (settings != nil && settings.Output.Quote),
		Output: out,
	})
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, newRenderer(os.Stderr, false, true).Error(err))
	if verbose {
		if e, ok := err.(*ierror.Error); ok {
			fmt.Fprintln(os.Stderr, e.String())
		}
	}
}
