package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/istring/catalog"
	"github.com/msto63/istring/core/config"
	ierror "github.com/msto63/istring/core/error"
	ierrors "github.com/msto63/istring/core/errors"
	"github.com/msto63/istring/core/log"
)

var (
	formatContext string
	formatSet     []string
	formatMissing string
	formatWatch   bool
)

var formatCmd = &cobra.Command{
	Use:   "format <template-file|->",
	Short: "Render a template",
	Long: `Replaces {{path}} tokens in a template with values from a context.
The context is a TOML, YAML or JSON file; --set adds or overrides single
values. Paths are dot-separated and may index lists ({{users.0.name}}).

Examples:
  istring format greeting.txt --context user.toml
  echo 'Hello {{name}}' | istring format - --set name=Ada
  istring format page.tpl --context data.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVar(&formatContext, "context", "", "context file (TOML, YAML or JSON)")
	formatCmd.Flags().StringArrayVar(&formatSet, "set", nil, "context value as key=value, repeatable")
	formatCmd.Flags().StringVar(&formatMissing, "missing", "", "text for unresolved tokens (default from settings)")
	formatCmd.Flags().BoolVarP(&formatWatch, "watch", "w", false, "re-render when the template or context changes")
}

func runFormat(cmd *cobra.Command, args []string) error {
	source := args[0]

	missing := settings.Format.Missing
	if cmd.Flags().Changed("missing") {
		missing = formatMissing
	}

	reg, err := newCatalog()
	if err != nil {
		return err
	}

	renderOnce := func() error {
		template, err := readTemplate(source, cmd.InOrStdin())
		if err != nil {
			return err
		}
		context, err := loadContext(formatContext, formatSet)
		if err != nil {
			return err
		}

		res, err := reg.Invoke("format", catalog.Call{
			Args:    catalog.Args(template),
			Context: context,
			Missing: &missing,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), res.Text)
		return nil
	}

	if !formatWatch {
		return renderOnce()
	}
	if source == "-" {
		return ierrors.InvalidInput("cli", "format", source, "a template file when watching")
	}
	return watchFormat(cmd, renderOnce)
}

func watchFormat(cmd *cobra.Command, renderOnce func() error) error {
	paths := []string{cmd.Flags().Arg(0)}
	if formatContext != "" {
		paths = append(paths, formatContext)
	}

	watcher, err := config.NewWatcher(logger, paths...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := renderOnce(); err != nil {
		printError(err)
	}

	logger.Info("watching for changes", log.Fields{"files": strings.Join(paths, ", ")})
	return watcher.Run(ctx, func(path string) {
		logger.Info("re-rendering", log.Fields{"changed": path})
		if err := renderOnce(); err != nil {
			printError(err)
		}
	})
}

func readTemplate(source string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		code := ierror.CodeInternal
		if os.IsNotExist(err) {
			code = ierror.CodeNotFound
		}
		return "", ierror.Wrap(err, "cannot read template").
			WithCode(code).
			WithOperation("cli.format").
			WithDetail("template", source)
	}
	return string(data), nil
}

// loadContext builds the lookup root from a context file and key=value
// overrides. Dotted keys create nested maps.
func loadContext(path string, sets []string) (map[string]interface{}, error) {
	cfg := config.FromMap(nil)
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, ierrors.InvalidInput("cli", "format", kv, "key=value")
		}
		cfg.Set(strings.TrimSpace(key), value)
	}
	return cfg.Data(), nil
}
