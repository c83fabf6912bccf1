// Command dbmctl talks to the DBM backend from the command line. It clones tickets, lists toolbox
// menus and inspects password and openarea settings.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/xfwduke/blueking-dbm/internal/log"
	"github.com/xfwduke/blueking-dbm/pkg/client"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// app carries what every command needs. It's populated before any command runs.
type app struct {
	out    io.Writer
	logger *slog.Logger
	client *client.Client
}

func newRootCommand(out io.Writer) *cobra.Command {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	var (
		host     = envOr("DBM_API_HOST", "localhost:8000")
		basePath = envOr("DBM_API_BASE_PATH", "/")
		token    = envOr("DBM_API_TOKEN", "")
		timeout  = 30 * time.Second
		verbose  bool
	)

	a := &app{out: out}
	root := &cobra.Command{
		Use:           "dbmctl",
		Short:         "Command line client of the DBM backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			handler := log.NewPrettyJSONHandler(cmd.ErrOrStderr(), &log.PrettyJSONHandlerOptions{
				HandlerOptions: slog.HandlerOptions{Level: level},
				PrettyPrint:    true,
			})
			a.logger = slog.New(log.New(handler))
			a.client = client.New(host, basePath, token, timeout)
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&host, "api-host", host, "Host of the DBM API (env DBM_API_HOST)")
	root.PersistentFlags().StringVar(&basePath, "api-base-path", basePath, "Base path of the DBM API (env DBM_API_BASE_PATH)")
	root.PersistentFlags().StringVar(&token, "api-token", token, "Token authenticating against the DBM API (env DBM_API_TOKEN)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", timeout, "Timeout of a single request")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages to stderr")

	root.AddCommand(
		newCloneCommand(a),
		newCloneFileCommand(a),
		newMenusCommand(a),
		newPasswordPolicyCommand(a),
		newRandomPasswordCommand(a),
		newVerifyPasswordCommand(a),
		newOpenareaCommand(a),
	)

	return root
}

func (a *app) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
