// hxcmd is the demo application for the server-command engine: it serves an
// ASCII animation as a stream of command fragments, packs frame directories
// into single-file archives, and replays a stream headlessly in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "hxcmd",
		Usage: "server-command streaming demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML configuration file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "verbose logging",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			packCommand(),
			replayCommand(),
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger: development encoding for --debug,
// production JSON otherwise.
func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	if cmd.Bool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
