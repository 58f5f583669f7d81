package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/pthm/hxcmd/lib/frames"
)

func packCommand() *cli.Command {
	return &cli.Command{
		Name:      "pack",
		Usage:     "pack a frames directory into a single archive",
		ArgsUsage: "<frames-dir> <output.pack>",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "fps", Usage: "playback rate stored in the pack"},
		},
		Action: runPack,
	}
}

func runPack(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("expected <frames-dir> <output.pack>, got %d arguments", cmd.NArg())
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	set, err := frames.LoadDir(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		return fmt.Errorf("no frame files found in %s", cmd.Args().Get(0))
	}
	if fps := cmd.Float("fps"); fps > 0 {
		set.FPS = fps
	}

	out, err := os.Create(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	defer out.Close()

	if err := set.WritePack(out); err != nil {
		return err
	}
	log.Info("pack written",
		zap.String("path", cmd.Args().Get(1)),
		zap.Int("frames", set.Len()),
		zap.Float64("fps", set.FPS))
	return nil
}
