package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/pthm/hxcmd"
	"github.com/pthm/hxcmd/lib/dom"
	"github.com/pthm/hxcmd/lib/sse"
)

// replayPage mirrors the regions the demo stream targets.
const replayPage = `<!DOCTYPE html><html><body>
<div id="progress"></div>
<div id="progress-text"></div>
<pre id="frames"></pre>
</body></html>`

func replayCommand() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "play a command stream headlessly in the terminal",
		ArgsUsage: "<url-or-file>",
		Action:    runReplay,
	}
}

// runReplay consumes an event stream and runs every message through the
// engine against a headless page, painting the page's frame region to the
// terminal - the full receiving pipeline without a browser.
func runReplay(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("expected a stream URL or a captured stream file")
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	source, err := openStream(ctx, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	defer source.Close()

	page, err := dom.NewPage(replayPage)
	if err != nil {
		return err
	}
	engine := hxcmd.New(page, page, page, hxcmd.WithLogger(log))

	reader := sse.NewReader(source)
	for {
		msg, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		_, task := engine.Transform(msg.Data, page.Root())
		if _, err := task.Wait(ctx); err != nil {
			return err
		}
		paint(page)
	}
}

func openStream(ctx context.Context, source string) (io.ReadCloser, error) {
	if _, err := os.Stat(source); err == nil {
		return os.Open(source)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("stream returned %s", resp.Status)
	}
	return resp.Body, nil
}

func paint(page *dom.Page) {
	framesElt, ok := page.Doc.Find("#frames")
	if !ok {
		return
	}
	progress := ""
	if p, ok := page.Doc.Find("#progress-text"); ok {
		progress = dom.Text(p)
	}
	// Home the cursor and clear; repainting in place keeps the animation
	// steady.
	fmt.Print("\033[H\033[2J")
	fmt.Println(dom.Text(framesElt))
	fmt.Println(progress)
}
