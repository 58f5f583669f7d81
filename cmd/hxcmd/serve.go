package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/pthm/hxcmd"
	"github.com/pthm/hxcmd/lib/frames"
	"github.com/pthm/hxcmd/lib/sse"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the animation demo over SSE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Usage: "listen address"},
			&cli.StringFlag{Name: "frames", Usage: "frames directory or pack file"},
			&cli.FloatFlag{Name: "fps", Usage: "playback rate override"},
			&cli.StringFlag{Name: "static", Usage: "static assets directory"},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	set, err := frames.Load(cfg.Frames)
	if err != nil {
		// Match the original demo: serve anyway and tell the viewer.
		log.Warn("no frames loaded", zap.String("source", cfg.Frames), zap.Error(err))
		set = &frames.Set{FPS: frames.DefaultFPS}
	}
	if cfg.FPS > 0 {
		set.FPS = cfg.FPS
	}
	log.Info("frames loaded", zap.Int("count", set.Len()), zap.Float64("fps", set.FPS))

	srv := &server{log: log, frames: set}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", srv.handleIndex)
	r.Get("/stream", srv.handleStream)
	if cfg.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	httpSrv := &http.Server{Addr: cfg.Listen, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Listen))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

type server struct {
	log    *zap.Logger
	frames *frames.Set
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexPage().Render(r.Context(), w); err != nil {
		s.log.Error("rendering index", zap.Error(err))
	}
}

// handleStream plays the animation once: per frame, a progress bar update, a
// progress text update, and the frame itself, each as one command fragment.
func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	out, err := sse.NewWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if s.frames.Len() == 0 {
		_ = out.Send(hxcmd.Update("#frames", hxcmd.SwapInner,
			"No frames loaded. Please add frames to the frames/ directory.").String())
		return
	}

	tick := time.NewTicker(time.Duration(float64(time.Second) / s.frames.FPS))
	defer tick.Stop()

	total := s.frames.Len()
	for i := 0; i < total; i++ {
		progress := float64(i+1) / float64(total) * 100

		bar := fmt.Sprintf(`<div id="progress" style="--progress: %.2f%%"></div>`, progress)
		updates := []string{
			hxcmd.UpdateHTML("#progress", hxcmd.SwapOuter, bar).String(),
			hxcmd.Update("#progress-text", hxcmd.SwapText,
				fmt.Sprintf("%.2f%% / 100%%", progress)).String(),
			hxcmd.Update("#frames", hxcmd.SwapText, s.frames.Frame(i)).String(),
		}
		for _, u := range updates {
			if err := out.Send(u); err != nil {
				s.log.Debug("client gone", zap.Error(err))
				return
			}
		}

		select {
		case <-r.Context().Done():
			return
		case <-tick.C:
		}
	}
}
