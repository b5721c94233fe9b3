// Package demo runs a tutorial program: flags, logging, the session and the
// frame loop.
package demo

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/toxichemicals/GO/holy-learngl/core"
	"github.com/toxichemicals/GO/holy-learngl/internal/config"
	"github.com/toxichemicals/GO/holy-learngl/internal/logger"
)

// Scene is the part of a program that differs between tutorials.
type Scene interface {
	// HandleEvent sees every polled event, including the ones the loop acts
	// on itself.
	HandleEvent(e core.Event)

	// Update advances the scene. dt is the frame time and elapsed the time
	// since the loop started, both in seconds.
	Update(dt, elapsed float32)

	Render()
}

// Setup builds the scene. Resources should be created through sess so they
// are released when the program exits.
type Setup func(sess *core.Session, cfg config.Config) (Scene, error)

// Main parses the command line, runs the program and exits non-zero on
// failure.
func Main(title string, setup Setup) {
	os.Exit(run(title, os.Args[1:], os.Stderr, setup))
}

func run(title string, args []string, stderr io.Writer, setup Setup) int {
	cfg, err := config.Parse(title, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logger.New(cfg.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	if err := Run(cfg, log, setup); err != nil {
		log.Error("program failed", zap.Error(err))
		return 1
	}
	return 0
}

// Run opens a session for cfg, builds the scene and loops until the window
// is closed or escape is pressed.
func Run(cfg config.Config, log *zap.Logger, setup Setup) error {
	sess, err := core.Open(cfg.Window(), log)
	if err != nil {
		return fmt.Errorf("failed to open window: %w", err)
	}
	defer sess.Close()

	scene, err := setup(sess, cfg)
	if err != nil {
		return err
	}

	log.Info("starting main loop", zap.String("title", cfg.Title))
	frames := Loop(sess, cfg.Title, scene)
	log.Info("shutting down", zap.Int("frames", frames))
	return nil
}

// Loop drives scene until a QuitEvent or an escape key press and returns the
// number of frames drawn. The window title shows the frame rate, refreshed
// once a second.
func Loop(sess *core.Session, title string, scene Scene) int {
	return loop(sess, title, scene, core.NewFrameClock())
}

func loop(sess *core.Session, title string, scene Scene, clock *core.FrameClock) int {
	frames := 0
	for {
		dt := clock.Tick()

		for _, e := range sess.Window.PollEvents() {
			switch e := e.(type) {
			case core.QuitEvent:
				return frames
			case core.KeyEvent:
				if e.Key == core.KeyEscape && e.Pressed {
					return frames
				}
			case core.ResizeEvent:
				sess.Resize(e)
			}
			scene.HandleEvent(e)
		}

		scene.Update(dt, clock.Elapsed())
		scene.Render()
		sess.Window.SwapBuffers()
		frames++

		if fps, ok := clock.FPS(); ok {
			sess.Window.SetTitle(fmt.Sprintf("%s | FPS: %.2f", title, fps))
		}
	}
}
