// Package notify dispatches a desktop notification through the host's
// native notifier: osascript on macOS, notify-send or the freedesktop
// D-Bus service on Linux. Unrecognized platforms are a silent no-op.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hpkotak/notify-claude/internal/config"
	"github.com/hpkotak/notify-claude/internal/executor"
	"github.com/hpkotak/notify-claude/internal/platform"
	"github.com/rs/zerolog"
)

// ErrNotifierUnavailable is the only failure: the platform notifier is
// missing, unreachable, or exited non-zero.
var ErrNotifierUnavailable = errors.New("notification command unavailable or failed")

// Message is a backend-neutral notification.
type Message struct {
	Title   string
	Urgency string
}

// RunFunc runs an external command.
type RunFunc func(ctx context.Context, name string, args ...string) error

// LookPathFunc resolves a command on PATH.
type LookPathFunc func(name string) (string, error)

// SendFunc delivers a Message over D-Bus.
type SendFunc func(ctx context.Context, m Message) error

// Dispatcher selects and invokes the notifier for a platform.Kind.
// It holds no per-notification state; every Dispatch call notifies.
type Dispatcher struct {
	cfg      *config.Config
	log      zerolog.Logger
	run      RunFunc
	lookPath LookPathFunc
	sendDBus SendFunc
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithRunner replaces the command runner.
func WithRunner(run RunFunc) Option {
	return func(d *Dispatcher) { d.run = run }
}

// WithLookPath replaces PATH lookup.
func WithLookPath(lookPath LookPathFunc) Option {
	return func(d *Dispatcher) { d.lookPath = lookPath }
}

// WithDBus replaces the D-Bus sender.
func WithDBus(send SendFunc) Option {
	return func(d *Dispatcher) { d.sendDBus = send }
}

// New creates a Dispatcher. cfg must already be validated.
func New(cfg *config.Config, logger zerolog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:      cfg,
		log:      logger,
		run:      executor.Run,
		lookPath: executor.LookPath,
		sendDBus: SendDBus,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch raises one notification for kind.
func (d *Dispatcher) Dispatch(ctx context.Context, kind platform.Kind) error {
	switch kind {
	case platform.MacOS:
		return d.notifyMacOS(ctx)
	case platform.Linux:
		return d.notifyLinux(ctx)
	default:
		d.log.Debug().Str("os", kind.String()).Msg("no notifier for platform, skipping")
		return nil
	}
}

func (d *Dispatcher) notifyMacOS(ctx context.Context) error {
	script := fmt.Sprintf("display notification %s sound name %s",
		appleScriptString(d.cfg.Title), appleScriptString(d.cfg.MacOS.Sound))
	return d.exec(ctx, "osascript", "-e", script)
}

func (d *Dispatcher) notifyLinux(ctx context.Context) error {
	msg := Message{Title: d.cfg.Title, Urgency: d.cfg.Linux.Urgency}

	switch d.cfg.Linux.Backend {
	case config.BackendDBus:
		d.log.Debug().Str("backend", config.BackendDBus).Str("urgency", msg.Urgency).Msg("sending notification")
		if err := d.sendDBus(ctx, msg); err != nil {
			return fmt.Errorf("%w: dbus: %w", ErrNotifierUnavailable, err)
		}
	default:
		if err := d.exec(ctx, "notify-send", "-u", msg.Urgency, msg.Title); err != nil {
			return err
		}
	}

	if d.cfg.Linux.Sound {
		d.playSound(ctx)
	}
	return nil
}

// exec runs a required notifier command. Missing or failing commands are
// reported as ErrNotifierUnavailable.
func (d *Dispatcher) exec(ctx context.Context, name string, args ...string) error {
	path, err := d.lookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotifierUnavailable, name, err)
	}

	d.log.Debug().Str("cmd", path).Strs("args", args).Msg("sending notification")
	if err := d.run(ctx, path, args...); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotifierUnavailable, name, err)
	}
	return nil
}

// playSound is best-effort and never fails the dispatch.
func (d *Dispatcher) playSound(ctx context.Context) {
	player := d.cfg.Linux.SoundPlayer
	path, err := d.lookPath(player)
	if err != nil {
		d.log.Debug().Str("player", player).Msg("sound player not found, skipping sound")
		return
	}
	if err := d.run(ctx, path, d.cfg.Linux.SoundFile); err != nil {
		d.log.Warn().Err(err).Str("player", player).Str("file", d.cfg.Linux.SoundFile).Msg("playing sound failed")
	}
}

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
