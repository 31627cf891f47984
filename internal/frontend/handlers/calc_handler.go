// Package handlers provides the Telnet calculator session and its command
// processing.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ttkcalc/internal/frontend/telnet"
	"github.com/cory-johannsen/ttkcalc/internal/game/command"
	"github.com/cory-johannsen/ttkcalc/internal/game/projector"
	"github.com/cory-johannsen/ttkcalc/internal/game/roster"
	"github.com/cory-johannsen/ttkcalc/internal/observability"
	"github.com/cory-johannsen/ttkcalc/internal/scripting"
)

// ErrQuit is returned by Execute when the client asked to disconnect.
var ErrQuit = errors.New("quit")

const welcomeBanner = "Damage range and turns-to-knockout calculator.\n" +
	"Type help for commands, catalog for the selectable labels, quit to leave."

type commandFunc func(s *Session, args []string, r *response) error

// CalcHandler implements telnet.SessionHandler. Every session gets its own
// roster seeded from the same profiles, its own settings and opponent list.
type CalcHandler struct {
	registry  *command.Registry
	projector *projector.Projector
	evaluator *scripting.Evaluator
	seed      []roster.Profile
	defaults  Settings
	style     telnet.Styler
	logger    *zap.Logger
	dispatch  map[string]commandFunc
}

// NewCalcHandler creates a CalcHandler.
//
// Precondition: p, eval and logger must be non-nil; defaults must be valid.
// Postcondition: Returns a CalcHandler ready to handle sessions.
func NewCalcHandler(
	p *projector.Projector,
	eval *scripting.Evaluator,
	seed []roster.Profile,
	defaults Settings,
	style telnet.Styler,
	logger *zap.Logger,
) *CalcHandler {
	h := &CalcHandler{
		registry:  command.DefaultRegistry(),
		projector: p,
		evaluator: eval,
		seed:      seed,
		defaults:  defaults,
		style:     style,
		logger:    logger,
	}
	h.dispatch = map[string]commandFunc{
		command.HandlerStat:     h.stat,
		command.HandlerVitality: h.vitality,
		command.HandlerDamage:   h.directDamage,
		command.HandlerProject:  h.project,
		command.HandlerSheet:    h.sheet,
		command.HandlerMatchup:  h.matchup,
		command.HandlerOpponent: h.opponent,
		command.HandlerRoster:   h.listRoster,
		command.HandlerRegister: h.register,
		command.HandlerDelete:   h.deleteProfile,
		command.HandlerCatalog:  h.listCatalog,
		command.HandlerSet:      h.set,
		command.HandlerShow:     h.show,
		command.HandlerReset:    h.reset,
		command.HandlerHelp:     h.help,
		command.HandlerQuit:     h.quit,
	}
	return h
}

// NewSession creates the state for one client.
//
// Postcondition: Returns a Session whose roster holds the seed profiles, or
// an error if a seed profile is invalid.
func (h *CalcHandler) NewSession() (*Session, error) {
	return newSession(h.seed, h.defaults)
}

// HandleSession implements telnet.SessionHandler. It runs the command loop
// until the client quits, disconnects, or the context is cancelled.
//
// Postcondition: Returns nil on quit or EOF, or an error if the session ended
// abnormally.
func (h *CalcHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	start := time.Now()
	sess, err := h.NewSession()
	if err != nil {
		return err
	}
	logger := observability.SessionLogger(h.logger, sess.ID, conn.RemoteAddr().String())

	if err := conn.WriteLine(h.style.Paint(telnet.Cyan, welcomeBanner)); err != nil {
		return fmt.Errorf("sending welcome: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteLine(h.style.Paint(telnet.Yellow, "Server shutting down. Goodbye!"))
			return ctx.Err()
		default:
		}

		if err := conn.WritePrompt(h.style.Paint(telnet.Bold, "ttk> ")); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		line, err := conn.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cmdStart := time.Now()
		out, err := h.Execute(sess, line)
		fields := []zap.Field{
			zap.String("command", command.Parse(line).Command),
			zap.Duration("duration", time.Since(cmdStart)),
		}
		switch {
		case errors.Is(err, ErrQuit):
			_ = conn.WriteLine(out)
			logger.Info("client quit", zap.Duration("session_duration", time.Since(start)))
			return nil
		case err != nil:
			logger.Debug("command rejected", append(fields, zap.Error(err))...)
			out = h.style.Paint(telnet.Red, "Error: "+err.Error())
		default:
			logger.Debug("command", fields...)
		}
		if out == "" {
			continue
		}
		if err := conn.WriteLine(out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}

// Execute runs one command line against s and returns the text to display.
// Failed commands leave s unchanged.
//
// Postcondition: Returns the output, ErrQuit with a farewell, or an error
// describing why the command was rejected.
func (h *CalcHandler) Execute(s *Session, line string) (string, error) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return "", nil
	}
	cmd, ok := h.registry.Resolve(parsed.Command)
	if !ok {
		return "", fmt.Errorf("unknown command %q, type help for a list", parsed.Command)
	}
	fn, ok := h.dispatch[cmd.Handler]
	if !ok {
		return "", fmt.Errorf("command %q has no handler", cmd.Name)
	}
	r := &response{style: h.style}
	if err := fn(s, parsed.Args, r); err != nil {
		if errors.Is(err, ErrQuit) {
			return r.String(), err
		}
		return "", err
	}
	return r.String(), nil
}

// response collects the output of one command. Warnings are printed first.
type response struct {
	style    telnet.Styler
	warnings []string
	lines    []string
}

func (r *response) line(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *response) text(s string) {
	r.lines = append(r.lines, s)
}

func (r *response) warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

func (r *response) String() string {
	out := make([]string, 0, len(r.warnings)+len(r.lines))
	for _, w := range r.warnings {
		out = append(out, r.style.Paint(telnet.Yellow, "Warning: "+w))
	}
	return strings.Join(append(out, r.lines...), "\n")
}
