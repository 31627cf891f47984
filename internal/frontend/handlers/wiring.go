package handlers

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ttkcalc/internal/config"
	"github.com/cory-johannsen/ttkcalc/internal/frontend/telnet"
	"github.com/cory-johannsen/ttkcalc/internal/game/catalog"
	"github.com/cory-johannsen/ttkcalc/internal/game/damage"
	"github.com/cory-johannsen/ttkcalc/internal/game/projector"
	"github.com/cory-johannsen/ttkcalc/internal/game/roster"
	"github.com/cory-johannsen/ttkcalc/internal/scripting"
)

// NewCalcHandlerFromConfig builds the formula, projector, evaluator and seed
// roster described by cfg. A non-empty RosterDir replaces the built-in
// example profiles.
//
// Precondition: cfg must have passed config.Validate; logger must be non-nil.
// Postcondition: Returns a CalcHandler or an error naming the failing part.
func NewCalcHandlerFromConfig(cfg config.CalcConfig, color bool, logger *zap.Logger) (*CalcHandler, error) {
	formula, err := damage.FormulaByName(cfg.Formula)
	if err != nil {
		return nil, fmt.Errorf("selecting formula: %w", err)
	}

	seed := roster.DefaultProfiles()
	if cfg.RosterDir != "" {
		seed, err = roster.LoadProfiles(cfg.RosterDir)
		if err != nil {
			return nil, fmt.Errorf("loading roster: %w", err)
		}
		logger.Info("roster loaded", zap.String("dir", cfg.RosterDir), zap.Int("profiles", len(seed)))
	}

	defaults := Settings{Level: cfg.DefaultLevel, Power: cfg.DefaultPower}
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("session defaults: %w", err)
	}

	p := projector.New(damage.NewEngine(formula))
	eval := scripting.NewEvaluator(cfg.ScriptInstructionLimit, catalog.ItemConstants(), logger)
	return NewCalcHandler(p, eval, seed, defaults, telnet.NewStyler(color), logger), nil
}
