package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cory-johannsen/ttkcalc/internal/config"
	"github.com/cory-johannsen/ttkcalc/internal/frontend/handlers"
	"github.com/cory-johannsen/ttkcalc/internal/game/command"
	"github.com/cory-johannsen/ttkcalc/internal/observability"
)

// oneShot lists the calculator commands exposed as subcommands. Roster and
// opponent editing only make sense inside an interactive session.
var oneShot = []string{"stat", "hp", "damage", "project", "sheet", "matchup", "catalog"}

const example = "damage atk=150 def=130 hp=200 power=100 stab=same-type"

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("telnet.color", false)

	var configPath string
	root := &cobra.Command{
		Use:   "ttkcalc",
		Short: "Damage ranges and turns to knock out",
		Long: `ttkcalc resolves statistics, computes damage ranges and reports how many
hits a defender survives. Options are given as key=value pairs, e.g.

  ttkcalc ` + example,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config file: %w", err)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to configuration file")
	flags.String("formula", "variant", "damage formula: variant or standard")
	flags.Int("level", 50, "default level")
	flags.Int("power", 100, "default move power")
	flags.String("roster", "", "directory of YAML profiles replacing the built-in roster")
	flags.Bool("color", false, "style results with ANSI colors")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	for key, flag := range map[string]string{
		"calc.formula":       "formula",
		"calc.default_level": "level",
		"calc.default_power": "power",
		"calc.roster_dir":    "roster",
		"telnet.color":       "color",
		"logging.level":      "log-level",
	} {
		// Binding only fails for a nil flag.
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	registry := command.DefaultRegistry()
	for _, name := range oneShot {
		cmd, ok := registry.Resolve(name)
		if !ok {
			continue
		}
		root.AddCommand(newCalcCmd(v, cmd))
	}
	return root
}

func newCalcCmd(v *viper.Viper, cmd *command.Command) *cobra.Command {
	var opponents []string
	c := &cobra.Command{
		Use:     cmd.Name + " [key=value ...]",
		Aliases: cmd.Aliases,
		Short:   cmd.Help,
		Long:    cmd.Help + ".\n\nUsage:\n  " + cmd.Usage,
		RunE: func(c *cobra.Command, args []string) error {
			lines := make([]string, 0, len(opponents)+1)
			for _, opp := range opponents {
				lines = append(lines, "opponent add "+opp)
			}
			lines = append(lines, strings.TrimSpace(cmd.Name+" "+strings.Join(args, " ")))
			return runLines(c, v, lines)
		},
	}
	if cmd.Name == "matchup" {
		c.Flags().StringArrayVar(&opponents, "opponent", nil, `opponent options, e.g. "ref=Wall_B" or "def=150 hp=200"; repeatable`)
	}
	return c
}

// runLines executes lines in one fresh session and prints the output of the
// last one.
func runLines(c *cobra.Command, v *viper.Viper, lines []string) error {
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Logging, "ttkcalc")
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	h, err := handlers.NewCalcHandlerFromConfig(cfg.Calc, cfg.Telnet.Color, logger)
	if err != nil {
		return err
	}
	session, err := h.NewSession()
	if err != nil {
		return err
	}

	var out string
	for _, line := range lines {
		out, err = h.Execute(session, line)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(c.OutOrStdout(), out)
	return nil
}
