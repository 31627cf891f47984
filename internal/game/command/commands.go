// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryCalc    = "calc"
	CategoryRoster  = "roster"
	CategorySession = "session"
	CategorySystem  = "system"
)

// Handler identifiers mapping commands to session handlers.
const (
	HandlerStat     = "stat"
	HandlerVitality = "hp"
	HandlerDamage   = "damage"
	HandlerProject  = "project"
	HandlerSheet    = "sheet"
	HandlerMatchup  = "matchup"
	HandlerOpponent = "opponent"
	HandlerRoster   = "roster"
	HandlerRegister = "register"
	HandlerDelete   = "delete"
	HandlerCatalog  = "catalog"
	HandlerSet      = "set"
	HandlerShow     = "show"
	HandlerReset    = "reset"
	HandlerHelp     = "help"
	HandlerQuit     = "quit"
)

// Command defines a user-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text.
	Help string
	// Usage lists the accepted options.
	Usage string
	// Category groups the command.
	Category string
	// Handler maps to the session handler.
	Handler string
}

// BuiltinCommands returns all built-in calculator commands.
func BuiltinCommands() []Command {
	return []Command{
		// Calculation commands
		{Name: "stat", Aliases: []string{"st"}, Help: "Resolve one statistic",
			Usage:    "stat kind=attack base=120 var=best ev=252 level=50 growth=neutral stance=none",
			Category: CategoryCalc, Handler: HandlerStat},
		{Name: "hp", Aliases: []string{"vit"}, Help: "Resolve vitality",
			Usage: "hp base=90 var=best ev=252 level=50", Category: CategoryCalc, Handler: HandlerVitality},
		{Name: "damage", Aliases: []string{"dmg", "calc"}, Help: "Damage from concrete statistics",
			Usage:    "damage atk=150 def=130 hp=200 power=100 level=50 atk-stance=none def-stance=none stab= type= item= custom= wall= amp=",
			Category: CategoryCalc, Handler: HandlerDamage},
		{Name: "project", Aliases: []string{"proj"}, Help: "Damage bounds from base values and variation ranges",
			Usage:    "project atk-base=120 atk-var=best atk-ev=252 atk-growth= atk-stance= def-base=100 def-var= def-ev= def-growth= def-stance= hp-base=90 hp-var= hp-ev= power= level= special=false stab= type= item= custom= wall= amp=",
			Category: CategoryCalc, Handler: HandlerProject},
		{Name: "sheet", Help: "Stat bands of a saved profile",
			Usage:    "sheet <profile> ev-a=252 growth-a=up stance-a=boosted ...",
			Category: CategoryCalc, Handler: HandlerSheet},
		{Name: "matchup", Aliases: []string{"vs"}, Help: "Compare a saved profile against the opponent list",
			Usage:    "matchup <profile> role=attack|defend category=physical|special power= stab= item= custom= amp= wall= ev-<stat>= growth-<stat>= stance-<stat>=",
			Category: CategoryCalc, Handler: HandlerMatchup},
		{Name: "opponent", Aliases: []string{"opp"}, Help: "Manage matchup opponents",
			Usage:    "opponent add name= [ref=<profile>] def= hp= atk= power= stab= item= custom= amp= type= | opponent list | opponent clear",
			Category: CategoryCalc, Handler: HandlerOpponent},

		// Roster commands
		{Name: "roster", Aliases: []string{"ls"}, Help: "List saved profiles",
			Usage: "roster", Category: CategoryRoster, Handler: HandlerRoster},
		{Name: "register", Aliases: []string{"reg"}, Help: "Save a profile",
			Usage:    "register name= level=50 h=100 a=130 b=80 c=80 d=80 s=100 h-var=best ...",
			Category: CategoryRoster, Handler: HandlerRegister},
		{Name: "delete", Aliases: []string{"del", "rm"}, Help: "Delete a saved profile by name or id",
			Usage: "delete <profile>", Category: CategoryRoster, Handler: HandlerDelete},

		// Session commands
		{Name: "catalog", Aliases: []string{"cat"}, Help: "List multiplier tables and variation buckets",
			Usage: "catalog", Category: CategorySession, Handler: HandlerCatalog},
		{Name: "set", Help: "Change a session default",
			Usage: "set level=50 power=100", Category: CategorySession, Handler: HandlerSet},
		{Name: "show", Help: "Show session defaults",
			Usage: "show", Category: CategorySession, Handler: HandlerShow},
		{Name: "reset", Help: "Restore session defaults and clear opponents",
			Usage: "reset", Category: CategorySession, Handler: HandlerReset},

		// System commands
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands",
			Usage: "help [command]", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Disconnect",
			Usage: "quit", Category: CategorySystem, Handler: HandlerQuit},
	}
}
