package command

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Categories returns the command categories in help display order.
func Categories() []string {
	return []string{CategoryCalc, CategoryRoster, CategorySession, CategorySystem}
}

// Group is one category of commands as shown by help.
type Group struct {
	Category string
	Commands []*Command
}

// Registry maps command names and aliases to Command definitions. Lookups
// are case-insensitive.
type Registry struct {
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a canonical name or alias; every
// command names a handler and one of Categories().
// Postcondition: Returns a Registry or an error describing the first bad
// definition.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
	}

	for i := range cmds {
		cmd := &cmds[i]
		cmd.Name = strings.ToLower(cmd.Name)
		if cmd.Handler == "" {
			return nil, fmt.Errorf("command %q has no handler", cmd.Name)
		}
		if !slices.Contains(Categories(), cmd.Category) {
			return nil, fmt.Errorf("command %q has unknown category %q", cmd.Name, cmd.Category)
		}
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if _, exists := r.aliases[cmd.Name]; exists {
			return nil, fmt.Errorf("command name %q conflicts with an existing alias", cmd.Name)
		}
		r.commands[cmd.Name] = cmd

		for j, alias := range cmd.Aliases {
			alias = strings.ToLower(alias)
			cmd.Aliases[j] = alias
			if _, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("alias %q of %q shadows a command name", alias, cmd.Name)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, cmd.Name)
			}
			r.aliases[alias] = cmd.Name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by name, alias, or an unambiguous prefix of a
// canonical name ("matc" finds matchup, "s" finds nothing).
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Command, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, false
	}
	if cmd, ok := r.commands[input]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[input]; ok {
		return r.commands[canonical], true
	}
	var match *Command
	for name, cmd := range r.commands {
		if !strings.HasPrefix(name, input) {
			continue
		}
		if match != nil {
			return nil, false
		}
		match = cmd
	}
	return match, match != nil
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Groups returns the non-empty categories in Categories() order, each with
// its commands sorted by name.
func (r *Registry) Groups() []Group {
	byCategory := make(map[string][]*Command)
	for _, cmd := range r.Commands() {
		byCategory[cmd.Category] = append(byCategory[cmd.Category], cmd)
	}
	groups := make([]Group, 0, len(byCategory))
	for _, cat := range Categories() {
		if cmds := byCategory[cat]; len(cmds) > 0 {
			groups = append(groups, Group{Category: cat, Commands: cmds})
		}
	}
	return groups
}
