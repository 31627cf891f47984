package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), len(BuiltinCommands()))
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("damage")
	assert.True(t, ok)
	assert.Equal(t, "damage", cmd.Name)
	assert.Equal(t, HandlerDamage, cmd.Handler)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("dmg")
	assert.True(t, ok)
	assert.Equal(t, "damage", cmd.Name)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("teleport")
	assert.False(t, ok)
}

func TestResolve_AllHandlers(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		input   string
		handler string
	}{
		{"stat", HandlerStat},
		{"st", HandlerStat},
		{"hp", HandlerVitality},
		{"vit", HandlerVitality},
		{"calc", HandlerDamage},
		{"proj", HandlerProject},
		{"sheet", HandlerSheet},
		{"vs", HandlerMatchup},
		{"opp", HandlerOpponent},
		{"ls", HandlerRoster},
		{"reg", HandlerRegister},
		{"rm", HandlerDelete},
		{"cat", HandlerCatalog},
		{"set", HandlerSet},
		{"show", HandlerShow},
		{"reset", HandlerReset},
		{"?", HandlerHelp},
		{"exit", HandlerQuit},
		{"q", HandlerQuit},
	}

	for _, tt := range tests {
		cmd, ok := r.Resolve(tt.input)
		require.True(t, ok, "input %q not found", tt.input)
		assert.Equal(t, tt.handler, cmd.Handler, "input %q wrong handler", tt.input)
	}
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	cmds := []Command{
		{Name: "test", Handler: "a", Category: CategorySystem},
		{Name: "test", Handler: "b", Category: CategorySystem},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	cmds := []Command{
		{Name: "test1", Aliases: []string{"t"}, Handler: "a", Category: CategorySystem},
		{Name: "test2", Aliases: []string{"t"}, Handler: "b", Category: CategorySystem},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate alias")
}

func TestCommands_SortedByName(t *testing.T) {
	cmds := DefaultRegistry().Commands()
	for i := 1; i < len(cmds); i++ {
		assert.Less(t, cmds[i-1].Name, cmds[i].Name)
	}
}

func TestGroups_FollowCategoryOrder(t *testing.T) {
	groups := DefaultRegistry().Groups()
	require.Len(t, groups, len(Categories()))
	for i, g := range groups {
		assert.Equal(t, Categories()[i], g.Category)
	}
	assert.Len(t, groups[0].Commands, 7)
	assert.Len(t, groups[1].Commands, 3)
	assert.Equal(t, "catalog", groups[2].Commands[0].Name)
}

func TestGroups_SkipEmptyCategories(t *testing.T) {
	r, err := NewRegistry([]Command{{Name: "quit", Handler: HandlerQuit, Category: CategorySystem}})
	require.NoError(t, err)
	groups := r.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, CategorySystem, groups[0].Category)
}

func TestResolve_IgnoresCase(t *testing.T) {
	cmd, ok := DefaultRegistry().Resolve("DMG")
	require.True(t, ok)
	assert.Equal(t, "damage", cmd.Name)
}

func TestResolve_UniquePrefix(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("matc")
	require.True(t, ok)
	assert.Equal(t, "matchup", cmd.Name)

	cmd, ok = r.Resolve("regi")
	require.True(t, ok)
	assert.Equal(t, "register", cmd.Name)

	for _, ambiguous := range []string{"s", "re", "sh", ""} {
		_, ok := r.Resolve(ambiguous)
		assert.False(t, ok, "%q", ambiguous)
	}
}

func TestNewRegistry_RejectsIncompleteDefinitions(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "orphan", Category: CategoryCalc}})
	assert.ErrorContains(t, err, "has no handler")

	_, err = NewRegistry([]Command{{Name: "stray", Handler: "x", Category: "misc"}})
	assert.ErrorContains(t, err, "unknown category")

	_, err = NewRegistry([]Command{
		{Name: "stat", Handler: "a", Category: CategoryCalc},
		{Name: "status", Aliases: []string{"STAT"}, Handler: "b", Category: CategoryCalc},
	})
	assert.ErrorContains(t, err, "shadows a command name")
}

func TestBuiltinCommands_HaveUsage(t *testing.T) {
	for _, cmd := range BuiltinCommands() {
		assert.NotEmpty(t, cmd.Usage, cmd.Name)
		assert.NotEmpty(t, cmd.Help, cmd.Name)
	}
}

func TestPropertyAllAliasesResolveToCanonical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := DefaultRegistry()
		cmds := r.Commands()
		idx := rapid.IntRange(0, len(cmds)-1).Draw(t, "cmd_idx")
		cmd := cmds[idx]

		resolved, ok := r.Resolve(cmd.Name)
		if !ok {
			t.Fatalf("canonical name %q did not resolve", cmd.Name)
		}
		if resolved.Name != cmd.Name {
			t.Fatalf("canonical name %q resolved to %q", cmd.Name, resolved.Name)
		}

		for _, alias := range cmd.Aliases {
			aliasResolved, ok := r.Resolve(alias)
			if !ok {
				t.Fatalf("alias %q did not resolve", alias)
			}
			if aliasResolved.Name != cmd.Name {
				t.Fatalf("alias %q resolved to %q, expected %q", alias, aliasResolved.Name, cmd.Name)
			}
		}
	})
}
