package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDamage_Defaults(t *testing.T) {
	out, err := execute(t, "damage")
	require.NoError(t, err)
	assert.Contains(t, out, "30~36")
	assert.Contains(t, out, "variable 6–7 hit")
	assert.NotContains(t, out, "\x1b[", "color is off by default")
}

func TestDamage_AliasAndOptions(t *testing.T) {
	out, err := execute(t, "dmg", "atk-stance=boosted")
	require.NoError(t, err)
	assert.Contains(t, out, "45~54")
}

func TestRootHelpExampleRuns(t *testing.T) {
	assert.Contains(t, newRootCmd().Long, example)

	out, err := execute(t, strings.Fields(example)...)
	require.NoError(t, err)
	// floor(floor(52 * 1.5) * 2868 / 4096)
	assert.Contains(t, out, "45~54")
	assert.Contains(t, out, "stab x1.5")
}

func TestFormulaFlag(t *testing.T) {
	out, err := execute(t, "--formula", "standard", "damage")
	require.NoError(t, err)
	assert.Contains(t, out, "44~52")
}

func TestLevelFlag(t *testing.T) {
	out, err := execute(t, "--level", "100", "stat", "base=120", "ev=252")
	require.NoError(t, err)
	assert.Contains(t, out, "attack: 339")
}

func TestProject(t *testing.T) {
	out, err := execute(t, "project")
	require.NoError(t, err)
	assert.Contains(t, out, "29~35")
}

func TestMatchup_WithOpponentFlags(t *testing.T) {
	out, err := execute(t, "matchup", "Attacker", "A", "--opponent", "ref=Wall_B", "--opponent", "name=Dummy def=150 hp=200")
	require.NoError(t, err)
	assert.Contains(t, out, "33~39")
	assert.Contains(t, out, "27~32")
}

func TestMatchup_NoOpponents(t *testing.T) {
	_, err := execute(t, "matchup", "Attacker", "A")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calc:\n  default_level: 100\n"), 0644))

	out, err := execute(t, "--config", path, "hp", "base=90", "ev=252")
	require.NoError(t, err)
	// (2*90 + 31 + 63) * 100 / 100 + 100 + 10
	assert.Contains(t, out, "vitality: 384")
}

func TestInvalidInput(t *testing.T) {
	_, err := execute(t, "stat", "base=120", "level=0")
	assert.Error(t, err)

	_, err = execute(t, "--formula", "gen9", "damage")
	assert.ErrorContains(t, err, "calc.formula")
}

func TestRosterCommandsAreInteractiveOnly(t *testing.T) {
	_, err := execute(t, "register", "X")
	assert.Error(t, err)
}
