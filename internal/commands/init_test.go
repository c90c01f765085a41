package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynabtoledger/ynabtoledger/internal/commands"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInit_WritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	out, err := runCommand(t, "init", "--config", path, "--budget-id", "budget-1", "--token", "tok")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "primary_budget_id: budget-1")
	assert.Contains(t, contents, "api_access_token: tok")
	assert.Contains(t, contents, "log_level: info")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	_, err := runCommand(t, "init", "--config", path, "--budget-id", "budget-1")
	require.NoError(t, err)

	_, err = runCommand(t, "init", "--config", path, "--budget-id", "budget-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCommand(t, "init", "--config", path, "--budget-id", "budget-2", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "budget-2")
}

func TestInit_RequiresBudgetID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	_, err := runCommand(t, "init", "--config", path)
	require.Error(t, err, "init without --budget-id should fail")
}

func TestToLedger_MissingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := runCommand(t, "to-ledger", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init")
}
