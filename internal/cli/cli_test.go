package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig points the database at a fresh SQLite file and returns the
// config path.
func writeConfig(t *testing.T, extra ...string) string {
	t.Helper()
	dir := t.TempDir()
	lines := append([]string{
		"database_path: " + filepath.Join(dir, "library.db"),
		"log_level: error",
		"log_output: " + filepath.Join(dir, "library.log"),
	}, extra...)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func createAdmin(t *testing.T, configPath string) {
	t.Helper()
	out, err := execute(t, "", "--config", configPath, "create-admin",
		"--username", "root1", "--password", "Secret@123",
		"--first-name", "Ada", "--last-name", "Lovelace", "--email", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Admin root1 registered.")
}

func TestMigrateUpAndStatus(t *testing.T) {
	configPath := writeConfig(t)

	out, err := execute(t, "", "--config", configPath, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema version: 2 (sqlite3)")

	out, err = execute(t, "", "--config", configPath, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema version: 2 (sqlite3)")
}

func TestMigrateDown(t *testing.T) {
	configPath := writeConfig(t)

	_, err := execute(t, "", "--config", configPath, "migrate", "up")
	require.NoError(t, err)

	out, err := execute(t, "", "--config", configPath, "migrate", "down", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema version: 1 (sqlite3)")

	_, err = execute(t, "", "--config", configPath, "migrate", "down", "--steps", "0")
	assert.ErrorContains(t, err, "--steps must be at least 1")
}

func TestCreateAdmin(t *testing.T) {
	configPath := writeConfig(t)
	createAdmin(t, configPath)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := execute(t, "", "--config", configPath, "create-admin",
			"--username", "root1", "--password", "Secret@123",
			"--first-name", "Ada", "--last-name", "Lovelace", "--email", "ada@example.com")
		assert.EqualError(t, err, "Username already exists.")
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := execute(t, "", "--config", configPath, "create-admin",
			"--username", "root2", "--password", "Secret@123",
			"--first-name", "Ada", "--last-name", "Lovelace", "--email", "nope")
		assert.Error(t, err)
	})

	t.Run("password prompted", func(t *testing.T) {
		out, err := execute(t, "short\nSecret@123\n", "--config", configPath, "create-admin",
			"--username", "root3", "--first-name", "Grace", "--last-name", "Hopper", "--email", "grace@example.com")
		require.NoError(t, err)
		assert.Contains(t, out, "Password must be between 8 and 24 characters long.")
		assert.Contains(t, out, "Admin root3 registered.")
	})

	t.Run("missing flags", func(t *testing.T) {
		_, err := execute(t, "", "--config", configPath, "create-admin", "--username", "root4")
		assert.Error(t, err)
	})
}

func TestRunConsole(t *testing.T) {
	configPath := writeConfig(t)
	createAdmin(t, configPath)

	out, err := execute(t, "2\nroot1\nSecret@123\n7\n11\n3\n", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "----Library Management System----")
	assert.Contains(t, out, "1 Month")
	assert.Contains(t, out, "Logging out...")
	assert.Contains(t, out, "Exiting...")

	out, err = execute(t, "3\n", "--config", configPath, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting...")
}

func TestAudit(t *testing.T) {
	configPath := writeConfig(t)
	createAdmin(t, configPath)

	out, err := execute(t, "", "--config", configPath, "audit", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Audit Trail:")
	assert.Contains(t, out, "admin_register")

	exportDir := t.TempDir()
	out, err = execute(t, "", "--config", configPath, "audit", "export", "--dir", exportDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 audit events")

	files, err := filepath.Glob(filepath.Join(exportDir, "*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	var events []map[string]any
	require.NoError(t, json.Unmarshal(data, &events))
	assert.Len(t, events, 1)

	out, err = execute(t, "", "--config", configPath, "audit", "export", "--dir", t.TempDir(), "--type", "checkout")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 0 audit events")

	_, err = execute(t, "", "--config", configPath, "audit", "export", "--type", "auth", "--user", "root1")
	assert.ErrorContains(t, err, "cannot be combined")

	out, err = execute(t, "", "--config", configPath, "audit", "prune", "--older-than-days", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 0 audit events.")

	out, err = execute(t, "", "--config", configPath, "audit", "prune", "--older-than-days", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 audit events.")
}

func TestAuditDisabled(t *testing.T) {
	configPath := writeConfig(t, "audit_enabled: false")
	createAdmin(t, configPath)

	out, err := execute(t, "", "--config", configPath, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "No audit events found.")
}

func TestInvalidConfig(t *testing.T) {
	configPath := writeConfig(t, "database_driver: oracle")

	_, err := execute(t, "", "--config", configPath, "migrate", "up")
	assert.ErrorContains(t, err, `unsupported DATABASE_DRIVER "oracle"`)

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "migrate", "up")
	assert.ErrorContains(t, err, "failed to read config file")
}
