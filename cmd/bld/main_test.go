package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUserAddAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "bld.db")

	out, err := runCLI(t, "--db", db, "--log-level", "error", "user", "add",
		"--username", "admin", "--email", "admin@bld.com", "--name", "John Smith", "--role", "Project Manager", "--password", "password123")
	require.NoError(t, err, out)
	assert.Contains(t, out, "created user admin")

	_, err = runCLI(t, "--db", db, "--log-level", "error", "user", "add",
		"--username", "admin", "--email", "other@bld.com", "--password", "password123")
	assert.Error(t, err)

	out, err = runCLI(t, "--db", db, "--log-level", "error", "user", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "admin@bld.com")
	assert.Contains(t, out, "Project Manager")
}

func TestUserAddRequiresPassword(t *testing.T) {
	t.Setenv("BLD_USER_PASSWORD", "")
	db := filepath.Join(t.TempDir(), "bld.db")

	_, err := runCLI(t, "--db", db, "user", "add", "--username", "dev", "--email", "dev@bld.com")
	assert.ErrorContains(t, err, "password is required")
}
