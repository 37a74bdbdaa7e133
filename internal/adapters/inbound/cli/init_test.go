package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/htmlcheck/internal/adapters/inbound/cli"
	"github.com/openkraft/htmlcheck/internal/adapters/outbound/config"
	"github.com/openkraft/htmlcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".htmlcheck.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "fail_on: error")
	assert.Contains(t, string(data), "record_history: false")
}

func TestInitCmd_GeneratedConfigLoads(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--fail-on", "warn"})
	require.NoError(t, root.Execute())

	cfg, err := config.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, domain.FailOnWarn, cfg.FailOn)
}

func TestInitCmd_RejectsUnknownFailOn(t *testing.T) {
	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", t.TempDir(), "--fail-on", "sometimes"})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fail_on")
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".htmlcheck.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".htmlcheck.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".htmlcheck.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "fail_on:")
}
