package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openkraft/htmlcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "htmlcheck-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "htmlcheck")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/htmlcheck")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func reportPath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/reports", name))
	return abs
}

func run(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.Output()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Comments ---

func TestE2E_Comments(t *testing.T) {
	out, code := run(t, "", "comments", "chuck.html", "--report", reportPath("mixed.json"))
	assert.Equal(t, 0, code)

	var comments []domain.ReviewComment
	require.NoError(t, json.Unmarshal([]byte(out), &comments))
	require.Len(t, comments, 4)
	assert.Equal(t, &domain.SourceLocation{Path: "chuck.html", Offset: 0, ColumnFrom1: 1, LineFrom1: 2}, comments[0].SourceLocation)
}

func TestE2E_CommentsFromStdin(t *testing.T) {
	data, err := os.ReadFile(reportPath("warnings.json"))
	require.NoError(t, err)

	out, code := run(t, string(data), "comments", "theme.css", "--report", "-")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"subcategory": "css"`)
	assert.Contains(t, out, `"severity": "warn"`)
}

// --- Summary ---

func TestE2E_SummarySingleMessage(t *testing.T) {
	out, code := run(t, "", "summary", "--report", reportPath("clean.json"))
	assert.Equal(t, 0, code)
	assert.Equal(t, "html-validator: info: Using the preset for SVG 1.1 + URL + HTML + MathML 3.0 based on the root namespace.\n", out)
}

func TestE2E_SummaryMultipleMessages(t *testing.T) {
	out, code := run(t, "", "summary", "--report", reportPath("mixed.json"))
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "html-validator:\n  info: what?\n  [2:1] error: huh?\n"))
}

// --- Review ---

func TestE2E_ReviewFailsOnErrors(t *testing.T) {
	out, code := run(t, "", "review", "index.html", "--path", t.TempDir(), "--report", reportPath("mixed.json"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL")
}

func TestE2E_ReviewPassesCleanReport(t *testing.T) {
	out, code := run(t, "", "review", "logo.svg", "--path", t.TempDir(), "--json", "--report", reportPath("clean.json"))
	assert.Equal(t, 0, code)

	var result domain.ReviewResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.StatusPass, result.Status)
	assert.Equal(t, domain.SubcategorySVG, result.Subcategory)
	assert.Empty(t, result.Comments)
}

func TestE2E_ReviewStrict(t *testing.T) {
	_, code := run(t, "", "review", "index.html", "--path", t.TempDir(), "--report", reportPath("warnings.json"))
	assert.Equal(t, 0, code)

	_, code = run(t, "", "review", "index.html", "--path", t.TempDir(), "--strict", "--report", reportPath("warnings.json"))
	assert.Equal(t, 1, code)
}

// --- Init ---

func TestE2E_InitThenReview(t *testing.T) {
	dir := t.TempDir()
	_, code := run(t, "", "init", dir, "--fail-on", "warn")
	require.Equal(t, 0, code)

	_, code = run(t, "", "review", "index.html", "--path", dir, "--report", reportPath("warnings.json"))
	assert.Equal(t, 1, code)
}

// --- Version ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "htmlcheck")
}
