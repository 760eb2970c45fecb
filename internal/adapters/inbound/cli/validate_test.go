package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	out := mustRun(t, "validate", "--store", fixtureStore)
	assert.Contains(t, out, "is valid: 4 products, 3 stocked SKUs")
	assert.Contains(t, out, "warning: SKU003 has no stock record")
}

func TestValidateCommand_Strict(t *testing.T) {
	_, err := run(t, "validate", "--strict", "--store", fixtureStore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 product(s) without stock record")
}

func TestValidateCommand_Invalid(t *testing.T) {
	_, err := run(t, "validate", "--store", invalidStore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestValidateCommand_MissingFileIsEmptyStore(t *testing.T) {
	out := mustRun(t, "validate", "--store", filepath.Join(t.TempDir(), "shopcart.yaml"))
	assert.Contains(t, out, "0 products, 0 stocked SKUs")
}

func TestValidateCommand_ReportsVersionControl(t *testing.T) {
	plain := filepath.Join(t.TempDir(), "shopcart.yaml")
	out := mustRun(t, "validate", "--store", plain)
	assert.Contains(t, out, "store file is not under version control")

	repoDir := t.TempDir()
	_, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)
	tracked := filepath.Join(repoDir, "shopcart.yaml")
	require.NoError(t, os.WriteFile(tracked, []byte("products: []\n"), 0644))

	out = mustRun(t, "validate", "--store", tracked)
	assert.Contains(t, out, "store file is under version control")
}
