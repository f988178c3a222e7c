package excludes

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralCreatesDefaultOnFirstUse(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := General()
	require.NoError(t, err)
	assert.Equal(t, GeneralFile, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".*\n", string(content))
}

func TestFetchCreatesEmptyOnFirstUse(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, FetchFile, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestAccessorsNeverOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile(GeneralFile, []byte("node_modules\n*.log\n"), 0644))

	for range 2 {
		_, err := General()
		require.NoError(t, err)
	}

	content, err := os.ReadFile(GeneralFile)
	require.NoError(t, err)
	assert.Equal(t, "node_modules\n*.log\n", string(content))
}
