package settleplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWorkbooks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xlsx", "a.xlsx", "notes.txt", "old.xls", "~$a.xlsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.xlsx"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.xlsx", "deep.xlsx"), nil, 0644))

	files, err := FindWorkbooks(dir, DefaultExtension)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xlsx", "b.xlsx"}, files)
}

func TestFindWorkbooksEmpty(t *testing.T) {
	files, err := FindWorkbooks(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindWorkbooksMissingDir(t *testing.T) {
	_, err := FindWorkbooks(filepath.Join(t.TempDir(), "absent"), DefaultExtension)
	assert.Error(t, err)
}
