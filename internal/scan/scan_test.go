package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		opts     Options
		expected []string
	}{
		{
			name:  "exclude testdata",
			paths: []string{"a.go", "testdata/fixture.go", "pkg/good.go"},
			opts: Options{
				ExcludeDirs: []string{"testdata"},
			},
			expected: []string{"a.go", "pkg/good.go"},
		},
		{
			name:  "exclude nested vendor",
			paths: []string{"vendor/a", "pkg/vendor/b", "internal/c"},
			opts: Options{
				ExcludeDirs: []string{"vendor"},
			},
			expected: []string{"internal/c"},
		},
		{
			name:  "segment matching only",
			paths: []string{"testdata_old/a", "mytestdata/b"},
			opts: Options{
				ExcludeDirs: []string{"testdata"},
			},
			expected: []string{"mytestdata/b", "testdata_old/a"},
		},
		{
			name:  "extension filter",
			paths: []string{"a.go", "b.feature", "c.go"},
			opts: Options{
				Extensions: []string{".go"},
			},
			expected: []string{"a.go", "c.go"},
		},
		{
			name:  "excludes and extensions",
			paths: []string{"vendor/a.go", "b.go", "c.txt"},
			opts: Options{
				ExcludeDirs: []string{"vendor"},
				Extensions:  []string{".go"},
			},
			expected: []string{"b.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.paths, tt.opts)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	createFile(t, dir, "steps.go")
	createFile(t, dir, "orders/order_steps.go")
	createFile(t, dir, "orders/notes.txt")
	createFile(t, dir, "testdata/sample_steps.go")
	createFile(t, dir, ".git/config")

	got, err := Files(dir, Options{
		Recursive:   true,
		ExcludeDirs: DefaultExcludeDirs(),
		Extensions:  []string{".go"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"orders/order_steps.go", "steps.go"}, got)
}

func TestFiles_NonRecursive(t *testing.T) {
	dir := t.TempDir()

	createFile(t, dir, "a.feature")
	createFile(t, dir, "b.feature")
	createFile(t, dir, "nested/c.feature")
	createFile(t, dir, "readme.md")

	got, err := Files(dir, Options{Extensions: []string{".feature"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.feature", "b.feature"}, got)
}

func TestFiles_MissingRoot(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "absent"), Options{Recursive: true})
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func createFile(t *testing.T, dir, path string) {
	t.Helper()
	fullPath := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte("x"), 0o644))
}
