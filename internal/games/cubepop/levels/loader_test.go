package levels_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cubepop/internal/games/cubepop/levels"
)

func TestBuiltinLevelsLoad(t *testing.T) {
	all, err := levels.Builtin().LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 7)

	assert.Equal(t, "01_first_cube", all[0].ID)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID, "levels sorted by id")
	}
	for _, lvl := range all {
		assert.NoError(t, lvl.Params().Validate(), "level %s", lvl.ID)
		assert.NotEmpty(t, lvl.Name)
	}
}

func TestParseYAMLDefaultsSeedToID(t *testing.T) {
	lvl, err := levels.ParseYAML([]byte("id: tiny\nname: Tiny\nsize: 2\ncolors: 2\nmove_limit: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.Seed)
	assert.Equal(t, 2, lvl.Params().Size)
}

func TestParseYAMLRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"no id":       "name: x\nsize: 2\ncolors: 2\nmove_limit: 3\n",
		"bad size":    "id: a\nsize: 40\ncolors: 2\nmove_limit: 3\n",
		"bad colors":  "id: a\nsize: 3\ncolors: 9\nmove_limit: 3\n",
		"no moves":    "id: a\nsize: 3\ncolors: 3\n",
		"broken yaml": "id: [a\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := levels.ParseYAML([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"set/b.yaml":     {Data: []byte("id: b\nname: B\nsize: 3\ncolors: 3\nmove_limit: 9\n")},
		"set/a.yml":      {Data: []byte("id: a\nname: A\nsize: 2\ncolors: 2\nmove_limit: 4\n")},
		"set/broken.yml": {Data: []byte("id: [\n")},
		"set/notes.txt":  {Data: []byte("ignored")},
	}
	l := &levels.Loader{FS: fsys, Root: "set"}

	all, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "set/a.yml", all[0].FilePath)

	assert.Equal(t, 9, all[1].MoveLimit)
	assert.Equal(t, 1, levels.IndexOf(all, "b"))
	assert.Equal(t, -1, levels.IndexOf(all, "zzz"))
}

func TestNewLoaderReadsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.yaml"),
		[]byte("id: x\nname: X\nsize: 4\ncolors: 5\nmove_limit: 20\n"), 0o644))

	all, err := levels.NewLoader(dir).LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "x", all[0].ID)
}
