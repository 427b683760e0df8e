// Package levels provides campaign level loading for CubePop.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cubepop/internal/games/cubepop/core"
)

//go:embed data/*.yaml
var builtin embed.FS

// Level is one campaign puzzle: a fixed seed and generation parameters.
type Level struct {
	ID        string
	Name      string
	Size      int
	Colors    int
	Seed      string
	MoveLimit int
	FilePath  string
}

// Params returns the generation request for this level.
func (l Level) Params() core.GenParams {
	return core.GenParams{
		Size:      l.Size,
		Colors:    l.Colors,
		Seed:      l.Seed,
		MoveLimit: l.MoveLimit,
	}
}

// yamlLevel is the on-disk level format.
type yamlLevel struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Size      int    `yaml:"size"`
	Colors    int    `yaml:"colors"`
	Seed      string `yaml:"seed,omitempty"`
	MoveLimit int    `yaml:"move_limit"`
}

// ParseYAML parses and validates a level file.
// A missing seed defaults to the level id.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if yl.Seed == "" {
		yl.Seed = yl.ID
	}

	lvl := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Size:      yl.Size,
		Colors:    yl.Colors,
		Seed:      yl.Seed,
		MoveLimit: yl.MoveLimit,
	}
	if err := lvl.Params().Validate(); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}
	return lvl, nil
}

// Loader loads level files from a file system tree.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// Builtin returns a loader for the levels shipped with the binary.
func Builtin() *Loader {
	return &Loader{FS: builtin, Root: "data"}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		lvl, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file relative to the loader's file system.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	lvl.FilePath = p
	return lvl, nil
}

// IndexOf returns the position of the level with the given id, or -1.
func IndexOf(levels []Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
