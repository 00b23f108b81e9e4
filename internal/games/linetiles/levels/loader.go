// Package levels provides level loading for LineTiles.
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

	"github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Specs    [][]core.TileSpec // bottom row first
	Scramble []core.Shift
	Metadata map[string]string
	FilePath string
}

// Solved builds the board as designed, before scrambling.
func (l *Level) Solved() (*core.Board, error) {
	return core.NewBoardFromSpecs(l.Specs)
}

// NewBoard builds the board the player starts from: the designed layout
// with the scramble shifts applied in order.
func (l *Level) NewBoard() (*core.Board, error) {
	b, err := l.Solved()
	if err != nil {
		return nil, err
	}
	for _, s := range l.Scramble {
		if err := b.Apply(s); err != nil {
			return nil, fmt.Errorf("level %s: scramble %s: %w", l.ID, s, err)
		}
	}
	return b, nil
}

// Loader handles loading levels from a file tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin creates a loader for the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin directory missing: %v", err))
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
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

// LoadFile loads a single level file, relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(name)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", name, err)
	}

	return fromParsed(parsed, path.Join(l.Root, name)), nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadPath loads one level file from anywhere on disk.
func LoadPath(file string) (Level, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", file, err)
	}
	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(file)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", file, err)
	}
	return fromParsed(parsed, file), nil
}

func fromParsed(parsed formats.Level, file string) Level {
	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Specs:    parsed.Specs,
		Scramble: parsed.Scramble,
		Metadata: parsed.Metadata,
		FilePath: file,
	}
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
