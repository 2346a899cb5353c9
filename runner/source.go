package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Source supplies the text of one feature file.
type Source interface {
	Name() string
	Read() ([]byte, error)
}

type fileSource string

// File returns a Source reading path when the run reaches it.
func File(path string) Source { return fileSource(path) }

func (f fileSource) Name() string          { return string(f) }
func (f fileSource) Read() ([]byte, error) { return os.ReadFile(string(f)) }

type textSource struct {
	name string
	text string
}

// Text returns an in-memory Source.
func Text(name, text string) Source { return textSource{name: name, text: text} }

func (t textSource) Name() string          { return t.name }
func (t textSource) Read() ([]byte, error) { return []byte(t.text), nil }

// Discover returns a Source for every *.feature file directly in dir, sorted
// by name.
func Discover(dir string) ([]Source, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.feature"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(matches)

	sources := make([]Source, 0, len(matches))
	for _, path := range matches {
		sources = append(sources, File(path))
	}
	return sources, nil
}
