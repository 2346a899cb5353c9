package parser

import (
	"path/filepath"
	"strings"
)

// Summary is the listing view of a parsed feature.
type Summary struct {
	File      string // base name of the feature file
	Name      string
	Scenarios int
	Steps     int
}

// Summarize reduces a Feature to its listing counts. A feature without a
// title is named after its file.
func Summarize(f *Feature) Summary {
	s := Summary{
		File:      filepath.Base(f.File),
		Name:      f.Title(),
		Scenarios: len(f.Scenarios),
	}
	if s.Name == "" {
		s.Name = filenameWithoutExt(f.File)
	}
	for _, sc := range f.Scenarios {
		s.Steps += len(sc.Steps)
	}
	return s
}

func filenameWithoutExt(filename string) string {
	name := filename
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}
