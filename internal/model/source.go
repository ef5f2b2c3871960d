// Package model defines the data structures shared by the selection engine.
package model

import "sort"

// Path represents a repository-relative file system path.
type Path string

// ChangedFiles is the sorted, de-duplicated set of files touched by a change.
type ChangedFiles []Path

// NewChangedFiles builds a ChangedFiles set, dropping blanks and duplicates.
func NewChangedFiles(paths ...string) ChangedFiles {
	seen := make(map[string]struct{}, len(paths))
	files := make(ChangedFiles, 0, len(paths))

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}
		files = append(files, Path(path))
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files
}

// Strings returns the set as plain strings.
func (c ChangedFiles) Strings() []string {
	out := make([]string, 0, len(c))
	for _, path := range c {
		out = append(out, string(path))
	}

	return out
}
