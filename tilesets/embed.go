// Package tilesets holds the tengo scripts that ship with the editor.
package tilesets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.tengo
var ScriptsFS embed.FS

// Load returns the script at path, falling back to the embedded copy with
// the same base name only when the file does not exist. Other read errors
// are returned as is.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return ScriptsFS.ReadFile(cleanScriptPath(path))
}

// Names lists the embedded scripts.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(ScriptsFS, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func cleanScriptPath(path string) string {
	s := filepath.Base(filepath.ToSlash(path))
	if filepath.Ext(s) == "" {
		s += ".tengo"
	}
	return strings.TrimPrefix(s, "/")
}
