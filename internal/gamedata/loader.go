// Package gamedata provides embedded monster and item definitions and the
// depth-scaled spawn tables built from them.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
)

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("reading embedded file %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parsing JSON from %s: %w", filename, err)
	}
	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error. Use this
// for data the game cannot run without.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
