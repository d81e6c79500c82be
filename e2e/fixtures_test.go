//go:build e2e && unix

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type personFixture struct {
	Name string `json:"name"`
	Born int    `json:"born"`
	Died int    `json:"died"`
}

var defaultPeople = []personFixture{
	{Name: "Alice", Born: 1990, Died: 2050},
	{Name: "Bob", Born: 1980, Died: 2040},
	{Name: "Carol", Born: 1970, Died: 2030},
}

// Screen cells of the first suggestion row. The UI is padded by one line and
// two columns; the header, a blank line, the three-line input box and the
// dropdown's top border come before it.
const (
	firstRowX = 3
	firstRowY = 7
)

// CreateTestWorkspace creates a temporary directory used as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WritePeople writes a people file into the workspace and returns its path
func (tf *TUITestFramework) WritePeople(people []personFixture) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	data, err := json.Marshal(people)
	if err != nil {
		return "", err
	}
	path := filepath.Join(tf.workspace, "people.json")
	return path, os.WriteFile(path, data, 0644)
}

// WriteConfig writes the given TOML as the user's config file
func (tf *TUITestFramework) WriteConfig(body string) error {
	dir := filepath.Join(tf.workspace, ".config", "peoplepicker")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0644)
}

// StartWithPeople starts the picker over the given people
func (tf *TUITestFramework) StartWithPeople(people []personFixture, args ...string) error {
	path, err := tf.WritePeople(people)
	if err != nil {
		return err
	}
	return tf.StartApp(append([]string{"--people", path}, args...)...)
}
