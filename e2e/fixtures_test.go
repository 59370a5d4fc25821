//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const sampleDirectory = `[
  // comments are allowed
  {"name": "Globex", "website": "https://globex.example", "phone": "+1 555 0199", "hours": "Mon-Fri 9-17"},
  {"name": "Acme Bank", "website": "https://acmebank.example"},
  {"name": "Acme", "phone": "+1 555 0100", "social": {"twitter": "https://twitter.com/acme"}},
]`

// CreateTestWorkspace creates a temporary directory that also serves as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile writes a file into the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// CreateDirectoryFile writes the sample organization list
func (tf *TUITestFramework) CreateDirectoryFile() (string, error) {
	return tf.WriteFile("companies.json", sampleDirectory)
}
