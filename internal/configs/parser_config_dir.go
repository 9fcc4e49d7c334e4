// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDirFiles returns the paths of the configuration files in the given
// directory, in lexicographic order.
//
// Only direct children of the directory are considered; Terraform modules
// do not span subdirectories. An unreadable directory is an error, which
// callers treat as fatal since nothing at all can be processed.
func ConfigDirFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %s", dir, err)
	}

	// os.ReadDir sorts by filename, which gives us the deterministic
	// ordering that the output contract depends on.
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if IsIgnoredFile(name) {
			continue
		}
		if fileExt(name) == "" {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

// fileExt returns the Terraform configuration extension of the given
// path, or a blank string if it is not a recognized extension.
func fileExt(path string) string {
	if strings.HasSuffix(path, ".tf.json") {
		return ".tf.json"
	} else if strings.HasSuffix(path, ".tf") {
		return ".tf"
	} else {
		return ""
	}
}

// IsIgnoredFile returns true if the given filename (which must not have a
// directory path ahead of it) should be ignored as e.g. an editor swap
// file.
func IsIgnoredFile(name string) bool {
	return strings.HasPrefix(name, ".") || // Unix-like hidden files
		strings.HasSuffix(name, "~") || // vim
		strings.HasPrefix(name, "#") && strings.HasSuffix(name, "#") // emacs
}
