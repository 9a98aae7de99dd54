// Package io loads user-provided files, e.g. keyword lists for bulk
// research.
package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// KeywordsYAMLRepository loads keyword lists from YAML files.
type KeywordsYAMLRepository struct {
	fs fs.FS
}

// NewKeywordsYAMLRepository creates a new YAML keyword list repository.
func NewKeywordsYAMLRepository(filesystem fs.FS) *KeywordsYAMLRepository {
	return &KeywordsYAMLRepository{fs: filesystem}
}

// keywordsFile represents the YAML structure of a keyword list file.
// Either a document with a "keywords" key or a bare list of strings.
type keywordsFile struct {
	Keywords []string `yaml:"keywords"`
}

// GetKeywords loads a keyword list from a YAML file.
func (r *KeywordsYAMLRepository) GetKeywords(ctx context.Context, path string) ([]string, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var file keywordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		// Bare list form.
		var bare []string
		if bareErr := yaml.Unmarshal(data, &bare); bareErr != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		file.Keywords = bare
	}

	if len(file.Keywords) == 0 {
		return nil, fmt.Errorf("keywords file %s has no keywords", path)
	}

	return file.Keywords, nil
}
