// Package seed loads initial site content from YAML.
//
// A seed file lists records per resource kind:
//
//	services:
//	  - name: Consulting
//	    description: We help businesses grow
//	faqs:
//	  - question: Do you travel?
//	    answer: Yes, within the region.
//	reviews:
//	  - {name: Eva, description: Great, grade: 9}
//
// Every record is validated with the same rules as the web forms.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsolutions/site/internal/services/site/resource"
	"github.com/tsolutions/site/internal/services/site/storage"
)

// File is a parsed seed document keyed by plural kind name.
type File map[string][]map[string]string

// Result counts records created per kind.
type Result map[string]int

// Parse reads a seed document.
func Parse(r io.Reader) (File, error) {
	var raw map[string][]map[string]any
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	file := make(File, len(raw))
	for key, entries := range raw {
		kind, ok := resource.KindByName(key)
		if !ok {
			return nil, fmt.Errorf("unknown seed section %q", key)
		}
		for _, entry := range entries {
			values := make(map[string]string, len(entry))
			for field, value := range entry {
				if value == nil {
					values[field] = ""
					continue
				}
				values[field] = fmt.Sprint(value)
			}
			file[kind.Plural] = append(file[kind.Plural], values)
		}
	}
	return file, nil
}

// Validate checks every record and reports all problems at once.
func (f File) Validate() error {
	var lines []string
	for _, kind := range resource.Kinds() {
		for i, entry := range f[kind.Plural] {
			for _, problem := range resource.Validate(kind, kind.Input(entry)) {
				lines = append(lines, fmt.Sprintf("%s[%d]: %s", kind.Plural, i, problem.Message(nil)))
			}
		}
	}
	if len(lines) > 0 {
		return fmt.Errorf("invalid seed:\n%s", strings.Join(lines, "\n"))
	}
	return nil
}

// Apply validates f and creates its records through stores, keyed by
// plural kind name. Nothing is written when validation fails.
func Apply(ctx context.Context, f File, stores map[string]storage.Store) (Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	result := Result{}
	for _, kind := range resource.Kinds() {
		entries := f[kind.Plural]
		if len(entries) == 0 {
			continue
		}
		store, ok := stores[kind.Plural]
		if !ok {
			return result, fmt.Errorf("no store for %s", kind.Plural)
		}
		for i, entry := range entries {
			if _, err := store.Create(ctx, kind.Canonical(kind.Input(entry))); err != nil {
				return result, fmt.Errorf("create %s[%d]: %w", kind.Plural, i, err)
			}
			result[kind.Plural]++
		}
	}
	return result, nil
}
