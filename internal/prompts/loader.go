// Package prompts holds the model prompt templates embedded with the binary.
package prompts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed *.json
var promptFiles embed.FS

// catalog maps "file/key" to a parsed template. It is built once on first use.
//
//nolint:gochecknoglobals // lazily built read-only table
var catalog = sync.OnceValues(loadCatalog)

func loadCatalog() (map[string]*template.Template, error) {
	files, err := promptFiles.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list prompt files: %w", err)
	}

	out := make(map[string]*template.Template)
	for _, f := range files {
		data, err := promptFiles.ReadFile(f.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt file %s: %w", f.Name(), err)
		}
		var raw map[string]string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse prompt file %s: %w", f.Name(), err)
		}
		for key, text := range raw {
			name := path.Join(f.Name(), key)
			tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
			if err != nil {
				return nil, fmt.Errorf("invalid prompt %s: %w", name, err)
			}
			out[name] = tmpl
		}
	}
	return out, nil
}

func lookup(filename, key string) (*template.Template, error) {
	all, err := catalog()
	if err != nil {
		return nil, err
	}
	tmpl, ok := all[path.Join(filename, key)]
	if !ok {
		return nil, fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return tmpl, nil
}

// Get returns the raw template text of a prompt, e.g. Get("grammar.json", "proofread").
func Get(filename, key string) (string, error) {
	tmpl, err := lookup(filename, key)
	if err != nil {
		return "", err
	}
	return tmpl.Root.String(), nil
}

// Render fills a prompt's {{.Name}} placeholders from data. A placeholder
// with no value is an error.
func Render(filename, key string, data map[string]string) (string, error) {
	tmpl, err := lookup(filename, key)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s/%s: %w", filename, key, err)
	}
	return buf.String(), nil
}

// Keys lists the prompts in filename in sorted order.
func Keys(filename string) ([]string, error) {
	all, err := catalog()
	if err != nil {
		return nil, err
	}
	prefix := filename + "/"
	var keys []string
	for name := range all {
		if key, ok := strings.CutPrefix(name, prefix); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
