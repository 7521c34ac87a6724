// Package docs embeds the user documentation, organized in topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Topic returns the markdown content of one documentation topic. The special
// name "*" returns every topic concatenated.
func Topic(name string) (string, error) {
	if name == "*" {
		all, err := Topics()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, t := range all {
			content, err := Topic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}
	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics lists the available topic names, sorted. The readme is the index of
// the topics, not a topic itself.
func Topics() ([]string, error) {
	var names []string
	err := fs.WalkDir(topics, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name == "readme" {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
