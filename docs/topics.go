// Package docs holds the built-in manual of the mas tool: a handful of
// markdown topics compiled into the binary, with readme.md as their index.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var manual embed.FS

// Star is the topic name that expands to the whole manual.
const Star = "*"

// Topics lists the available topic names, sorted. The readme is the index of
// the manual, not a topic, so it is excluded.
func Topics() []string {
	pages, err := fs.Glob(manual, "*.md")
	if err != nil {
		// the pattern is constant and valid, Glob cannot fail on it
		panic(err)
	}
	var names []string
	for _, page := range pages {
		name := strings.TrimSuffix(page, ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Topic returns the markdown of one topic. [Star] returns the whole manual.
func Topic(name string) (string, error) {
	if name == Star {
		return Manual(Topics()...)
	}
	content, err := manual.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no topic %q, run 'mas topic' for the list: %w", name, err)
	}
	return string(content), nil
}

// Manual concatenates the named topics into one document, expanding [Star].
func Manual(names ...string) (string, error) {
	var expanded []string
	for _, name := range names {
		if name == Star {
			expanded = append(expanded, Topics()...)
		} else {
			expanded = append(expanded, name)
		}
	}

	var b strings.Builder
	for _, name := range expanded {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
