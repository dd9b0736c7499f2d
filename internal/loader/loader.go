// Package loader reads candidate collections for the textdist CLI.
package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// Lines reads newline-delimited candidates from path, or from stdin when
// path is "-". Blank lines are skipped; candidate text is otherwise
// untouched, so casing and interior whitespace survive.
func Lines(path string) ([]string, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}

	var candidates []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", displayName(path), err)
	}
	return candidates, nil
}

// JSON extracts candidates from a JSON document at path (or stdin when path
// is "-"). selector is a gjson path choosing the candidate values: "@this"
// for a top-level array of strings, "#.name" for the name field of every
// element, "items.#.name" for the same under an items key. A selector
// matching a single value yields one candidate.
func JSON(path, selector string) ([]string, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("loader: %s is not valid JSON", displayName(path))
	}

	result := gjson.GetBytes(data, selector)
	if !result.Exists() {
		return nil, fmt.Errorf("loader: selector %q matches nothing in %s", selector, displayName(path))
	}

	var candidates []string
	if result.IsArray() {
		for _, v := range result.Array() {
			candidates = append(candidates, v.String())
		}
	} else {
		candidates = append(candidates, result.String())
	}
	return candidates, nil
}

func read(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("loader: reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return data, nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
