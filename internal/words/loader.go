package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var defaultYAML []byte

// corpusFile is the on-disk YAML layout.
type corpusFile struct {
	Levels map[int][]string `yaml:"levels"`
}

// Default returns the embedded corpus.
func Default() (*Corpus, error) {
	c, err := ParseYAML(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("words: embedded corpus: %w", err)
	}
	return c, nil
}

// ParseYAML parses a `levels: {0: [...], 1: [...]}` document.
func ParseYAML(data []byte) (*Corpus, error) {
	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("words: failed to parse yaml: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("words: no levels declared")
	}
	return New(f.Levels)
}

// ParseText reads one word per line. Words are lower-cased, anything that is
// not plain ASCII letters is dropped and the rest is bucketed by length.
func ParseText(data []byte) (*Corpus, error) {
	var list []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: failed to read list: %w", err)
	}
	return FromWords(list)
}

// FromWords buckets plain words into levels by length:
// up to 4 letters, 5, 6-7 and 8 or more.
func FromWords(list []string) (*Corpus, error) {
	levels := make(map[int][]string)
	seen := make(map[string]bool)
	for _, w := range list {
		if !isASCIIWord(w) || seen[w] {
			continue
		}
		seen[w] = true
		level := LevelForLength(len(w))
		levels[level] = append(levels[level], w)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("words: word list is empty")
	}
	return New(levels)
}

// LevelForLength returns the bucket a word of n letters falls into.
func LevelForLength(n int) int {
	switch {
	case n <= 4:
		return 0
	case n == 5:
		return 1
	case n <= 7:
		return 2
	default:
		return 3
	}
}

func isASCIIWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// LoadFile loads a corpus from disk. .yaml and .yml files use the leveled
// layout, anything else is read as a plain word list.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: failed to read %s: %w", path, err)
	}

	var c *Corpus
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = ParseYAML(data)
	default:
		c, err = ParseText(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load returns the corpus at path, or the embedded one when path is empty.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
