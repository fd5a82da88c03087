// Package words provides the leveled word corpus the play scene draws from.
package words

import (
	"fmt"
	"sort"
)

// Rand is the part of *math/rand.Rand the corpus needs.
type Rand interface {
	Intn(n int) int
}

// Corpus is an immutable mapping from difficulty level to words.
// It is safe for concurrent use.
type Corpus struct {
	levels []int // sorted ascending
	words  map[int][]string
}

// New builds a corpus. Every declared level must contain at least one word.
func New(levels map[int][]string) (*Corpus, error) {
	c := &Corpus{words: make(map[int][]string, len(levels))}
	for level, list := range levels {
		if level < 0 {
			return nil, fmt.Errorf("words: negative level %d", level)
		}
		var kept []string
		for _, w := range list {
			if w != "" {
				kept = append(kept, w)
			}
		}
		if len(kept) == 0 {
			return nil, fmt.Errorf("words: level %d has no words", level)
		}
		c.words[level] = kept
		c.levels = append(c.levels, level)
	}
	sort.Ints(c.levels)
	return c, nil
}

// Levels returns the declared levels in ascending order.
func (c *Corpus) Levels() []int {
	return append([]int(nil), c.levels...)
}

// Words returns a copy of the words at a level.
func (c *Corpus) Words(level int) []string {
	return append([]string(nil), c.words[level]...)
}

// Len returns the total number of words.
func (c *Corpus) Len() int {
	n := 0
	for _, list := range c.words {
		n += len(list)
	}
	return n
}

// resolve maps a requested level onto a declared one: the highest declared
// level not above it, or the lowest level when it is below all of them.
func (c *Corpus) resolve(level int) (int, bool) {
	if len(c.levels) == 0 {
		return 0, false
	}
	resolved := c.levels[0]
	for _, l := range c.levels {
		if l > level {
			break
		}
		resolved = l
	}
	return resolved, true
}

// PickRandom returns a uniformly chosen word at the given level.
// Levels beyond the highest available clamp to the highest. An empty corpus
// returns "".
func (c *Corpus) PickRandom(rng Rand, level int) string {
	if c == nil {
		return ""
	}
	resolved, ok := c.resolve(level)
	if !ok {
		return ""
	}
	list := c.words[resolved]
	return list[rng.Intn(len(list))]
}
