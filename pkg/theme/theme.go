// Package theme loads themes: flat JSON objects mapping literal search
// strings to literal replacement strings.
//
// Pairs keep the order they appear in the document. That order is the order
// the substitution engine applies them in, which matters because a value
// produced by one pair can be matched by a later pair.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/configtool/pkg/errors"
)

// Pair is a single key → value substitution.
type Pair struct {
	Key   string
	Value string
}

// Theme is an ordered set of substitutions with unique keys.
type Theme struct {
	pairs []Pair
	index map[string]int
}

// New builds a theme from pairs. A repeated key keeps its first position and
// takes the last value.
func New(pairs ...Pair) *Theme {
	t := &Theme{index: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		t.set(p.Key, p.Value)
	}
	return t
}

func (t *Theme) set(key, value string) {
	if i, ok := t.index[key]; ok {
		t.pairs[i].Value = value
		return
	}
	t.index[key] = len(t.pairs)
	t.pairs = append(t.pairs, Pair{Key: key, Value: value})
}

// Pairs returns the substitutions in application order.
func (t *Theme) Pairs() []Pair {
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// Len returns the number of substitutions.
func (t *Theme) Len() int {
	return len(t.pairs)
}

// Get returns the value for key.
func (t *Theme) Get(key string) (string, bool) {
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.pairs[i].Value, true
}

// Replace applies every pair to s in order. Each pair replaces all
// non-overlapping occurrences, scanning left to right, in the output of the
// previous pair. It returns the result and the number of replacements made.
//
// An empty key matches at every rune boundary, as strings.Replace does.
func (t *Theme) Replace(s string) (string, int) {
	total := 0
	for _, p := range t.pairs {
		n := strings.Count(s, p.Key)
		if n == 0 {
			continue
		}
		s = strings.ReplaceAll(s, p.Key, p.Value)
		total += n
	}
	return s, total
}

// String renders the theme for debug output.
func (t *Theme) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range t.pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %q", p.Key, p.Value)
	}
	b.WriteByte('}')
	return b.String()
}

// Parse decodes a flat JSON object whose values are all strings.
func Parse(data []byte) (*Theme, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeParse, "failed to parse theme")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New(errors.ErrThemeParse, "failed to parse theme: expected a JSON object")
	}

	t := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrThemeParse, "failed to parse theme")
		}
		key := keyTok.(string)

		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, errors.ErrThemeParse, "failed to parse theme value for key %q", key)
		}
		value, ok := raw.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrThemeParse, "theme value for key %q must be a string, got %T", key, raw)
		}
		t.set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeParse, "failed to parse theme")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrThemeParse, "failed to parse theme: unexpected data after object")
	}
	return t, nil
}
