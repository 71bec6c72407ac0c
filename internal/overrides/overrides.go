package overrides

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingEquals indicates a pair with no '=' between key and word.
	ErrMissingEquals = errors.New("invalid override (missing '=')")
	// ErrExtraEquals indicates a pair with more than one '='.
	ErrExtraEquals = errors.New("invalid override (extra '=')")
	// ErrKeyNotSingleChar indicates a key that is empty or longer than one character.
	ErrKeyNotSingleChar = errors.New("key in override is not a single character")
	// ErrEmptyValue indicates a key with no code word.
	ErrEmptyValue = errors.New("empty value in override")
)

// Parse reads a comma separated list of character=word pairs, e.g.
// "a=apple,b=banana". Later pairs win over earlier ones for the same key.
func Parse(s string) (map[rune]string, error) {
	out := make(map[rune]string)
	if s == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		parts := strings.Split(pair, "=")
		switch {
		case len(parts) < 2:
			return nil, fmt.Errorf("%w: %s", ErrMissingEquals, pair)
		case len(parts) > 2:
			return nil, fmt.Errorf("%w: %s", ErrExtraEquals, pair)
		}
		key, err := parseKey(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, pair)
		}
		if parts[1] == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyValue, pair)
		}
		out[key] = parts[1]
	}
	return out, nil
}

func parseKey(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrKeyNotSingleChar
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

type file struct {
	Overrides map[string]string `yaml:"overrides"`
}

// Load reads overrides from a YAML file of the form
//
//	overrides:
//	  a: apple
//	  "!": bang
func Load(path string) (map[rune]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	out := make(map[rune]string, len(f.Overrides))
	for k, v := range f.Overrides {
		key, err := parseKey(k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %q", path, err, k)
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrEmptyValue, k)
		}
		out[key] = v
	}
	return out, nil
}

// Merge copies src into dst, replacing existing keys, and returns dst.
func Merge(dst, src map[rune]string) map[rune]string {
	if dst == nil {
		dst = make(map[rune]string, len(src))
	}
	maps.Copy(dst, src)
	return dst
}
