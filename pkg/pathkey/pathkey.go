// Package pathkey normalises dataset-relative file paths. Instrument clients run on
// Windows, so File rows hold backslash separated paths in whatever case the client
// used; on-disk paths are slash separated. A Key is lower case and backslash
// separated so both sides compare equal.
package pathkey

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Key string

// FromRel normalises a dataset-relative path as stored on File rows.
func FromRel(rel string) Key {
	rel = strings.ReplaceAll(rel, "/", `\`)
	rel = strings.TrimLeft(rel, `\`)
	return Key(strings.ToLower(rel))
}

// FromDisk converts an on-disk path under root into a Key.
func FromDisk(root, full string) (Key, error) {
	rel, err := filepath.Rel(root, full)
	if err != nil {
		return "", err
	}
	if rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("pathkey: %s is not under %s", full, root)
	}
	return FromRel(filepath.ToSlash(rel)), nil
}

// String returns the stored form used for new File rows.
func (k Key) String() string {
	return string(k)
}

// ToSlash converts a Windows style relative path to a slash separated one.
func ToSlash(rel string) string {
	return strings.Trim(strings.ReplaceAll(rel, `\`, "/"), "/")
}

// Hidden reports whether any element of a slash separated relative path starts with a dot.
func Hidden(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// Set is a case-insensitive set of expected keys with their payloads.
type Set[V any] map[Key]V

// Take removes and returns the entry for k.
func (s Set[V]) Take(k Key) (V, bool) {
	v, ok := s[k]
	if ok {
		delete(s, k)
	}
	return v, ok
}

// Keys returns the remaining keys.
func (s Set[V]) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, string(k))
	}
	return keys
}
