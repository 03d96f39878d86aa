package domain

import "strings"

// PathVariable is the environment variable holding the executable search path.
const PathVariable = "PATH"

// SearchPath is an ordered list of directories searched for executables.
type SearchPath []string

// ParseSearchPath splits a PATH value on sep, dropping empty elements.
func ParseSearchPath(value, sep string) SearchPath {
	if value == "" {
		return SearchPath{}
	}
	parts := strings.Split(value, sep)
	dirs := make(SearchPath, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// Join renders the search path using sep.
func (p SearchPath) Join(sep string) string {
	return strings.Join(p, sep)
}

// Environment is a read-only snapshot of a process environment.
type Environment struct {
	entries         []string
	caseInsensitive bool
}

// NewEnvironment snapshots entries in KEY=VALUE form. When caseInsensitive is
// set, keys match regardless of case, as they do on Windows.
func NewEnvironment(entries []string, caseInsensitive bool) Environment {
	return Environment{
		entries:         append([]string(nil), entries...),
		caseInsensitive: caseInsensitive,
	}
}

// Get returns the value of key. The last matching entry wins.
func (e Environment) Get(key string) (string, bool) {
	for i := len(e.entries) - 1; i >= 0; i-- {
		k, v, ok := strings.Cut(e.entries[i], "=")
		if ok && e.sameKey(k, key) {
			return v, true
		}
	}
	return "", false
}

// Lookup returns the value of key, or the empty string.
func (e Environment) Lookup(key string) string {
	v, _ := e.Get(key)
	return v
}

// Entries returns a copy of the snapshot.
func (e Environment) Entries() []string {
	return append([]string(nil), e.entries...)
}

// With returns the entries with key set to value, removing every other
// spelling of the same key.
func (e Environment) With(key, value string) []string {
	out := make([]string, 0, len(e.entries)+1)
	for _, entry := range e.entries {
		k, _, ok := strings.Cut(entry, "=")
		if ok && e.sameKey(k, key) {
			continue
		}
		out = append(out, entry)
	}
	return append(out, key+"="+value)
}

// SearchPath parses the PATH variable with sep.
func (e Environment) SearchPath(sep string) SearchPath {
	return ParseSearchPath(e.Lookup(PathVariable), sep)
}

func (e Environment) sameKey(a, b string) bool {
	if e.caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}
