//go:build !windows

package platform

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// fullPathName lexically normalizes an absolute Windows path. Relative paths
// cannot be resolved without a Windows working directory.
func fullPathName(p string) (string, error) {
	s := strings.ReplaceAll(p, `\`, "/")
	switch {
	case strings.HasPrefix(s, "//"):
		return `\\` + strings.ReplaceAll(strings.TrimPrefix(path.Clean("/"+strings.TrimLeft(s, "/")), "/"), "/", `\`), nil
	case len(s) >= 2 && isDriveLetter(s[0]) && s[1] == ':':
		rest := path.Clean("/" + s[2:])
		return strings.ToUpper(s[:1]) + ":" + strings.ReplaceAll(rest, "/", `\`), nil
	default:
		return "", zerr.New("relative Windows path needs a Windows host")
	}
}
