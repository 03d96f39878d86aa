// Package platform adapts path and executable conventions to each operating
// system family.
package platform

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// GOOS values with platform-specific behaviour.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Detect returns the platform the process is running on.
func Detect() ports.Platform {
	return For(runtime.GOOS)
}

// For returns the platform implementation modelling goos.
func For(goos string) ports.Platform {
	if goos == Windows {
		return &Win{}
	}
	return &Posix{goos: goos}
}

// URL returns the file URL naming path.
func URL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}

// FromURL returns the path named by a file URL. Drive letters lose the
// leading slash the URL form requires.
func FromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid file URL"), "url", raw)
	}
	if u.Scheme != "file" {
		return "", zerr.With(zerr.New("not a file URL"), "url", raw)
	}
	p := u.Path
	if u.Host != "" && u.Host != "localhost" {
		p = "//" + u.Host + p
	}
	return filepath.FromSlash(trimDriveSlash(p)), nil
}

// unwrapURL returns the path named by a file URL, or path itself when it is
// not one.
func unwrapURL(path string) (string, error) {
	if !strings.HasPrefix(path, "file:") {
		return path, nil
	}
	p, err := FromURL(path)
	if err != nil {
		return "", pathError(err, path)
	}
	return p, nil
}

// trimDriveSlash turns "/C:/dir" into "C:/dir".
func trimDriveSlash(p string) string {
	if len(p) >= 3 && p[0] == '/' && isDriveLetter(p[1]) && p[2] == ':' {
		return p[1:]
	}
	return p
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func pathError(err error, path string) error {
	return zerr.With(zerr.Wrap(domain.ErrPathResolution, err.Error()), "path", path)
}
