//go:build windows

package platform

import "golang.org/x/sys/windows"

// fullPathName asks GetFullPathNameW for the long-form absolute path,
// sizing the buffer with a first call.
func fullPathName(path string) (string, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", err
	}
	n, err := windows.GetFullPathName(p, 0, nil, nil)
	if err != nil {
		return "", err
	}
	buf := make([]uint16, n)
	n, err = windows.GetFullPathName(p, uint32(len(buf)), &buf[0], nil)
	if err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:n]), nil
}
