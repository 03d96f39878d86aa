package watcher

// ConvertEvent exports convertEvent for testing.
var ConvertEvent = convertEvent

// WatchedDirs exposes the directories Start would watch below root.
func (w *Watcher) WatchedDirs(root string) []string {
	var dirs []string
	for dir := range w.watchRecursively(root) {
		dirs = append(dirs, dir)
	}
	return dirs
}
