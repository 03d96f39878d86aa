package logger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// messager is implemented by zerr errors: the message without the wrapped chain.
type messager interface {
	Message() string
}

// metadataCarrier is implemented by errors annotated with key/value metadata.
type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain while links can report their own message.
// The first link that cannot ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pendingMetadata map[string]any
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pendingMetadata})
			break
		}
		entry := ErrorEntry{Message: m.Message()}
		if mc, ok := current.(metadataCarrier); ok {
			entry.Metadata = mc.Metadata()
		}
		current = errors.Unwrap(current)
		// Links added only to carry metadata fold into the next one.
		if entry.Message == "" && current != nil {
			pendingMetadata = mergeMetadata(pendingMetadata, entry.Metadata)
			continue
		}
		entry.Metadata = mergeMetadata(pendingMetadata, entry.Metadata)
		pendingMetadata = nil
		entries = append(entries, entry)
	}
	return entries
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if len(a) == 0 {
		return b
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// formatErrorEntries renders the main error, its metadata, then the causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string
	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, l := range msgLines[1:] {
				lines = append(lines, "       "+l)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, l := range msgLines[1:] {
			lines = append(lines, "      "+l)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}
	return strings.Join(lines, "\n")
}

func formatMetadata(md map[string]any, indent string) []string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, md[k]))
	}
	return lines
}
