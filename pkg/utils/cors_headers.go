package utils

import (
	"net/http"
	"sort"
	"strings"
)

// corsHeaderSet lists the response headers treated as CORS headers. Keys are lowercase.
var corsHeaderSet = map[string]struct{}{
	"access-control-allow-origin":      {},
	"access-control-allow-methods":     {},
	"access-control-allow-headers":     {},
	"access-control-max-age":           {},
	"access-control-expose-headers":    {},
	"access-control-allow-credentials": {},
}

// HeaderEntry is one response header as displayed: lowercase name, joined value.
type HeaderEntry struct {
	Name  string
	Value string
}

func (e HeaderEntry) String() string {
	return e.Name + ": " + e.Value
}

// CORSHeaderNames returns the recognized CORS header names in sorted order.
func CORSHeaderNames() []string {
	names := make([]string, 0, len(corsHeaderSet))
	for name := range corsHeaderSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsCORSHeader reports whether name is one of the recognized CORS headers.
// The comparison ignores case.
func IsCORSHeader(name string) bool {
	_, ok := corsHeaderSet[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// CollectHeaders flattens an http.Header into entries with lowercase names,
// sorted by name. Repeated values are joined with ", ".
func CollectHeaders(h http.Header) []HeaderEntry {
	entries := make([]HeaderEntry, 0, len(h))
	for name, values := range h {
		entries = append(entries, HeaderEntry{
			Name:  strings.ToLower(name),
			Value: strings.Join(values, ", "),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// PartitionHeaders splits entries into CORS headers and everything else.
// Every entry lands in exactly one of the two slices and relative order is kept.
func PartitionHeaders(entries []HeaderEntry) (cors, other []HeaderEntry) {
	for _, e := range entries {
		if IsCORSHeader(e.Name) {
			cors = append(cors, e)
		} else {
			other = append(other, e)
		}
	}
	return cors, other
}

// HeaderValue returns the value of the first entry named name, ignoring case.
func HeaderValue(entries []HeaderEntry, name string) string {
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e.Value
		}
	}
	return ""
}
