package cache

import (
	"fmt"
	"strings"
)

// Separator joins key segments.
const Separator = ":"

// Key builds a namespaced cache key from segments, e.g.
// Key("campaign", 123, "stats") == "campaign:123:stats".
func Key(segments ...any) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, Separator)
}

// Prefix builds a key prefix that matches every key nested under segments,
// e.g. Prefix("campaign", 123) == "campaign:123:". The trailing separator keeps
// "campaign:1:" from matching "campaign:12:stats".
func Prefix(segments ...any) string {
	if len(segments) == 0 {
		return ""
	}
	return Key(segments...) + Separator
}
