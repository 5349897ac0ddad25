package util

import (
	"strings"

	"github.com/tidwall/gjson"
)

// StringList normalizes a multipart form field that may arrive as a single
// scalar, a repeated field, or a JSON-encoded array into a flat list.
// A lone value becomes a one-element list; an absent field an empty one.
func StringList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "[") {
			if parsed := gjson.Parse(trimmed); parsed.IsArray() {
				for _, el := range parsed.Array() {
					out = append(out, el.String())
				}
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

// StringListJSON applies the same scalar-or-list normalization to a JSON
// body field.
func StringListJSON(v gjson.Result) []string {
	if !v.Exists() {
		return []string{}
	}
	if v.IsArray() {
		elems := v.Array()
		out := make([]string, 0, len(elems))
		for _, el := range elems {
			out = append(out, el.String())
		}
		return out
	}
	return []string{v.String()}
}
