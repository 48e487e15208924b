package sanitizer

// TrimValues returns a new map with every value trimmed.
// A nil input yields an empty, non-nil map.
func TrimValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = Trim(v)
	}
	return out
}

// FirstValues flattens multi-value input (url.Values, multipart values) by
// keeping the first value of each key. Keys with no values map to "".
func FirstValues(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		} else {
			out[k] = ""
		}
	}
	return out
}
