package dataset

import "bytes"

var nonFiniteLiterals = [][]byte{
	[]byte("-Infinity"),
	[]byte("Infinity"),
	[]byte("NaN"),
}

// replaceNonFiniteLiterals rewrites the bare NaN, Infinity and -Infinity
// tokens that Python's json module emits into null, leaving string contents
// untouched. Documents without such tokens are returned unchanged.
func replaceNonFiniteLiterals(data []byte) []byte {
	if !bytes.Contains(data, []byte("NaN")) && !bytes.Contains(data, []byte("Infinity")) {
		return data
	}

	out := make([]byte, 0, len(data))
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}

		replaced := false
		for _, lit := range nonFiniteLiterals {
			if bytes.HasPrefix(data[i:], lit) {
				out = append(out, "null"...)
				i += len(lit) - 1
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, c)
		}
	}
	return out
}
