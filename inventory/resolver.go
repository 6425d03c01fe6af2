package inventory

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ResolveKey extracts the value stored at key inside a nested structure of
// mappings and sequences. A key is a series of mapping keys and sequence
// indexes separated by '/'. The root selectors "/" and "" return data itself.
//
// Resolution is lenient: a missing key, an out-of-range index, a numeric
// segment applied to a mapping, or an attempt to descend into a scalar all
// yield nil. Misses are logged at debug level and are never an error; partial
// or heterogeneous specs must not abort inventory generation.
func ResolveKey(key string, data interface{}) interface{} {
	if key == "/" {
		return data
	}

	segments := strings.Split(key, "/")
	// a key starting with '/' splits into a leading empty segment
	if segments[0] == "" {
		segments = segments[1:]
	}

	current := data
	for _, segment := range segments {
		if index, err := strconv.Atoi(segment); err == nil {
			// numeric segments index sequences only, no fallback to
			// mapping lookup
			sequence, ok := current.([]interface{})
			if !ok || index < 0 || index >= len(sequence) {
				log.Debug("failed to extract path", "key", key)
				return nil
			}
			current = sequence[index]
			continue
		}
		mapping, ok := current.(map[string]interface{})
		if !ok {
			log.Debug("failed to extract path", "key", key)
			return nil
		}
		value, ok := mapping[segment]
		if !ok {
			log.Debug("failed to extract path", "key", key)
			return nil
		}
		current = value
	}

	return current
}
