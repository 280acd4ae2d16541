// SPDX-License-Identifier: MPL-2.0

package audit

import "regexp"

// cellCoordinate matches spreadsheet cell coordinates like "A1" or "AZ200".
// The host names cells with uppercase column letters.
var cellCoordinate = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// IsCellCoordinate reports whether s is shaped like a cell coordinate.
func IsCellCoordinate(s string) bool {
	return cellCoordinate.MatchString(s)
}

// NormalizeAliasMap canonicalizes a raw alias enumeration to alias→cell.
// Host versions disagree on the direction of the table: some enumerate
// alias→cell, others cell→alias. When a majority of keys are shaped like
// cell coordinates the map is taken to be cell→alias and inverted;
// otherwise it is returned as-is. The heuristic misreads aliases that
// themselves look like cell coordinates, which the host forbids anyway.
func NormalizeAliasMap(raw map[string]string) map[string]string {
	normalized := make(map[string]string, len(raw))
	if len(raw) == 0 {
		return normalized
	}

	cellKeys := 0
	for key := range raw {
		if IsCellCoordinate(key) {
			cellKeys++
		}
	}

	invert := cellKeys*2 > len(raw)
	for key, value := range raw {
		if invert {
			normalized[value] = key
		} else {
			normalized[key] = value
		}
	}
	return normalized
}
