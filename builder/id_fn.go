// SPDX-License-Identifier: MIT

package builder

import "strconv"

// IDFn maps a constructor index to a node id.
type IDFn func(idx int) string

// DefaultIDFn yields decimal ids: "0", "1", …
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDFn yields spreadsheet column ids: "A" … "Z", "AA", "AB", …
func ExcelColumnIDFn(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn yields prefix+decimal ids, e.g. "n0", "n1" for prefix "n".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
