package utils

import (
	"strconv"
)

// StringToInt parses s as a base-10 int, returning 0 when it does not parse
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// StringToUint parses a numeric path parameter such as a row id. Invalid or
// negative input yields 0, which no row ever has
func StringToUint(s string) uint {
	i, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(i)
}
