package utils

import "strings"

// IndexOfString returns the position of targetString in sliceOfStrings, or -1 if it is not present.
// The comparison ignores case.
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if strings.EqualFold(sliceOfStrings[i], targetString) {
			return i
		}
	}
	return -1
}

// Separator returns the line printed between the sections of the explorer output
func Separator() string {
	return strings.Repeat("-", 40)
}
