package store

import (
	"fmt"
	"strconv"
	"strings"
)

// NextSequentialID returns prefix-NNN where NNN is one above the highest numeric
// suffix among the current ids carrying that prefix, zero-padded to three digits.
func NextSequentialID[T any](items []T, idOf func(T) string, prefix string) string {
	highest := 0
	head := prefix + "-"

	for _, item := range items {
		suffix, ok := strings.CutPrefix(idOf(item), head)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}

		highest = max(highest, n)
	}

	return fmt.Sprintf("%s%03d", head, highest+1)
}
