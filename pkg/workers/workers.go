// Package workers parses the shared --workers/-j CLI convention
// ("full" | "half" | integer), grounded on cmd/root.go's parseWorkers in
// the example pack.
package workers

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Parse converts a --workers flag value into a worker count.
func Parse(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
