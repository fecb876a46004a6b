package pdf

import (
	"strconv"
	"strings"
)

func sameStateFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// trimFloat prints a float without trailing zeros (3, 2.5, 0.02).
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
