package pdf

import (
	"fmt"
	"strings"
)

// FormatAmount renders a money value with two decimals and Indian digit
// grouping: the last three digits form one group, everything above groups in
// twos (12,34,56,789.00).
func FormatAmount(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	whole, frac := parts[0], parts[1]

	if len(whole) <= 3 {
		return sign + whole + "." + frac
	}

	head := whole[:len(whole)-3]
	tail := whole[len(whole)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return sign + strings.Join(groups, ",") + "," + tail + "." + frac
}
