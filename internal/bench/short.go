package bench

import "strconv"

var orders = []string{"", "K", "M", "B", "T", "Q"}

// ShortNumber renders n truncated to its largest thousands order:
// 10000000 is "10M", 1500 is "1K". Values below 1000, negatives included,
// are printed in full.
func ShortNumber(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	i := 0
	for n >= 1000 && i < len(orders)-1 {
		n /= 1000
		i++
	}
	return strconv.Itoa(n) + orders[i]
}
