// Package natver compares strings that contain embedded version
// numbers, the way GNU "sort -V" orders file names. Digit runs are
// compared by numeric value, so "basis3.2" sorts before "basis3.10".
package natver

// Compare returns -1, 0 or 1 depending on whether a sorts before,
// equal to or after b in natural version order.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		// Non-digit run: byte-wise, with '~' sorting before anything,
		// letters before other symbols.
		for (i < len(a) && !isDigit(a[i])) || (j < len(b) && !isDigit(b[j])) {
			var ca, cb byte
			if i < len(a) {
				ca = a[i]
			}
			if j < len(b) {
				cb = b[j]
			}
			if d := rank(ca) - rank(cb); d != 0 {
				return sign(d)
			}
			i++
			j++
		}

		// Digit run: strip leading zeros, then the longer run is the
		// larger number; equal-length runs decide by first difference.
		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}
		diff := 0
		for i < len(a) && j < len(b) && isDigit(a[i]) && isDigit(b[j]) {
			if diff == 0 {
				diff = int(a[i]) - int(b[j])
			}
			i++
			j++
		}
		if i < len(a) && isDigit(a[i]) {
			return 1
		}
		if j < len(b) && isDigit(b[j]) {
			return -1
		}
		if diff != 0 {
			return sign(diff)
		}
	}
	return 0
}

// Latest returns the element of list that sorts highest, or "" when
// list is empty.
func Latest(list []string) string {
	if len(list) == 0 {
		return ""
	}
	latest := list[0]
	for _, s := range list[1:] {
		if Compare(s, latest) > 0 {
			latest = s
		}
	}
	return latest
}

// rank maps a byte to its sorting priority: '~' before end-of-string,
// end-of-string and digits before letters, letters before symbols.
func rank(c byte) int {
	switch {
	case c == '~':
		return -1
	case c == 0, isDigit(c):
		return 0
	case isAlpha(c):
		return int(c)
	default:
		return int(c) + 256
	}
}

func sign(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
