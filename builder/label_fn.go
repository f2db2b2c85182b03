package builder

import "strconv"

// LabelFn maps a node index to its label.
type LabelFn func(i int) string

// DecimalLabels renders indices as "0", "1", "2", ….
func DecimalLabels(i int) string { return strconv.Itoa(i) }

// PrefixLabels returns a LabelFn rendering indices as prefix+"0", prefix+"1", ….
func PrefixLabels(prefix string) LabelFn {
	return func(i int) string { return prefix + strconv.Itoa(i) }
}

// ExcelLabels renders indices as spreadsheet columns: "A" … "Z", "AA", ….
func ExcelLabels(i int) string {
	var buf [16]byte
	k := len(buf)
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		k--
		buf[k] = byte('A' + (n-1)%26)
	}

	return string(buf[k:])
}
