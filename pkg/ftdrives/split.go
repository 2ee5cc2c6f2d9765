package ftdrives

import "unicode/utf16"

// splitNull splits a NUL-separated UTF-16 multi-string ("C:\\\x00D:\\\x00\x00").
func splitNull(buf []uint16) (items []string) {
	start := 0
	for i, c := range buf {
		if c != 0 {
			continue
		}
		if i > start {
			items = append(items, string(utf16.Decode(buf[start:i])))
		}
		start = i + 1
	}
	if start < len(buf) {
		items = append(items, string(utf16.Decode(buf[start:])))
	}
	return items
}
