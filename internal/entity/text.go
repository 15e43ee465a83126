package entity

import "unicode/utf8"

// Truncate - cuts text to at most limit bytes without splitting a UTF-8
// sequence. Text that is already short enough is returned as is.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}

	if len(text) <= limit {
		return text
	}

	end := limit
	for end > 0 && !utf8.RuneStart(text[end]) {
		end--
	}

	return text[:end]
}
