package payload

import "strings"

// Separator - text between structural prefix and message
const Separator = " - "

// Extract - return message after the first separator, or the record
// itself when there is no separator
func Extract(record string) string {
	idx := strings.Index(record, Separator)
	if -1 == idx {
		return record
	}
	return record[idx+len(Separator):]
}
