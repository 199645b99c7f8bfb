package notionid

import "strings"

// Normalize converts a loosely formatted Notion database identifier into the
// canonical dashed UUID form the query API expects.
// Example: "1429989fe8ac4effbc8f57f56486db54" -> "1429989f-e8ac-4eff-bc8f-57f56486db54"
//
// Inputs whose hex-only residue is not exactly 32 characters are returned
// unchanged; a malformed identifier surfaces as an upstream query failure
// instead of an error here.
func Normalize(id string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(id) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') {
			sb.WriteRune(r)
		}
	}

	if sb.Len() != 32 {
		return id
	}

	hex := sb.String()
	return hex[0:8] + "-" + hex[8:12] + "-" + hex[12:16] + "-" + hex[16:20] + "-" + hex[20:32]
}
