package sqlitedriver

import "regexp"

var hexColorRegex = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

// isHexColor backs the is_hex_color(x) SQL function. SQLite has no boolean
// type, so it answers 1 or 0.
func isHexColor(s string) int64 {
	if hexColorRegex.MatchString(s) {
		return 1
	}
	return 0
}
