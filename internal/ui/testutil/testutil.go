// Package testutil provides shared helpers for UI component tests.
package testutil

import "regexp"

var sgrRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes SGR sequences so rendered output can be compared as
// plain text.
func StripANSI(s string) string {
	return sgrRE.ReplaceAllString(s, "")
}
