package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Name canonicalizes a player name for case-insensitive lookup.
func Name(s string) string {
	return folder.String(strings.TrimSpace(s))
}
