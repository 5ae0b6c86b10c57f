// Package sanitize strips HTML markup from free-text reservation fields so
// that stored values are safe for any HTML-rendering consumer.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows no tags and no attributes; script/style content is dropped
// entirely rather than unwrapped.
var policy = bluemonday.StrictPolicy()

// reEntity removes any leftover HTML entity span the policy escaped or let
// through, e.g. "&lt;b&gt;" or "&amp;".
var reEntity = regexp.MustCompile(`&.*;`)

// Clean removes every HTML tag and attribute from s, then strips remaining
// entity references. Cleaning already-clean text returns it unchanged, so
// applying Clean twice equals applying it once.
func Clean(s string) string {
	return reEntity.ReplaceAllString(policy.Sanitize(s), "")
}
