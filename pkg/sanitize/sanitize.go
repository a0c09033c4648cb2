// Package sanitize provides the bluemonday policies used when callers opt
// into raw markup inside captions or cell display values. Rendering never
// sanitizes by default; formatted numeric output must pass through
// untouched.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	displayPolicyOnce sync.Once
	displayPolicy     *bluemonday.Policy
)

// Display returns a policy allowing the small set of inline elements that
// make sense inside a table cell or caption. Everything else, scripts
// included, is stripped.
func Display() *bluemonday.Policy {
	displayPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "u", "s", "sub", "sup", "br", "code", "span")
		policy.AllowAttrs("class").OnElements("span")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowElements("a")
		policy.RequireNoFollowOnLinks(true)
		displayPolicy = policy
	})
	return displayPolicy
}

// Clean applies the policy to raw markup and trims the result. A nil policy
// returns the input unchanged.
func Clean(policy *bluemonday.Policy, raw string) string {
	if policy == nil || raw == "" {
		return raw
	}
	return strings.TrimSpace(policy.Sanitize(raw))
}
