package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// directiveSentinel marks an embedded slide-creation instruction inside an
// otherwise free-text assistant reply.
const directiveSentinel = "SLIDE_CREATE:"

// directivePattern locates the sentinel and its trailing JSON object. The
// object match is deliberately shallow ([^}]*): directives are single-level
// by contract, and anything fancier is rejected by the strict parse below.
var directivePattern = regexp.MustCompile(`SLIDE_CREATE:\s*(\{[^}]*\})`)

// slideDirective is the declared schema of a slide-creation directive.
type slideDirective struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// extractSlideDirective scans reply for a slide-creation directive.
//
// On a match that strictly parses, it returns the directive plus the reply
// with the directive substring removed. On no sentinel, or a sentinel whose
// JSON does not parse, it returns nil and the reply untouched: directive
// handling is best effort and never corrupts the visible response.
func extractSlideDirective(reply string) (*slideDirective, string) {
	if !strings.Contains(reply, directiveSentinel) {
		return nil, reply
	}

	match := directivePattern.FindStringSubmatchIndex(reply)
	if match == nil {
		return nil, reply
	}

	candidate := reply[match[2]:match[3]]

	var directive slideDirective
	if err := json.Unmarshal([]byte(candidate), &directive); err != nil {
		return nil, reply
	}
	if directive.Title == "" {
		return nil, reply
	}

	cleaned := strings.TrimSpace(reply[:match[0]] + reply[match[1]:])

	return &directive, cleaned
}
