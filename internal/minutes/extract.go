// Package minutes parses generated minutes-of-meeting text into action items.
package minutes

import (
	"regexp"

	"github.com/momsync/momsync/pkg/models"
)

// Grammar v1. An action item is a numbered entry of the form:
//
//	<N>. **Issue:** <description>
//	   - **Assigned to:** <name>
//
// where <name> is a single \w+ token. Matching is case-sensitive and tied
// to the markdown emphasis markup produced by the generation prompt; text
// that does not match is dropped. Multi-word names truncate to their first
// token. This is the lossy boundary of the prompt contract: changing the
// grammar requires changing the system prompt in internal/llm as well.
var actionItemPattern = regexp.MustCompile(`\d+\.\s+\*\*Issue:\*\*\s+(.*?)\s*\n\s*-\s+\*\*Assigned to:\*\*\s+(\w+)`)

// ExtractActionItems returns the action items found in the minutes text, in
// document order. Minutes with no well-formed entries yield an empty slice,
// never an error: "no action items" is a valid outcome.
func ExtractActionItems(mom string) []models.ActionItem {
	matches := actionItemPattern.FindAllStringSubmatch(mom, -1)

	items := make([]models.ActionItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, models.ActionItem{
			Description: m[1],
			Assignee:    m[2],
		})
	}

	return items
}
