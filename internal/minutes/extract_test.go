package minutes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momsync/momsync/pkg/models"
)

func TestExtractActionItems(t *testing.T) {
	tests := []struct {
		name string
		mom  string
		want []models.ActionItem
	}{
		{
			name: "single entry",
			mom:  "1. **Issue:** Fix login\n   - **Assigned to:** Alice",
			want: []models.ActionItem{
				{Description: "Fix login", Assignee: "Alice"},
			},
		},
		{
			name: "multiple entries in document order",
			mom: "Here are the action items:\n\n" +
				"1. **Issue:** Fix login\n   - **Assigned to:** Alice\n\n" +
				"2. **Issue:** Update the deployment docs\n   - **Assigned to:** Bob\n",
			want: []models.ActionItem{
				{Description: "Fix login", Assignee: "Alice"},
				{Description: "Update the deployment docs", Assignee: "Bob"},
			},
		},
		{
			name: "multi-word assignee truncates to first token",
			mom:  "1. **Issue:** Review budget\n   - **Assigned to:** Bob Smith",
			want: []models.ActionItem{
				{Description: "Review budget", Assignee: "Bob"},
			},
		},
		{
			name: "empty input",
			mom:  "",
			want: []models.ActionItem{},
		},
		{
			name: "prose without entries",
			mom:  "The meeting covered quarterly planning. No tasks were assigned.",
			want: []models.ActionItem{},
		},
		{
			name: "format drift yields nothing",
			mom:  "1. Issue: Fix login\n   - Assigned to: Alice",
			want: []models.ActionItem{},
		},
		{
			name: "lowercase markup does not match",
			mom:  "1. **issue:** Fix login\n   - **assigned to:** Alice",
			want: []models.ActionItem{},
		},
		{
			name: "malformed entries are dropped, well-formed kept",
			mom: "1. **Issue:** Fix login\n   - **Assigned to:** Alice\n\n" +
				"2. **Issue:** Orphaned item with no assignee line\n\n" +
				"3. **Issue:** Ship release notes\n   - **Assigned to:** Carol\n",
			want: []models.ActionItem{
				{Description: "Fix login", Assignee: "Alice"},
				{Description: "Ship release notes", Assignee: "Carol"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractActionItems(tt.mom)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractActionItemsIsRestartable(t *testing.T) {
	mom := "1. **Issue:** Fix login\n   - **Assigned to:** Alice"

	first := ExtractActionItems(mom)
	second := ExtractActionItems(mom)
	assert.Equal(t, first, second)
}
