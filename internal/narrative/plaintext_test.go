package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "plain text is unchanged",
			markdown: "Margin drops to 25%.",
			want:     "Margin drops to 25%.",
		},
		{
			name:     "emphasis markers removed",
			markdown: "The **margin** falls *sharply* and __fast__.",
			want:     "The margin falls sharply and fast.",
		},
		{
			name:     "heading and paragraphs",
			markdown: "## Summary\n\nFirst line\ncontinues here.\n\nSecond paragraph.",
			want:     "Summary\n\nFirst line continues here.\n\nSecond paragraph.",
		},
		{
			name:     "bullet list",
			markdown: "- Keep `price` steady\n- See [the guide](https://example.com/guide)\n",
			want:     "- Keep price steady\n- See the guide",
		},
		{
			name:     "ordered list keeps numbering",
			markdown: "1. Reduce the discount\n2. Bundle products\n",
			want:     "1. Reduce the discount\n2. Bundle products",
		},
		{
			name:     "fenced code keeps content",
			markdown: "```\nprofit = 20\n```",
			want:     "profit = 20",
		},
		{
			name:     "thematic break dropped",
			markdown: "Above\n\n---\n\nBelow",
			want:     "Above\n\nBelow",
		},
		{
			name:     "empty input",
			markdown: "   ",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.markdown))
		})
	}
}

func TestPlainText_NoEmphasisMarkersSurvive(t *testing.T) {
	out := PlainText("# **Risk**: *high*\n\n> **Note** the _loss_")
	assert.NotContains(t, out, "*")
	assert.NotContains(t, out, "_")
	assert.NotContains(t, out, "#")
}
