// internal/view/view_test.go
package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bit-tools/internal/models"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		family models.Family
		result models.Result
		want   Strategy
	}{
		{
			name:   "titles family uses list",
			family: models.FamilyTitles,
			result: models.Result{Titles: []string{"One", "Two"}},
			want:   StrategyList,
		},
		{
			name:   "transformation with text",
			family: models.FamilyTransformation,
			result: models.Result{OriginalText: "a", TransformedText: "b", Titles: []string{"b"}},
			want:   StrategyTransformation,
		},
		{
			name:   "transformation without text degrades to list",
			family: models.FamilyTransformation,
			result: models.Result{Titles: []string{"plain"}},
			want:   StrategyList,
		},
		{
			name:   "thumbnail with ideas",
			family: models.FamilyThumbnail,
			result: models.Result{Ideas: []models.ThumbnailIdea{{Background: "bg"}}},
			want:   StrategyThumbnail,
		},
		{
			name:   "thumbnail fallback to list",
			family: models.FamilyThumbnail,
			result: models.Result{Titles: []string{"some text"}},
			want:   StrategyList,
		},
		{
			name:   "script with script text",
			family: models.FamilyScript,
			result: models.Result{Script: "Welcome back."},
			want:   StrategyScript,
		},
		{
			name:   "outline with sections",
			family: models.FamilyOutline,
			result: models.Result{MainSections: []models.OutlineSection{{Title: "Body"}}},
			want:   StrategyOutline,
		},
		{
			name:   "outline recovered from markdown lines",
			family: models.FamilyOutline,
			result: models.Result{Titles: []string{"## Introduction", "- hook", "### Body", "- point"}},
			want:   StrategyOutline,
		},
		{
			name:   "outline plain text degrades to list",
			family: models.FamilyOutline,
			result: models.Result{Titles: []string{"no headings here"}},
			want:   StrategyList,
		},
		{
			name:   "error always renders as list",
			family: models.FamilyScript,
			result: models.Result{Error: "boom", Script: "ignored"},
			want:   StrategyList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.family, tt.result))
		})
	}
}

func TestOutlineFromLines(t *testing.T) {
	lines := []string{
		"## Introduction",
		"- hook the reader",
		"## Main Sections",
		"### First Part",
		"- point one",
		"- point two",
		"### Second Part",
		"* starred point",
		"## Conclusion",
		"- call to action",
	}

	outline, ok := OutlineFromLines(lines)
	require.True(t, ok)

	require.NotNil(t, outline.Introduction)
	assert.Equal(t, "Introduction", outline.Introduction.Title)
	assert.Equal(t, []string{"hook the reader"}, outline.Introduction.Points)

	require.Len(t, outline.MainSections, 2)
	assert.Equal(t, "First Part", outline.MainSections[0].Title)
	assert.Equal(t, []string{"point one", "point two"}, outline.MainSections[0].Points)
	assert.Equal(t, []string{"starred point"}, outline.MainSections[1].Points)

	require.NotNil(t, outline.Conclusion)
	assert.Equal(t, []string{"call to action"}, outline.Conclusion.Points)
}

func TestOutlineFromLines_NoHeadings(t *testing.T) {
	_, ok := OutlineFromLines([]string{"just a line", "another line"})
	assert.False(t, ok)
}
