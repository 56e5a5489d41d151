// Package view selects how a result is rendered. Selection is pure: it
// inspects the tool's family and the shape of the result, never global
// state, so the same inputs always pick the same view.
package view

import (
	"strings"

	"bit-tools/internal/models"
)

// Strategy names a results rendering.
type Strategy string

const (
	StrategyList           Strategy = "list"
	StrategyTransformation Strategy = "transformation"
	StrategyOutline        Strategy = "outline"
	StrategyThumbnail      Strategy = "thumbnail"
	StrategyScript         Strategy = "script"
)

// Select picks the rendering strategy for a tool's result. Families degrade
// to the generic list view when the result lacks the fields their dedicated
// view needs, which happens on the unstructured fallback path.
func Select(family models.Family, result models.Result) Strategy {
	if result.Failed() {
		return StrategyList
	}

	switch family {
	case models.FamilyTransformation:
		if result.TransformedText != "" {
			return StrategyTransformation
		}
	case models.FamilyThumbnail:
		if len(result.Ideas) > 0 {
			return StrategyThumbnail
		}
	case models.FamilyScript:
		if result.Script != "" {
			return StrategyScript
		}
	case models.FamilyOutline:
		if len(result.MainSections) > 0 {
			return StrategyOutline
		}
		if _, ok := OutlineFromLines(result.Titles); ok {
			return StrategyOutline
		}
	}
	return StrategyList
}

// OutlineFromLines reconstructs outline sections from flattened markdown
// lines. Used when structured decoding fell back to text but the text still
// looks like an outline. Returns false when no headings are found.
func OutlineFromLines(lines []string) (*models.BlogOutline, bool) {
	var sections []models.OutlineSection
	var current *models.OutlineSection

	flush := func() {
		if current != nil {
			sections = append(sections, *current)
			current = nil
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "### "):
			flush()
			current = &models.OutlineSection{Title: strings.TrimPrefix(line, "### ")}
		case strings.HasPrefix(line, "## "):
			flush()
			current = &models.OutlineSection{Title: strings.TrimPrefix(line, "## ")}
		case strings.HasPrefix(line, "- "):
			if current != nil {
				current.Points = append(current.Points, strings.TrimPrefix(line, "- "))
			}
		case strings.HasPrefix(line, "* "):
			if current != nil {
				current.Points = append(current.Points, strings.TrimPrefix(line, "* "))
			}
		}
	}
	flush()

	if len(sections) == 0 {
		return nil, false
	}

	outline := &models.BlogOutline{}
	for _, sec := range sections {
		title := strings.ToLower(sec.Title)
		switch {
		case outline.Introduction == nil && strings.Contains(title, "introduction"):
			s := sec
			outline.Introduction = &s
		case outline.Conclusion == nil && strings.Contains(title, "conclusion"):
			s := sec
			outline.Conclusion = &s
		case title == "main sections":
			// Flattened group heading, not a section of its own.
		default:
			outline.MainSections = append(outline.MainSections, sec)
		}
	}
	outline.Consolidate()
	return outline, true
}
