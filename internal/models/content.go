// internal/models/content.go
package models

import "strings"

// Structured content types decoded from schema-conforming model output.
// The language models behind these are loose about field names, so each
// type carries alternate fields that Consolidate folds into the canonical
// ones after decoding.

// GeneratedTitles is the title-generator output shape.
type GeneratedTitles struct {
	Titles []string `json:"titles"`
	// Some models return a single newline-joined string instead of a list.
	TitlesText string `json:"titles_text,omitempty"`
}

// Consolidate normalizes alternate representations into Titles.
func (g *GeneratedTitles) Consolidate() {
	if len(g.Titles) == 0 && g.TitlesText != "" {
		for _, line := range strings.Split(g.TitlesText, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				g.Titles = append(g.Titles, line)
			}
		}
	}
}

// SocialPost is one generated social media post.
type SocialPost struct {
	Platform string `json:"platform,omitempty"`
	Content  string `json:"content"`
}

// SocialPostList is the social-post-generator output shape.
type SocialPostList struct {
	Posts []SocialPost `json:"posts"`
}

// Consolidate guarantees at least one post.
func (s *SocialPostList) Consolidate() {
	if len(s.Posts) == 0 {
		s.Posts = []SocialPost{{Content: "No content generated"}}
	}
}

// ThumbnailIdea is one thumbnail concept.
type ThumbnailIdea struct {
	Background         string `json:"background"`
	MainImage          string `json:"main_image"`
	Text               string `json:"text"`
	AdditionalElements string `json:"additional_elements,omitempty"`
}

// ThumbnailIdeas is the thumbnail-generator output shape. Models answer
// under either "ideas" or "thumbnail_ideas".
type ThumbnailIdeas struct {
	Ideas          []ThumbnailIdea `json:"ideas"`
	ThumbnailIdeas []ThumbnailIdea `json:"thumbnail_ideas,omitempty"`
}

// Consolidate merges both idea fields and guarantees at least one idea.
func (t *ThumbnailIdeas) Consolidate() {
	all := append([]ThumbnailIdea{}, t.Ideas...)
	all = append(all, t.ThumbnailIdeas...)
	if len(all) == 0 {
		all = []ThumbnailIdea{{
			Background:         "Default blue gradient background",
			MainImage:          "Central image related to the topic",
			Text:               "YOUR TOPIC HERE",
			AdditionalElements: "Optional decorative elements",
		}}
	}
	t.Ideas = all
	t.ThumbnailIdeas = all
}

// OutlineSection is one section of a blog outline. Heading is an alternate
// field for Title; Subpoints an alternate field for Points.
type OutlineSection struct {
	Title       string           `json:"title"`
	Heading     string           `json:"heading,omitempty"`
	Points      []string         `json:"points"`
	Subsections []OutlineSection `json:"subsections,omitempty"`
	Subpoints   []string         `json:"subpoints,omitempty"`
}

// Consolidate normalizes alternate fields, recursing into subsections.
func (s *OutlineSection) Consolidate() {
	if s.Title == "" && s.Heading != "" {
		s.Title = s.Heading
	}
	if s.Title == "" {
		s.Title = "Untitled Section"
	}
	s.Points = append(s.Points, s.Subpoints...)
	s.Subpoints = nil
	for i := range s.Subsections {
		s.Subsections[i].Consolidate()
	}
}

// BlogOutline is the blog-outline-generator output shape. Models answer
// with main sections under any of three field names.
type BlogOutline struct {
	Introduction    *OutlineSection  `json:"introduction,omitempty"`
	MainSections    []OutlineSection `json:"main_sections"`
	Conclusion      *OutlineSection  `json:"conclusion,omitempty"`
	Sections        []OutlineSection `json:"sections,omitempty"`
	OutlineSections []OutlineSection `json:"outline_sections,omitempty"`
}

// Consolidate folds alternate section fields together and fills in default
// introduction, conclusion and at least one main section.
func (b *BlogOutline) Consolidate() {
	all := append([]OutlineSection{}, b.MainSections...)
	all = append(all, b.Sections...)
	all = append(all, b.OutlineSections...)
	if len(all) == 0 {
		all = []OutlineSection{{
			Title:  "Main Content",
			Points: []string{"First important point", "Second important point", "Third important point"},
		}}
	}
	b.MainSections = all
	b.Sections = nil
	b.OutlineSections = nil

	if b.Introduction == nil {
		b.Introduction = &OutlineSection{
			Title:  "Introduction",
			Points: []string{"Introduction to the topic", "Why it matters", "What will be covered"},
		}
	}
	if b.Conclusion == nil {
		b.Conclusion = &OutlineSection{
			Title:  "Conclusion",
			Points: []string{"Summary of key points", "Final thoughts", "Call to action"},
		}
	}
	b.Introduction.Consolidate()
	b.Conclusion.Consolidate()
	for i := range b.MainSections {
		b.MainSections[i].Consolidate()
	}
}

// ScriptSection is an optional titled chunk of a YouTube script.
type ScriptSection struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// YoutubeScript is the YouTube-script-generator output shape.
type YoutubeScript struct {
	Script            string          `json:"script"`
	Hooks             []string        `json:"hooks"`
	InputBias         []string        `json:"input_bias"`
	OpenLoopQuestions []string        `json:"open_loop_questions"`
	Sections          []ScriptSection `json:"sections,omitempty"`
}

// Consolidate compiles sections into a script when the script field is
// empty and backfills the list fields with minimal defaults.
func (y *YoutubeScript) Consolidate() {
	if y.Script == "" && len(y.Sections) > 0 {
		var b strings.Builder
		for _, sec := range y.Sections {
			if sec.Title != "" {
				b.WriteString("## " + sec.Title + "\n\n")
			}
			if sec.Content != "" {
				b.WriteString(sec.Content + "\n\n")
			}
		}
		y.Script = strings.TrimSpace(b.String())
	}
	if len(y.Hooks) == 0 {
		y.Hooks = []string{"How to master this topic quickly", "The one thing most people miss about this subject"}
	}
	if len(y.InputBias) == 0 {
		y.InputBias = []string{"After researching this topic extensively", "Based on my analysis"}
	}
	if len(y.OpenLoopQuestions) == 0 {
		y.OpenLoopQuestions = []string{"What's the most important thing to remember?", "How can I apply this information?"}
	}
}
