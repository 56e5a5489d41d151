// internal/tools/outline.go
package tools

import (
	"bit-tools/internal/models"
	"bit-tools/internal/schema"
)

const outlineSystemPrompt = `You are a professional blog outline generator. Create well-structured, comprehensive outlines for blog posts that will help writers create engaging, informative content. Follow these guidelines:

1. Create a logical flow from introduction to conclusion
2. Include main sections and subsections with clear hierarchy
3. Be specific and actionable in section titles
4. Consider SEO best practices
5. Adapt the outline to the target audience and purpose
6. Include suggestions for key points to cover in each section
7. Provide a mix of informational and engaging sections

Return your outline in a structured format with:
- An introduction section with title and bullet points
- Main sections, each with title, bullet points, and potential subsections
- A conclusion section with title and bullet points

Every section should have a descriptive title and a list of key points to cover.`

const outlineUserPromptTemplate = `Create a detailed blog post outline for a {word_count}-word article about: {topic}

Target audience: {target_audience}
Purpose: {tone}

Return a structured outline with:
1. Introduction section
2. Main content sections (with any subsections)
3. Conclusion section

For each section and subsection, include:
- A descriptive title
- 3-5 bullet points on what to cover`

const outlineIcon = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="w-6 h-6">
    <path stroke-linecap="round" stroke-linejoin="round" d="M3.75 6.75h16.5M3.75 12h16.5m-16.5 5.25H12" />
</svg>`

func blogOutlineGenerator() models.ToolConfig {
	return models.ToolConfig{
		Name:               "Blog Outline Generator",
		Description:        "Create a structured outline for your blog post.",
		Icon:               outlineIcon,
		Family:             models.FamilyOutline,
		SystemPrompt:       outlineSystemPrompt,
		UserPromptTemplate: outlineUserPromptTemplate,
		ResponseSchema:     schema.BlogOutline,
		Fields: map[string]models.Field{
			"topic": {
				Type:        "textarea",
				Label:       "Blog Topic",
				Placeholder: "Describe your blog topic in detail...",
				Required:    true,
				Rows:        3,
			},
			"word_count": {
				Type:  "select",
				Label: "Word Count",
				Options: []models.FieldOption{
					{Value: "500", Label: "Short (500 words)"},
					{Value: "1000", Label: "Medium (1000 words)", Selected: true},
					{Value: "1500", Label: "Long (1500 words)"},
					{Value: "2000", Label: "Comprehensive (2000+ words)"},
				},
			},
			"target_audience": {
				Type:        "textarea",
				Label:       "Target Audience",
				Placeholder: "Who is your target audience?",
				Rows:        2,
			},
			"tone": {
				Type:  "select",
				Label: "Tone",
				Options: []models.FieldOption{
					{Value: "professional", Label: "Professional", Selected: true},
					{Value: "casual", Label: "Casual"},
					{Value: "educational", Label: "Educational"},
					{Value: "humorous", Label: "Humorous"},
				},
			},
			"sections": {
				Type:  "select",
				Label: "Number of Sections",
				Options: []models.FieldOption{
					{Value: "3-5", Label: "3-5 Sections", Selected: true},
					{Value: "5-7", Label: "5-7 Sections"},
					{Value: "7-10", Label: "7-10 Sections"},
				},
			},
		},
		FieldOrder: []string{"topic", "word_count", "target_audience", "tone", "sections"},
		Tips: []string{
			"Include a compelling introduction and conclusion in your outline",
			"Break down complex topics into digestible sections",
			"Consider adding FAQs to address common reader questions",
			"Plan for visual elements like images, charts, or infographics",
			"Include a call-to-action at the end of your blog post",
			"Research keywords to include in your headings for better SEO",
		},
		Benefits: []string{
			"Save time planning your blog content structure",
			"Create more organized and coherent blog posts",
			"Ensure comprehensive coverage of your topic",
			"Improve reader engagement with a logical flow",
			"Make the writing process faster and more efficient",
		},
	}
}
