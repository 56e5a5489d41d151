// internal/tools/title.go
package tools

import (
	"bit-tools/internal/models"
	"bit-tools/internal/schema"
)

const titleSystemPrompt = `You are a versatile content title generator specializing in catchy, platform-specific titles. Follow these key principles and guidelines:

Key Principles:
1. High energy and motivation
2. Direct and no-nonsense approach
3. Practical advice and actionable insights
4. Empowerment and positivity
5. Repetition for emphasis

Detailed Guidelines:
1. Use Powerful, Motivational Language
   - Start sentences with strong verbs
   - Employ imperative statements
   - Use intensifiers like "absolutely," "definitely," "100%"
2. Keep It Real and Direct
   - Cut through the fluff - get straight to the point
   - Use colloquial language and slang
   - Don't shy away from occasional profanity (if appropriate for the platform)
3. Focus on Practicality
   - Provide specific, actionable steps
   - Use real-world examples and case studies
   - Break down complex ideas into simple, doable tasks
4. Create a Sense of Urgency
   - Use phrases like "right now," "immediately," "don't wait"
   - Emphasize the cost of inaction
   - Highlight time-sensitive opportunities
5. Incorporate Personal Anecdotes (when relevant)
   - Share stories from entrepreneurial journeys
   - Use failures as teaching moments
   - Connect personal experiences to broader principles
6. Embrace Repetition
   - Repeat key phrases for emphasis
   - Use variations of the same idea to drive the point home
   - Create memorable catchphrases
7. Engage Directly with the Audience
   - Use "you" and "your" frequently
   - Ask rhetorical questions
   - Challenge the reader to take action
8. Use Contrast for Impact
   - Juxtapose old thinking with new perspectives
   - Highlight the difference between action and inaction
   - Compare short-term discomfort with long-term gains
9. Leverage Visual Structure (when applicable)
   - Use ALL CAPS for emphasis
   - Break long ideas into short, punchy phrases

Return exactly 10 titles in a structured format as specified.`

const titleUserPromptTemplate = `Create 10 engaging {platform} titles for content about: {topic}. Tone: {style}. Make them catchy and platform-appropriate. Don't include 'sure' or numbering. Apply the principles and guidelines provided in the system prompt.

Return your results as a structured list of 10 titles, without any numbering or additional commentary.`

const titleIcon = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="w-6 h-6">
    <path stroke-linecap="round" stroke-linejoin="round" d="M7.5 8.25h9m-9 3H12m-9.75 1.51c0 1.6 1.123 2.994 2.707 3.227 1.129.166 2.27.293 3.423.379.35.026.67.21.865.501L12 21l2.755-4.133a1.14 1.14 0 0 1 .865-.501 48.172 48.172 0 0 0 3.423-.379c1.584-.233 2.707-1.626 2.707-3.228V6.741c0-1.602-1.123-2.995-2.707-3.228A48.394 48.394 0 0 0 12 3c-2.392 0-4.744.175-7.043.513C3.373 3.746 2.25 5.14 2.25 6.741v6.018Z" />
</svg>`

func titleGenerator() models.ToolConfig {
	return models.ToolConfig{
		Name:               "AI Title Generator",
		Description:        "Create engaging titles for YouTube videos, articles, or TikTok posts in various styles.",
		Icon:               titleIcon,
		Family:             models.FamilyTitles,
		SystemPrompt:       titleSystemPrompt,
		UserPromptTemplate: titleUserPromptTemplate,
		ResponseSchema:     schema.GeneratedTitles,
		Fields: map[string]models.Field{
			"topic": {
				Type:        "textarea",
				Label:       "What's your content about?",
				Placeholder: "Describe your content topic in detail for better results...",
				Required:    true,
				Rows:        3,
			},
			"platform": {
				Type:  "select",
				Label: "Platform",
				Options: []models.FieldOption{
					{Value: "YouTube", Label: "YouTube", Selected: true},
					{Value: "Article", Label: "Article"},
					{Value: "TikTok", Label: "TikTok"},
				},
			},
			"style": {
				Type:  "select",
				Label: "Style",
				Options: []models.FieldOption{
					{Value: "Professional", Label: "Professional", Selected: true},
					{Value: "Funny", Label: "Funny"},
				},
			},
		},
		FieldOrder: []string{"topic", "platform", "style"},
		Tips: []string{
			"Use numbers in your titles (e.g., '7 Ways to...') to increase clicks",
			"Include emotional words to trigger curiosity or excitement",
			"Keep YouTube titles under 60 characters to avoid truncation",
			"Use keywords relevant to your topic for better SEO",
			"Ask questions in your titles to engage readers",
			"Create a sense of urgency with words like 'now' or 'today'",
		},
		Benefits: []string{
			"Increase click-through rates with attention-grabbing titles",
			"Save time brainstorming multiple title options",
			"Improve your content's discoverability through better titles",
			"Test different title styles to see what works best for your audience",
			"Maintain consistent quality across all your content",
		},
	}
}
