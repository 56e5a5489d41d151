// internal/tools/rewriter.go
package tools

import "bit-tools/internal/models"

const rewriterSystemPrompt = `You are a professional editor. Rewrite the text you are given so it is clearer, tighter and more engaging while preserving its meaning, facts and voice. Follow these guidelines:

1. Fix grammar, spelling and punctuation
2. Prefer short sentences and active voice
3. Remove filler words and redundancy
4. Keep the original tone unless asked otherwise
5. Never add claims that are not in the original text

Return only the rewritten text, without commentary or preamble.`

const rewriterUserPromptTemplate = `Rewrite the following text. Style: {style}.

{text}`

const rewriterIcon = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="w-6 h-6">
    <path stroke-linecap="round" stroke-linejoin="round" d="m16.862 4.487 1.687-1.688a1.875 1.875 0 1 1 2.652 2.652L10.582 16.07a4.5 4.5 0 0 1-1.897 1.13L6 18l.8-2.685a4.5 4.5 0 0 1 1.13-1.897l8.932-8.931Zm0 0L19.5 7.125M18 14v4.75A2.25 2.25 0 0 1 15.75 21H5.25A2.25 2.25 0 0 1 3 18.75V8.25A2.25 2.25 0 0 1 5.25 6H10" />
</svg>`

func textRewriter() models.ToolConfig {
	return models.ToolConfig{
		Name:               "AI Text Rewriter",
		Description:        "Rewrite any text to be clearer and more engaging while keeping its meaning.",
		Icon:               rewriterIcon,
		Family:             models.FamilyTransformation,
		SystemPrompt:       rewriterSystemPrompt,
		UserPromptTemplate: rewriterUserPromptTemplate,
		Fields: map[string]models.Field{
			"text": {
				Type:        "textarea",
				Label:       "Text to rewrite",
				Placeholder: "Paste the text you want rewritten...",
				Required:    true,
				Rows:        8,
				MaxLength:   10000,
			},
			"style": {
				Type:  "select",
				Label: "Style",
				Options: []models.FieldOption{
					{Value: "Keep the original style", Label: "Keep the original style", Selected: true},
					{Value: "More formal", Label: "More formal"},
					{Value: "More casual", Label: "More casual"},
					{Value: "Shorter and punchier", Label: "Shorter and punchier"},
				},
			},
		},
		FieldOrder: []string{"text", "style"},
		Tips: []string{
			"Paste complete paragraphs for better context",
			"Pick a style to steer the rewrite",
			"Run the result through again for a second polish",
		},
		Benefits: []string{
			"Polish drafts in seconds",
			"Keep your meaning while improving the wording",
			"Adapt one text to different audiences",
		},
	}
}
