// internal/tools/script.go
package tools

import (
	"bit-tools/internal/models"
	"bit-tools/internal/schema"
)

const scriptSystemPrompt = `You are a YouTube creator who is creating video scripts that follows:
- informative tone
- Knowledge Gap add in first 30 seconds
- Mystery
- Preview Hook
- call to action
You are creating the video scripts on the keyword asked by the user.
The format should be:

(Start with a mystery)
(Add a knowledge gap)
(Include a preview hook)
(Call to action)

After you finish with the script, please craft 12 compelling hooks. They can be in the form of a question, strong statement, story, or an interesting statistic. Try to provide 3 of each type for variety. Ensure each hook aligns with the essence of the video title.

Then, craft 5 input bias variations that highlight the effort and research put into the video's content.

Finally, think of ten open loop questions that a viewer might have in mind before clicking on the video. These questions should be based on the content implied by the video title.`

const scriptUserPromptTemplate = `Generate a YouTube script for a video about: {topic}.

Please structure the output as follows:

SCRIPT:
[Your generated script here]

HOOKS x12:
[Hook 1]: (Question hook)
[Hook 2]: (Strong statement hook)
[Hook 3]: (Story hook)
[Hook 4]: (Interesting statistical hook)
... (continue for all 12 hooks)

INPUT BIAS x5:
[Input Bias 1]:
[Input Bias 2]:
[Input Bias 3]:
[Input Bias 4]:
[Input Bias 5]:

OPEN LOOP QUESTIONS x10:
[Open Loop Question 1]:
[Open Loop Question 2]:
... (continue for all 10 questions)`

const scriptIcon = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="w-6 h-6">
    <path stroke-linecap="round" d="M15.75 10.5l4.72-4.72a.75.75 0 011.28.53v11.38a.75.75 0 01-1.28.53l-4.72-4.72M4.5 18.75h9a2.25 2.25 0 002.25-2.25v-9a2.25 2.25 0 00-2.25-2.25h-9A2.25 2.25 0 002.25 7.5v9a2.25 2.25 0 002.25 2.25z" />
</svg>`

func youtubeScriptGenerator() models.ToolConfig {
	return models.ToolConfig{
		Name:               "YouTube Script Generator",
		Description:        "Create engaging YouTube video scripts with hooks, input bias, and open loop questions.",
		Icon:               scriptIcon,
		Family:             models.FamilyScript,
		SystemPrompt:       scriptSystemPrompt,
		UserPromptTemplate: scriptUserPromptTemplate,
		ResponseSchema:     schema.YoutubeScript,
		Fields: map[string]models.Field{
			"topic": {
				Type:        "textarea",
				Label:       "What's your YouTube video about?",
				Placeholder: "Describe your video topic in detail for better results...",
				Required:    true,
				Rows:        3,
			},
		},
		FieldOrder: []string{"topic"},
		Tips: []string{
			"Start with a strong hook to grab attention",
			"Include a knowledge gap in the first 30 seconds",
			"Use a preview hook to keep viewers watching",
			"Maintain an informative tone throughout",
			"End with a clear call to action",
			"Use open loop questions to create curiosity",
		},
		Benefits: []string{
			"Save time on script writing and content planning",
			"Create more engaging and viewer-retaining content",
			"Develop multiple hooks to test and optimize",
			"Establish credibility with input bias statements",
			"Generate curiosity with open loop questions",
		},
	}
}
