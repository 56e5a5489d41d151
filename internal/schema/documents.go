// internal/schema/documents.go
package schema

// The JSON Schema documents are permissive by intent: models frequently
// answer with alternate field names, and the defaults applied during
// consolidation cover missing optional fields. Only the field a family
// cannot render without is required here.

const generatedTitlesDocument = `{
  "type": "object",
  "properties": {
    "titles": {
      "type": "array",
      "items": {"type": "string"},
      "minItems": 1,
      "description": "A list of engaging titles based on the user's topic, platform, and style."
    },
    "titles_text": {"type": "string"}
  },
  "anyOf": [
    {"required": ["titles"]},
    {"required": ["titles_text"]}
  ]
}`

const socialPostListDocument = `{
  "type": "object",
  "properties": {
    "posts": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {
          "platform": {"type": "string"},
          "content": {"type": "string"}
        },
        "required": ["content"]
      }
    }
  },
  "required": ["posts"]
}`

const thumbnailIdeasDocument = `{
  "type": "object",
  "definitions": {
    "idea": {
      "type": "object",
      "properties": {
        "background": {"type": "string"},
        "main_image": {"type": "string"},
        "text": {"type": "string"},
        "additional_elements": {"type": ["string", "null"]}
      }
    }
  },
  "properties": {
    "ideas": {"type": "array", "items": {"$ref": "#/definitions/idea"}},
    "thumbnail_ideas": {"type": "array", "items": {"$ref": "#/definitions/idea"}}
  },
  "anyOf": [
    {"required": ["ideas"]},
    {"required": ["thumbnail_ideas"]}
  ]
}`

const blogOutlineDocument = `{
  "type": "object",
  "definitions": {
    "section": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "heading": {"type": "string"},
        "points": {"type": "array", "items": {"type": "string"}},
        "subpoints": {"type": "array", "items": {"type": "string"}},
        "subsections": {"type": "array", "items": {"$ref": "#/definitions/section"}}
      }
    }
  },
  "properties": {
    "introduction": {"$ref": "#/definitions/section"},
    "main_sections": {"type": "array", "items": {"$ref": "#/definitions/section"}},
    "conclusion": {"$ref": "#/definitions/section"},
    "sections": {"type": "array", "items": {"$ref": "#/definitions/section"}},
    "outline_sections": {"type": "array", "items": {"$ref": "#/definitions/section"}}
  },
  "anyOf": [
    {"required": ["main_sections"]},
    {"required": ["sections"]},
    {"required": ["outline_sections"]}
  ]
}`

const youtubeScriptDocument = `{
  "type": "object",
  "properties": {
    "script": {"type": "string"},
    "hooks": {"type": "array", "items": {"type": "string"}},
    "input_bias": {"type": "array", "items": {"type": "string"}},
    "open_loop_questions": {"type": "array", "items": {"type": "string"}},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "content": {"type": "string"}
        }
      }
    }
  },
  "anyOf": [
    {"required": ["script"]},
    {"required": ["sections"]}
  ]
}`
