// Package schema validates and decodes structured language-model output.
//
// Each registered schema pairs a JSON Schema document (validated with
// gojsonschema) with a typed decode target from internal/models. Decoding
// is deliberately tolerant: the schemas accept the alternate field names
// models actually produce, and each decoded value is consolidated into its
// canonical shape afterwards.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"bit-tools/internal/models"
)

// Schema names referenced by tool configurations.
const (
	GeneratedTitles = "generated_titles"
	SocialPostList  = "social_post_list"
	ThumbnailIdeas  = "thumbnail_ideas"
	BlogOutline     = "blog_outline"
	YoutubeScript   = "youtube_script"
)

// Structured is a decoded, consolidated model output value.
type Structured interface {
	Consolidate()
}

// Definition binds a schema name to its document and decode target.
type Definition struct {
	Name     string
	Document string

	compiled *gojsonschema.Schema
	newValue func() Structured
}

var definitions = map[string]*Definition{}

func register(name, document string, newValue func() Structured) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(document))
	if err != nil {
		panic(fmt.Sprintf("invalid schema document %q: %v", name, err))
	}
	definitions[name] = &Definition{
		Name:     name,
		Document: document,
		compiled: compiled,
		newValue: newValue,
	}
}

// Lookup returns the definition for a schema name.
func Lookup(name string) (*Definition, bool) {
	d, ok := definitions[name]
	return d, ok
}

// MustLookup returns the definition or panics; for startup wiring only.
func MustLookup(name string) *Definition {
	d, ok := definitions[name]
	if !ok {
		panic(fmt.Sprintf("unknown schema %q", name))
	}
	return d
}

// Decode validates raw JSON against the schema and unmarshals it into the
// schema's typed value. The returned value is already consolidated.
func (d *Definition) Decode(raw string) (Structured, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("schema %s: empty input", d.Name)
	}

	result, err := d.compiled.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", d.Name, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("schema %s: %s", d.Name, strings.Join(msgs, "; "))
	}

	value := d.newValue()
	if err := json.Unmarshal([]byte(raw), value); err != nil {
		return nil, fmt.Errorf("schema %s: decode: %w", d.Name, err)
	}
	value.Consolidate()
	return value, nil
}

func init() {
	register(GeneratedTitles, generatedTitlesDocument, func() Structured { return &models.GeneratedTitles{} })
	register(SocialPostList, socialPostListDocument, func() Structured { return &models.SocialPostList{} })
	register(ThumbnailIdeas, thumbnailIdeasDocument, func() Structured { return &models.ThumbnailIdeas{} })
	register(BlogOutline, blogOutlineDocument, func() Structured { return &models.BlogOutline{} })
	register(YoutubeScript, youtubeScriptDocument, func() Structured { return &models.YoutubeScript{} })
}
