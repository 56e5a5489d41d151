// Package tools declares the built-in tool configurations and registers
// them. Each tool is pure configuration; the shared pipeline does the work.
package tools

import (
	"bit-tools/internal/common/logger"
	"bit-tools/internal/factory"
	"bit-tools/internal/gateway"
	"bit-tools/internal/models"
	"bit-tools/pkg/registry"
)

// CategoryContentCreation groups the built-in generators.
const CategoryContentCreation = "Content Creation"

// Definition pairs a tool configuration with its registry categories.
type Definition struct {
	Config     models.ToolConfig
	Categories []string
}

// Definitions returns every built-in tool, in listing order.
func Definitions() []Definition {
	return []Definition{
		{Config: titleGenerator(), Categories: []string{CategoryContentCreation}},
		{Config: socialPostGenerator(), Categories: []string{CategoryContentCreation}},
		{Config: blogOutlineGenerator(), Categories: []string{CategoryContentCreation}},
		{Config: thumbnailIdeasGenerator(), Categories: []string{CategoryContentCreation}},
		{Config: youtubeScriptGenerator(), Categories: []string{CategoryContentCreation}},
		{Config: textRewriter(), Categories: []string{CategoryContentCreation}},
	}
}

// RegisterAll builds pipelines for every built-in tool and registers them.
func RegisterAll(reg *registry.Registry, gw gateway.Generator, log logger.Logger, opts ...factory.Option) {
	for _, def := range Definitions() {
		tool := factory.NewTool(def.Config, gw, log, opts...)
		reg.Register(tool, def.Categories...)
	}
}
