package cli

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/project"
)

type violation struct {
	file     string
	location string
	message  string
}

func newLintCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [project files...]",
		Short: "Report project entries the templates would drop or mis-type",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"nuxtgen.yaml"}
			}

			var violations []violation
			for _, file := range paths {
				tctx, err := project.New(project.WithLogger(root.logger)).Load(cmd.Context(), project.SourceFromFile(file))
				if err != nil {
					return fmt.Errorf("lint %s: %w", file, err)
				}
				violations = append(violations, lintContext(file, tctx)...)
			}
			if len(violations) == 0 {
				return nil
			}

			sort.Slice(violations, func(i, j int) bool {
				if violations[i].file == violations[j].file {
					if violations[i].location == violations[j].location {
						return violations[i].message < violations[j].message
					}
					return violations[i].location < violations[j].location
				}
				return violations[i].file < violations[j].file
			})
			for _, v := range violations {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s -> %s\n", v.file, v.location, v.message)
			}
			return fmt.Errorf("lint: %d violation(s)", len(violations))
		},
	}
}

func lintContext(file string, tctx model.TemplateContext) []violation {
	var result []violation
	add := func(location, message string) {
		result = append(result, violation{file: file, location: location, message: message})
	}

	extensions := make(map[string]struct{}, len(tctx.Options.Extensions))
	for _, ext := range tctx.Options.Extensions {
		extensions[ext] = struct{}{}
	}
	checkExtension := func(location, specifier string) {
		ext := path.Ext(specifier)
		if ext == "" {
			return
		}
		if _, ok := extensions[ext]; !ok {
			add(location, fmt.Sprintf("extension %q is not listed in options.extensions", ext))
		}
	}

	for i, plugin := range tctx.App.Plugins {
		checkExtension(fmt.Sprintf("app.plugins[%d]", i), plugin.Src)
	}
	for name, layout := range tctx.App.Layouts {
		checkExtension("app.layouts."+name, layout.File)
	}
	for i, mw := range tctx.App.Middleware {
		checkExtension(fmt.Sprintf("app.middleware[%d]", i), mw.Path)
	}

	for i, module := range tctx.Options.Modules {
		location := fmt.Sprintf("options.modules[%d]", i)
		switch {
		case module.Meta.Name == "" && module.Meta.ConfigKey == "":
			continue
		case module.Meta.Name == "":
			add(location, "configKey without meta.name is left out of schema.d.ts")
		case module.Meta.ConfigKey == "":
			add(location, "meta.name without configKey is left out of schema.d.ts")
		}
	}

	if _, ok := tctx.Options.RuntimeConfig["public"]; ok {
		if _, isMap := tctx.Options.RuntimeConfig["public"].(map[string]any); !isMap {
			add("options.runtimeConfig.public", "must be an object")
		}
	}
	if strings.TrimSpace(tctx.App.MainComponent) == "" {
		add("app.mainComponent", "required by app-component.mjs")
	}
	return result
}
