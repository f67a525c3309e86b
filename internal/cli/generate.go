package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-nuxtgen/pkg/orchestrator"
	"github.com/goliatone/go-nuxtgen/pkg/project"
	"github.com/goliatone/go-nuxtgen/pkg/render"
	"github.com/goliatone/go-nuxtgen/pkg/templates"
	"github.com/goliatone/go-nuxtgen/pkg/writer"
)

type generateOptions struct {
	config      string
	out         string
	dryRun      bool
	writeAll    bool
	only        []string
	set         []string
	concurrency int
	interactive bool
	banner      string
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render templates for a project and write them to the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "nuxtgen.yaml", "project file (YAML or JSON)")
	flags.StringVarP(&opts.out, "out", "o", "", "output directory (defaults to options.buildDir)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "report changes without writing")
	flags.BoolVar(&opts.writeAll, "write-all", false, "write virtual templates to disk as well")
	flags.StringSliceVar(&opts.only, "only", nil, "render only the named templates")
	flags.StringArrayVar(&opts.set, "set", nil, "override a project value (key.path=value)")
	flags.IntVar(&opts.concurrency, "concurrency", 1, "number of templates rendered in parallel")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "choose templates interactively")
	flags.StringVar(&opts.banner, "banner", "", "comment prepended to every generated file")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	ctx := cmd.Context()
	logger := root.logger

	tctx, err := project.New(
		project.WithOverrides(opts.set...),
		project.WithLogger(logger),
	).Load(ctx, project.SourceFromFile(opts.config))
	if err != nil {
		return err
	}

	registry := templates.NewRegistry()
	names, err := selectTemplates(cmd, registry, opts)
	if err != nil {
		return err
	}

	orchestratorOptions := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithLogger(logger),
		orchestrator.WithConcurrency(opts.concurrency),
		orchestrator.WithSubset(render.Subset{Names: names}),
	}
	if opts.banner != "" {
		orchestratorOptions = append(orchestratorOptions, orchestrator.WithTransformers(orchestrator.BannerTransformer(opts.banner)))
	}
	files, err := orchestrator.New(orchestratorOptions...).Generate(ctx, tctx)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = tctx.Options.BuildDir
	}
	result, err := writer.New(
		writer.WithLogger(logger),
		writer.WithWriteAll(opts.writeAll),
		writer.WithDryRun(opts.dryRun),
	).Write(ctx, out, files)
	if err != nil {
		return err
	}

	verb := "wrote"
	if opts.dryRun {
		verb = "would write"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d file(s) to %s, %d unchanged, %d virtual\n",
		verb, len(result.Written), out, len(result.Unchanged), len(result.Skipped))
	return nil
}

func selectTemplates(cmd *cobra.Command, registry *render.Registry, opts *generateOptions) ([]string, error) {
	for _, name := range opts.only {
		if !registry.Has(name) {
			return nil, fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(registry.List(), ", "))
		}
	}
	if !opts.interactive {
		return opts.only, nil
	}

	var options []string
	var defaults []int
	for i, tpl := range registry.Templates() {
		options = append(options, tpl.Name)
		if len(opts.only) == 0 || contains(opts.only, tpl.Name) {
			defaults = append(defaults, i)
		}
	}
	picked, err := newPrompter().MultiSelect(cmd.Context(), SelectConfig{
		Message:  "Templates to render",
		Options:  options,
		Defaults: defaults,
		PageSize: len(options),
	})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(picked))
	for _, idx := range picked {
		names = append(names, options[idx])
	}
	return names, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
