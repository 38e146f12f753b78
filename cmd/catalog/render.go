package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nieomylnieja/jsonview/internal/catalog"
)

var renderOpts struct {
	include     []string
	exclude     []string
	alias       string
	indented    bool
	withoutRoot bool
}

var renderCmd = &cobra.Command{
	Use:   "render <resource>",
	Short: "Print a JSON view of a catalog resource",
	Long: `Print a JSON view of a catalog resource.

Resources: products, products/<id>, orders, orders/<id>.`,
	Example: `  catalog render products/1 --include category --exclude category.id
  catalog render orders/1 -i customer,lines -i lines.product --indented`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := cfg.Log.NewLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		view := catalog.View{
			Include:     renderOpts.include,
			Exclude:     renderOpts.exclude,
			Alias:       renderOpts.alias,
			Indented:    renderOpts.indented || cfg.Render.Indented,
			WithoutRoot: renderOpts.withoutRoot,
		}
		return render(cmd.OutOrStdout(), catalog.NewSampleStore(), args[0], view, logger)
	},
}

func init() {
	renderCmd.Flags().StringSliceVarP(&renderOpts.include, "include", "i", nil, "relation paths to include")
	renderCmd.Flags().StringSliceVarP(&renderOpts.exclude, "exclude", "e", nil, "paths to exclude")
	renderCmd.Flags().StringVar(&renderOpts.alias, "alias", "", "name of the root wrapper")
	renderCmd.Flags().BoolVar(&renderOpts.indented, "indented", false, "pretty print the output")
	renderCmd.Flags().BoolVar(&renderOpts.withoutRoot, "without-root", false, "do not wrap the output under a root name")
}

func render(out io.Writer, store *catalog.Store, resource string, view catalog.View, logger *zap.Logger) error {
	value, err := store.Resolve(resource)
	if err != nil {
		return err
	}
	if err = view.Serialization(value).WithLogger(logger).Serialize(out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
