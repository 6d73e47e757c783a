package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"property-graph/internal/mapping"
	"property-graph/property"
)

func (c *cli) applyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <document> <sheet>",
		Short: "Assign every entry of a YAML or TOML property sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, format, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}

			sheet, err := mapping.LoadFile(args[1])
			if err != nil {
				return err
			}

			c.logger.Debug("loaded sheet",
				zap.String("path", sheet.Source),
				zap.Strings("paths", sheet.Paths()))

			if err := property.Apply(doc, sheet); err != nil {
				return err
			}

			return c.store(cmd.OutOrStdout(), args[0], doc, format)
		},
	}

	cmd.Flags().BoolVarP(&c.write, "write", "w", false, "Write the result back to the document")

	return cmd
}
