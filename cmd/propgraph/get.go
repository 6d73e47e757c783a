package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"property-graph/internal/mapping"
	"property-graph/property"
)

func (c *cli) getCmd() *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "get <document> <path>",
		Short: "Print the value at a property path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}

			var value any

			if cmd.Flags().Changed("default") {
				value, err = property.GetOr(doc, args[1], fallback)
			} else {
				value, err = property.Get(doc, args[1])
			}

			if err != nil {
				return err
			}

			c.logger.Debug("read property", zap.String("path", args[1]), zap.Any("value", value))

			return c.print(cmd.OutOrStdout(), value, mapping.FormatYAML)
		},
	}

	cmd.Flags().StringVar(&fallback, "default", "", "Value to print when the path is missing")

	return cmd
}
