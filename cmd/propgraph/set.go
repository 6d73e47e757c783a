package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"property-graph/property"
)

func (c *cli) setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <document> <path>=<value>...",
		Short: "Assign values to property paths",
		Long: `Assign values to property paths. Values are read as YAML scalars, so
"port=8080" stores a number and "name='8080'" a string.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, format, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}

			for _, arg := range args[1:] {
				path, value, err := parseAssignment(arg)
				if err != nil {
					return err
				}

				if err := property.Set(doc, path, value); err != nil {
					return err
				}

				c.logger.Debug("set property", zap.String("path", path), zap.Any("value", value))
			}

			return c.store(cmd.OutOrStdout(), args[0], doc, format)
		},
	}

	cmd.Flags().BoolVarP(&c.write, "write", "w", false, "Write the result back to the document")

	return cmd
}

// parseAssignment splits "path=value" and decodes value as a YAML scalar.
func parseAssignment(arg string) (string, any, error) {
	path, raw, ok := strings.Cut(arg, "=")
	if !ok || path == "" {
		return "", nil, fmt.Errorf("invalid assignment %q: expected path=value", arg)
	}

	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return path, raw, nil
	}

	return path, value, nil
}
