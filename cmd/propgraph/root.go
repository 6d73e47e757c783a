package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"property-graph/internal/mapping"
)

// cli holds the flags shared by every command.
type cli struct {
	verbose bool
	dump    bool
	write   bool

	logger *zap.Logger
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "propgraph",
		Short: "Read and write dotted property paths of YAML and TOML documents",
		Long: `propgraph navigates documents with dotted property paths such as
"server.http.port". Missing tables are created when a value is set.`,
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.setupLogger()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log every step to stderr")
	rootCmd.PersistentFlags().BoolVar(&c.dump, "dump", false, "Print values as a Go dump instead of YAML")

	rootCmd.AddCommand(c.getCmd())
	rootCmd.AddCommand(c.setCmd())
	rootCmd.AddCommand(c.applyCmd())

	return rootCmd
}

func (c *cli) setupLogger() {
	if !c.verbose {
		c.logger = zap.NewNop()
		return
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		// fall back to nop logger
		logger = zap.NewNop()
	}

	c.logger = logger
}

func (c *cli) loadDocument(path string) (map[string]any, mapping.Format, error) {
	doc, format, err := mapping.LoadDocument(path)
	if err != nil {
		return nil, format, err
	}

	c.logger.Debug("loaded document",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("keys", len(doc)))

	return doc, format, nil
}

// print writes v as YAML, or as a spew dump with --dump.
func (c *cli) print(w io.Writer, v any, format mapping.Format) error {
	if c.dump {
		dumper.Fdump(w, v)
		return nil
	}

	return mapping.EncodeDocument(w, v, format)
}

// store prints the updated document, or writes it back with --write.
func (c *cli) store(w io.Writer, path string, doc map[string]any, format mapping.Format) error {
	if !c.write {
		return c.print(w, doc, format)
	}

	if err := mapping.WriteDocument(path, doc, format); err != nil {
		return err
	}

	c.logger.Info("document written", zap.String("path", path))

	return nil
}
