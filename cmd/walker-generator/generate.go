package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"walker-generator/internal/artifact"
	"walker-generator/internal/config"
	"walker-generator/internal/emit"
	"walker-generator/internal/extract"
)

var (
	generateConfig string
	generateRoot   string
	generateOut    string
	generateDump   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Extract the schema and write the traversal artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := config.Load(generateConfig)
		if err != nil {
			return err
		}
		if generateRoot != "" {
			cfg.Root = generateRoot
		}
		if generateOut != "" {
			cfg.Out = generateOut
		}

		docs, err := run(logger, cfg, generateDump)
		if err != nil {
			return err
		}

		if err := artifact.WriteFiles(cfg.Out, docs); err != nil {
			return err
		}
		logger.Info("artifacts written",
			zap.String("dir", cfg.Out),
			zap.Int("files", len(docs)))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateConfig, "config", config.DefaultFile, "config file")
	generateCmd.Flags().StringVar(&generateRoot, "root", "", "schema root file (overrides config)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output directory (overrides config)")
	generateCmd.Flags().BoolVar(&generateDump, "dump", false, "dump the extracted lookup table")
	rootCmd.AddCommand(generateCmd)
}

// run extracts the schema, emits every declaration in sorted order
// and renders the documents. It does not touch the filesystem beyond
// reading schema files.
func run(logger *zap.Logger, cfg config.Config, dump bool) ([]artifact.Document, error) {
	logger.Info("extracting schema", zap.String("root", cfg.Root))
	lookup, pkg, err := extract.Extract(cfg.Root)
	if err != nil {
		return nil, err
	}
	logger.Info("schema extracted", zap.Int("declarations", lookup.Len()))

	if dump {
		for _, name := range lookup.Names() {
			decl, _ := lookup.Get(name)
			spew.Fdump(os.Stdout, decl)
		}
	}

	if cfg.Package != "" {
		pkg = cfg.Package
	}

	st := emit.NewState(pkg)
	for _, name := range lookup.Names() {
		decl, _ := lookup.Get(name)
		if err := emit.Generate(st, lookup, decl); err != nil {
			return nil, fmt.Errorf("failed to emit %s: %w", name, err)
		}
	}
	logger.Info("fragments emitted", zap.String("package", pkg))

	return artifact.Render(st, cfg.Artifacts)
}
