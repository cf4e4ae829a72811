package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"charedit/internal/analyze"
	"charedit/internal/diagnostic"
	"charedit/internal/gen"
)

// errStale is returned by generate --check when the table on disk differs.
var errStale = errors.New("generated table is stale")

type options struct {
	verbose bool
	logger  *zap.Logger
}

// newRootCmd builds the command tree. A logger preset in opts is used as is.
func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathgen",
		Short:         "Generate path tables for record packages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			opts.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(opts), newPathsCmd(opts))

	return root
}

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		pkg   string
		out   string
		name  string
		file  string
		check bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the path table of a package",
		Long: `Loads the package, walks its exported structs and writes a PathField and
PathFieldNames method for each of them. Fields of unsupported shapes (maps,
interfaces, slices of non-structs, types from other packages) are reported
and make the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, pkgInfo, err := loadPackage(pkg)
			if err != nil {
				return err
			}

			cfg := gen.DefaultGeneratorConfig()
			cfg.PackageName = name
			cfg.Filename = file
			cfg.OutputDir = out

			if cfg.OutputDir == "" {
				cfg.OutputDir = pkgInfo.Dir
			}

			g := gen.NewGenerator(cfg)
			generated, err := g.Generate(graph, pkgInfo.Path)

			logDiagnostics(opts.logger, g.Diagnostics())

			if err != nil {
				return err
			}

			if gen.Unchanged(generated, cfg.OutputDir) {
				opts.logger.Info("path table is up to date", zap.String("package", pkgInfo.Path))
				return nil
			}

			if check {
				return fmt.Errorf("%w: %s in %s", errStale, generated.Filename, cfg.OutputDir)
			}

			path, err := gen.WriteFile(generated, cfg.OutputDir)
			if err != nil {
				return err
			}

			opts.logger.Info("path table written",
				zap.String("package", pkgInfo.Path),
				zap.String("file", path))

			return nil
		},
	}

	cmd.Flags().StringVar(&pkg, "pkg", ".", "package pattern to load")
	cmd.Flags().StringVar(&out, "out", "", "output directory (default: the package directory)")
	cmd.Flags().StringVar(&name, "name", "", "package name of the generated file (default: the loaded package name)")
	cmd.Flags().StringVar(&file, "file", "paths_gen.go", "name of the generated file")
	cmd.Flags().BoolVar(&check, "check", false, "fail instead of writing when the table is stale")

	return cmd
}

func newPathsCmd(opts *options) *cobra.Command {
	var (
		pkg   string
		root  string
		depth int
	)

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List every leaf path of a record type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, pkgInfo, err := loadPackage(pkg)
			if err != nil {
				return err
			}

			stringer := analyze.NewTypeStringer()

			t := graph.GetType(analyze.TypeID{PkgPath: pkgInfo.Path, Name: root})
			if t == nil || t.Kind != analyze.TypeKindStruct {
				return fmt.Errorf("%s is not a struct of %s", root, pkgInfo.Path)
			}

			paths := stringer.PathTemplates(t, depth)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			opts.logger.Debug("listed paths", zap.String("root", root), zap.Int("count", len(paths)))

			return nil
		},
	}

	cmd.Flags().StringVar(&pkg, "pkg", ".", "package pattern to load")
	cmd.Flags().StringVar(&root, "root", "Character", "root struct")
	cmd.Flags().IntVar(&depth, "depth", 16, "maximum nesting depth")

	return cmd
}

// loadPackage loads exactly one package.
func loadPackage(pattern string) (*analyze.TypeGraph, *analyze.PackageInfo, error) {
	graph, err := analyze.NewAnalyzer().LoadPackages(pattern)
	if err != nil {
		return nil, nil, err
	}

	if len(graph.Packages) != 1 {
		return nil, nil, fmt.Errorf("pattern %q matches %d packages, want 1", pattern, len(graph.Packages))
	}

	for _, p := range graph.Packages {
		return graph, p, nil
	}

	return nil, nil, fmt.Errorf("pattern %q matches no package", pattern)
}

func logDiagnostics(logger *zap.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := d.ZapFields()

		switch d.Severity {
		case diagnostic.SeverityError:
			logger.Error(d.Message, fields...)
		case diagnostic.SeverityWarning:
			logger.Warn(d.Message, fields...)
		default:
			logger.Debug(d.Message, fields...)
		}
	}
}
