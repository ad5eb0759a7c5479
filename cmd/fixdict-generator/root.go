package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"fixdict-generator/internal/config"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/gen"
	"fixdict-generator/internal/orchestra"
	"fixdict-generator/internal/verify"
)

type options struct {
	output           string
	module           string
	orchestration    string
	packageName      string
	dictionaryImport string
	envFile          string
	verify           bool
	dumpModel        bool
	verbose          bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "fixdict-generator",
		Short: "Generate a Go FIX dictionary package from an Orchestra repository",
		Long: `Read a FIX Orchestra repository (.xml, or the equivalent .yaml form) and write one Go
source file declaring a type per field and message, plus Fields, Messages and Orchestration
accessors built on first use.

Flags left empty fall back to FIXDICT_OUTPUT, FIXDICT_MODULE, FIXDICT_ORCHESTRATION,
FIXDICT_PACKAGE and FIXDICT_DICTIONARY_IMPORT, read from the environment or a .env file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}

			opts.applyDefaults(env)

			if err := opts.validate(); err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "file to write the generated code to")
	flags.StringVarP(&opts.module, "module", "m", "", "protocol version name, e.g. FIX_4_4")
	flags.StringVar(&opts.orchestration, "orchestration", "", "orchestra repository to read (.xml, .yaml)")
	flags.StringVar(&opts.packageName, "package", "", "package name (default derived from --module)")
	flags.StringVar(&opts.dictionaryImport, "dictionary-import", "", "import path of the dictionary runtime package")
	flags.StringVar(&opts.envFile, "env-file", "", "file to read FIXDICT_* defaults from (default .env)")
	flags.BoolVar(&opts.verify, "verify", false, "type-check the written package")
	flags.BoolVar(&opts.dumpModel, "dump-model", false, "dump the loaded model to stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log informational diagnostics")

	return cmd
}

func (o *options) applyDefaults(env config.Config) {
	o.output = config.Or(o.output, env.Output)
	o.module = config.Or(o.module, env.Module)
	o.orchestration = config.Or(o.orchestration, env.Orchestration)
	o.packageName = config.Or(o.packageName, env.Package)
	o.dictionaryImport = config.Or(o.dictionaryImport, config.Or(env.DictionaryImport, gen.DefaultDictionaryImport))

	if o.packageName == "" {
		o.packageName = gen.PackageNameFor(o.module)
	}
}

func (o *options) validate() error {
	var errs []error

	if o.output == "" {
		errs = append(errs, errors.New("--output is required"))
	}

	if o.module == "" {
		errs = append(errs, errors.New("--module is required"))
	}

	if o.orchestration == "" {
		errs = append(errs, errors.New("--orchestration is required"))
	}

	return errors.Join(errs...)
}

func run(stdout, stderr io.Writer, opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fmt.Fprintf(stdout, "generating code in %s\n", opts.output)
	fmt.Fprintf(stdout, "generating module %s\n", opts.module)
	fmt.Fprintf(stdout, "from orchestration %s\n", opts.orchestration)

	model, err := orchestra.LoadFile(opts.orchestration)
	if err != nil {
		return err
	}

	logger.Debug("loaded orchestration",
		slog.String("name", model.Name),
		slog.String("version", model.Version),
		slog.Int("fields", len(model.FieldsByTag)),
		slog.Int("messages", len(model.Messages)))

	if opts.dumpModel {
		spew.Fdump(stderr, model)
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = opts.packageName
	cfg.ModuleName = opts.module
	cfg.DictionaryImport = opts.dictionaryImport
	cfg.Source = filepath.ToSlash(opts.orchestration)
	cfg.OutputPath = opts.output

	generator := gen.NewGenerator(cfg)
	file, err := generator.Generate(model)

	logDiagnostics(logger, generator.Diagnostics())

	if err != nil {
		return err
	}

	if err := gen.WriteFile(file, opts.output); err != nil {
		return err
	}

	logger.Info("wrote dictionary",
		slog.String("path", opts.output),
		slog.String("package", opts.packageName),
		slog.Int("bytes", len(file.Content)))

	if !opts.verify {
		return nil
	}

	report, err := verify.Package(filepath.Dir(opts.output), ".", opts.dictionaryImport)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", opts.output, err)
	}

	if len(report.Fields) != len(model.FieldsByTag) || len(report.Messages) != len(model.Messages) {
		return fmt.Errorf("verifying %s: package declares %d fields and %d messages, model has %d and %d",
			report.PkgPath, len(report.Fields), len(report.Messages), len(model.FieldsByTag), len(model.Messages))
	}

	logger.Info("verified package",
		slog.String("package", report.PkgPath),
		slog.Int("fields", len(report.Fields)),
		slog.Int("messages", len(report.Messages)))

	return nil
}

func logDiagnostics(logger *slog.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		attrs := []any{
			slog.String("code", d.Code),
			slog.String("subject", d.Subject),
		}
		if d.Path != "" {
			attrs = append(attrs, slog.String("path", d.Path))
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			logger.Error(d.Message, attrs...)
		case diagnostic.DiagnosticWarning:
			logger.Warn(d.Message, attrs...)
		default:
			logger.Debug(d.Message, attrs...)
		}
	}
}
