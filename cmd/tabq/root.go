package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vegasq/tabq/internal/config"
	"github.com/vegasq/tabq/internal/logging"
	"github.com/vegasq/tabq/output"
	"github.com/vegasq/tabq/query"
	"github.com/vegasq/tabq/reader"
	"github.com/vegasq/tabq/table"
)

var (
	errMissingInput   = errors.New("missing input: pass a file or a -q query")
	errSchemaAndQuery = errors.New("--schema and -q cannot be used together")
)

// options holds the raw flag values. Flags that were not set on the command
// line leave the loaded configuration untouched.
type options struct {
	query      string
	format     string
	limit      int
	schema     bool
	tables     []string
	configPath string
	logLevel   string
	logFormat  string
	maxWidth   int
}

const usageExamples = `  tabq people.csv
  tabq -f table people.csv.gz
  tabq -q 'filter(Age > 26, people)' people.csv
  tabq -q 'merge(Name, people, cities)' people.csv cities.parquet
  tabq -t p='data/*.csv' -q 'select([Name, _file], p)'
  tabq --schema data.parquet`

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tabq [flags] [files...]",
		Short: "Query delimited text and Parquet files",
		Long: `tabq loads tables from delimited text (optionally gzip, zstd, lz4 or brotli
compressed) and Parquet files, evaluates a query over them and prints the result.

Each positional file is registered as a source named after its base name without
extensions, so "data/people.csv.gz" becomes "people".

Query language:
  select([col, ...], q)      keep the listed columns, in order
  filter(cond, q)            keep rows where cond is true
  newcol(name, value, q)     append a constant column
  merge(key, q1, q2)         full outer merge on key

Conditions combine "col op literal" (op is = != < > <= >=) and
"col [not] like 'pattern'" with and, or and parentheses.`,
		Example:       usageExamples,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.query, "query", "q", "", "query to evaluate (default: the first file)")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: "+strings.Join(output.Formats(), ", "))
	flags.IntVar(&opts.limit, "limit", 0, "limit number of rows (0 = unlimited)")
	flags.BoolVar(&opts.schema, "schema", false, "show schema information instead of data")
	flags.StringArrayVarP(&opts.tables, "table", "t", nil, "register a source as name=path (path may be a glob)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: tabq.yaml in the working directory)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text, json")
	flags.IntVar(&opts.maxWidth, "max-width", 0, "truncate cells of the table format to this width (0 = no limit)")

	return cmd
}

// resolveConfig loads the configuration and overlays explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("limit") {
		cfg.Limit = opts.limit
	}
	if flags.Changed("max-width") {
		cfg.MaxWidth = opts.maxWidth
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.schema && opts.query != "" {
		return errSchemaAndQuery
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}, cmd.ErrOrStderr(), slog.String("run_id", uuid.NewString()))
	if err != nil {
		return err
	}

	formatter, err := output.New(cfg.Format, cmd.OutOrStdout(), output.Options{MaxWidth: cfg.MaxWidth})
	if err != nil {
		return err
	}

	if opts.schema {
		if len(args) == 0 {
			return errMissingInput
		}
		schema, err := describe(args[0])
		if err != nil {
			return err
		}
		return formatter.Format(schema)
	}

	catalog, sources, err := buildCatalog(cfg, opts.tables, args)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := evaluate(catalog, opts.query, sources)
	if err != nil {
		return err
	}
	result = result.Head(cfg.Limit)

	logger.Debug("query evaluated",
		slog.Int("rows", result.NumRows()),
		slog.Int("columns", result.NumColumns()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return formatter.Format(result)
}

// buildCatalog registers configured sources, -t sources and positional
// files, in that order, and returns the positional source names.
func buildCatalog(cfg *config.Config, tables, files []string) (*reader.Catalog, []string, error) {
	catalog := reader.NewCatalog()

	for name, path := range cfg.Sources {
		if err := query.ValidateSourceName(name); err != nil {
			return nil, nil, fmt.Errorf("config source %q: %w", name, err)
		}
		catalog.Register(name, path)
	}

	for _, arg := range tables {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return nil, nil, fmt.Errorf("invalid -t value %q: want name=path", arg)
		}
		if err := query.ValidateSourceName(name); err != nil {
			return nil, nil, fmt.Errorf("-t %q: %w", arg, err)
		}
		catalog.Register(name, path)
	}

	sources := make([]string, 0, len(files))
	for _, path := range files {
		sources = append(sources, catalog.RegisterFile(path))
	}

	slog.Debug("sources registered", slog.Any("names", catalog.Names()))
	return catalog, sources, nil
}

// evaluate parses and runs text, or returns the first source unchanged when
// no query is given.
func evaluate(catalog *reader.Catalog, text string, sources []string) (*table.Table, error) {
	if text == "" {
		if len(sources) == 0 {
			return nil, errMissingInput
		}
		return catalog.Resolve(sources[0])
	}

	q, err := query.Parse(text, catalog)
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	slog.Debug("query parsed", slog.String("query", q.String()))

	return query.Eval(q)
}

// describe summarises a file or every file matched by a glob.
func describe(path string) (*table.Table, error) {
	if !reader.IsGlob(path) {
		return reader.DescribeFile(path)
	}
	t, err := reader.LoadMultiple(path)
	if err != nil {
		return nil, err
	}
	return reader.Describe(t), nil
}
