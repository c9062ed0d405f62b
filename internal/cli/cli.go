// Package cli implements zfake's command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfake/internal/export"
	"github.com/zarlcorp/zfake/internal/fake"
	"github.com/zarlcorp/zfake/internal/record"
)

// envPrefix prefixes environment variables that default flags,
// e.g. ZFAKE_FORMAT=csv.
const envPrefix = "ZFAKE"

// Defaults for a bare invocation.
const (
	DefaultFields = "name,email,address"
	DefaultCount  = 10
	DefaultFormat = "json"
)

// Options are the parameters of one generate-and-save run.
type Options struct {
	Fields string
	Count  int
	Format string
	Output string
	Domain string
}

// OutputPath returns the destination file, defaulting to output.<format>.
func (o Options) OutputPath() string {
	if o.Output != "" {
		return o.Output
	}
	return "output." + strings.ToLower(strings.TrimSpace(o.Format))
}

// Run generates a dataset and writes it to disk. The format is checked
// before any record is generated.
func Run(ctx context.Context, opts Options) (export.Summary, error) {
	if _, _, err := export.Lookup(opts.Format); err != nil {
		return export.Summary{}, err
	}

	gen := record.NewGenerator(fake.New(opts.Domain), slog.Default())
	ds, err := gen.GenerateString(ctx, opts.Fields, opts.Count)
	if err != nil {
		return export.Summary{}, err
	}

	path := opts.OutputPath()
	fsys, name, err := OutputFS(path)
	if err != nil {
		return export.Summary{}, err
	}

	sum, err := export.Save(fsys, ds, opts.Format, name)
	if err != nil {
		return export.Summary{}, err
	}
	sum.Path = path
	return sum, nil
}

// OutputFS returns a filesystem rooted at the directory containing path and
// the file name within it.
func OutputFS(path string) (zfilesystem.ReadWriteFileFS, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve output %s: %w", path, err)
	}
	return zfilesystem.NewOSFileSystem(filepath.Dir(abs)), filepath.Base(abs), nil
}

// NewRootCmd builds the zfake command tree.
func NewRootCmd(version string, stdout, stderr io.Writer) *cobra.Command {
	opts := &Options{}
	var verbose bool

	cmd := &cobra.Command{
		Use:   "zfake",
		Short: "Generate synthetic records and save them as CSV, XML, JSON, JSONL or YAML",
		Long: `zfake generates placeholder datasets from a list of field names.

Every flag can also be set through the environment as ZFAKE_<FLAG>,
for example ZFAKE_FORMAT=csv. Flags given on the command line win.`,
		Example: `  zfake --fields name,email --count 3 --format json
  zfake --fields name,ssn,date_of_birth --format csv --output people.csv
  ZFAKE_FORMAT=xml zfake --count 100`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := setAllConfig(viper.New(), cmd.Flags()); err != nil {
				return err
			}
			configureLogging(stderr, verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := Run(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, sum)
			return nil
		},
	}

	addGenerateFlags(cmd.Flags(), opts)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newFieldsCmd(stdout))
	cmd.AddCommand(newFormatsCmd(stdout))
	cmd.AddCommand(newVersionCmd(version, stdout))

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func addGenerateFlags(flags *pflag.FlagSet, opts *Options) {
	flags.StringVarP(&opts.Fields, "fields", "f", DefaultFields, "comma-separated field names (see 'zfake fields')")
	flags.IntVarP(&opts.Count, "count", "n", DefaultCount, "number of records to generate")
	flags.StringVarP(&opts.Format, "format", "t", DefaultFormat, "output format (see 'zfake formats')")
	flags.StringVarP(&opts.Output, "output", "o", "", "output file (default output.<format>)")
	flags.StringVar(&opts.Domain, "domain", fake.DefaultDomain, "domain for generated email addresses")
}

func newFieldsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List supported field names with a sample value",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f := fake.New("")
			for _, name := range fake.Fields() {
				sample, _ := f.Value(name)
				fmt.Fprintf(stdout, "  %-14s %s\n", name, truncate(sample, 48))
			}
			return nil
		},
	}
}

func newFormatsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range export.Formats() {
				fmt.Fprintf(stdout, "  %s\n", name)
			}
			return nil
		},
	}
}

func newVersionCmd(version string, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the zfake version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintf(stdout, "zfake %s\n", version)
			return nil
		},
	}
}

// setAllConfig fills every flag the user did not set from ZFAKE_* environment
// variables. Variable names are the upper-cased flag names with dashes
// replaced by underscores.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil {
			flagErr = fmt.Errorf("%s_%s: %w", envPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err)
		}
	})
	return flagErr
}

func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
