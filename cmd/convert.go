package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/csv2bib/convert"
	"github.com/lehigh-university-libraries/csv2bib/format"
	"github.com/lehigh-university-libraries/csv2bib/format/csv"
	"github.com/lehigh-university-libraries/csv2bib/mapping"
	"github.com/lehigh-university-libraries/csv2bib/pipeline"
)

type convertOptions struct {
	delimiter     string
	lazy          bool
	bibtex        bool
	biblatex      bool
	outputFormat  string
	fieldMappings []string
	verbatim      []string
	noDefaults    bool
	profileName   string
	profileFile   string
	encoding      string
	limit         int
}

var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a CSV file to BibTeX/BibLaTeX",
		Long: `Convert every row of a CSV file to a bibliography entry.

Use "-" as input or output for stdin/stdout. The output syntax is taken from
--format, --bibtex or --biblatex, else from the output file extension
(.bib: BibLaTeX, .bibtex: BibTeX, .json/.jsonl: JSON lines), else BibLaTeX.

Field mappings have the form field=template, where the template may
reference CSV columns as [[Column Name]]:

  -f 'title=[[Document Title]]' -f 'pages=[[Start Page]]--[[End Page]]'

Two fields are special: "bibtexkey" sets the entry key (default: entry_<row>)
and "entrytype" the entry type (default: article). Unless --no-defaults is
given, common fields such as title, author and journal are mapped from
columns of the same name; run "csv2bib defaults" to see them.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.delimiter, "delimiter", "d", "", `Cell delimiter; "\t" for tab (default "," or tab for .tsv files)`)
	f.BoolVarP(&opts.lazy, "lazy", "l", false, "Skip malformed rows instead of aborting")
	f.BoolVar(&opts.bibtex, "bibtex", false, "Write BibTeX")
	f.BoolVar(&opts.biblatex, "biblatex", false, "Write BibLaTeX (default)")
	f.StringVar(&opts.outputFormat, "format", "", "Output format by name (biblatex, bibtex, json)")
	f.StringArrayVarP(&opts.fieldMappings, "field-mapping", "f", nil, "Field mapping field=template (repeatable)")
	f.StringArrayVar(&opts.verbatim, "verbatim-field", nil, "Field written verbatim, like url or doi (repeatable)")
	f.BoolVar(&opts.noDefaults, "no-defaults", false, "Don't add default field mappings and verbatim fields")
	f.StringVarP(&opts.profileName, "profile", "p", "", "Mapping profile name (see 'csv2bib profiles list')")
	f.StringVar(&opts.profileFile, "profile-file", "", "Mapping profile YAML file")
	f.StringVar(&opts.encoding, "encoding", "", "Input text encoding, e.g. windows-1252 (default utf-8)")
	f.IntVarP(&opts.limit, "limit", "n", 0, "Stop after this many entries")

	cmd.MarkFlagsMutuallyExclusive("bibtex", "biblatex", "format")
	cmd.MarkFlagsMutuallyExclusive("profile", "profile-file")

	return cmd
}

// runSettings is the merged result of flags and profile.
type runSettings struct {
	mapping    mapping.Mapping
	verbatim   mapping.FieldSet
	delimiter  rune
	lazy       bool
	encoding   string
	serializer format.Serializer
}

func runConvert(cmd *cobra.Command, opts *convertOptions, inputPath, outputPath string) (err error) {
	settings, err := resolveSettings(cmd, opts, inputPath, outputPath)
	if err != nil {
		return err
	}

	var input io.Reader
	if inputPath == "-" {
		input = cmd.InOrStdin()
	} else {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		input = f
	}

	src, err := csv.NewReader(input, csv.Options{
		Delimiter: settings.delimiter,
		Lazy:      settings.lazy,
		Encoding:  settings.encoding,
	})
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	slog.Debug("CSV header", "columns", len(src.Header()), "names", src.Header())

	conv := convert.New(settings.mapping, settings.verbatim)
	missing := conv.MissingColumns(src.Header())
	for _, field := range convert.SortedKeys(missing) {
		slog.Debug("mapped columns not in input", "field", field, "columns", missing[field])
	}
	if len(missing) > 0 {
		slog.Warn("mapped columns missing from input",
			"fields", strings.Join(convert.SortedKeys(missing), ", "))
	}

	var output io.Writer
	if outputPath == "-" {
		output = cmd.OutOrStdout()
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		slog.Info("writing output", "file", outputPath, "format", settings.serializer.Name())
		output = f
	}

	buf := bufio.NewWriter(output)
	writer := format.NewWriter(buf, settings.serializer)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	sum, runErr := pipeline.Run(ctx, src, conv, writer, pipeline.Options{
		Lazy:  settings.lazy,
		Limit: opts.limit,
	})

	if ferr := buf.Flush(); ferr != nil && runErr == nil {
		runErr = fmt.Errorf("writing %s: %w", outputPath, ferr)
	}
	if runErr != nil {
		return runErr
	}

	attrs := []any{
		"entries", humanize.Comma(int64(sum.Written)),
		"elapsed", sum.Elapsed.String(),
	}
	if sum.Skipped > 0 {
		attrs = append(attrs, "skipped", humanize.Comma(int64(sum.Skipped)))
	}
	slog.Info("conversion finished", attrs...)

	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resolveSettings merges profile and flags. Flags win over the profile and
// explicit mappings win over defaults.
func resolveSettings(cmd *cobra.Command, opts *convertOptions, inputPath, outputPath string) (*runSettings, error) {
	profile, err := loadProfile(opts)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	s := &runSettings{
		mapping:  mapping.Mapping{},
		verbatim: mapping.NewFieldSet(opts.verbatim...),
		lazy:     opts.lazy,
		encoding: opts.encoding,
	}

	if err := mapping.ParseAssignments(s.mapping, opts.fieldMappings); err != nil {
		return nil, err
	}

	noDefaults := opts.noDefaults
	delimiter := opts.delimiter
	if profile != nil {
		slog.Debug("using profile", "name", profile.Name)
		profile.Apply(s.mapping, s.verbatim)
		if !cmd.Flags().Changed("lazy") {
			s.lazy = profile.Lazy
		}
		if !cmd.Flags().Changed("no-defaults") {
			noDefaults = profile.NoDefaults
		}
		if delimiter == "" {
			delimiter = profile.Delimiter
		}
		if s.encoding == "" {
			s.encoding = profile.Encoding
		}
	}

	if !noDefaults {
		s.mapping, s.verbatim = mapping.WithDefaults(s.mapping, s.verbatim)
	}

	if delimiter == "" {
		s.delimiter = csv.DefaultDelimiter(inputPath)
	} else {
		s.delimiter, err = csv.ParseDelimiter(delimiter)
		if err != nil {
			return nil, err
		}
	}

	s.serializer, err = selectSerializer(opts, outputPath)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func selectSerializer(opts *convertOptions, outputPath string) (format.Serializer, error) {
	switch {
	case opts.outputFormat != "":
		return format.GetSerializer(opts.outputFormat)
	case opts.bibtex:
		return format.GetSerializer("bibtex")
	case opts.biblatex:
		return format.GetSerializer("biblatex")
	}

	if s, err := format.DetectSerializer(outputPath); err == nil {
		return s, nil
	}
	return format.GetSerializer("biblatex")
}

func loadProfile(opts *convertOptions) (*mapping.Profile, error) {
	if opts.profileFile != "" {
		return mapping.LoadProfile(opts.profileFile)
	}
	if opts.profileName == "" {
		return nil, nil
	}

	registry, err := profileRegistry()
	if err != nil {
		return nil, err
	}
	p, ok := registry.Get(opts.profileName)
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s (available: %s)", opts.profileName, strings.Join(registry.List(), ", "))
	}
	return p, nil
}

// profileRegistry returns the embedded profiles overlaid with the user's.
func profileRegistry() (*mapping.ProfileRegistry, error) {
	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return nil, err
	}
	if err := registry.LoadUserProfiles(); err != nil {
		return nil, err
	}
	return registry, nil
}
