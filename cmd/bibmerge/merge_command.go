package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bibmerge/internal/bibfile"
	"bibmerge/internal/config"
	"bibmerge/internal/dedupe"
	"bibmerge/internal/logging"
	"bibmerge/internal/prompt"
	"bibmerge/internal/render"
	"bibmerge/internal/textutil"
)

type mergeOptions struct {
	output    string
	threshold float64
	algorithm string
	silent    bool
	biblatex  bool
	json      bool
	noBackup  bool
}

func (o *mergeOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.output, "output", "o", "", "Output file (must end in .bib)")
	flags.Float64VarP(&o.threshold, "threshold", "t", 1, "Title similarity threshold between 0 and 1; 1 disables fuzzy matching")
	flags.StringVarP(&o.algorithm, "algorithm", "a", "", "Similarity algorithm ("+algorithmList()+")")
	flags.BoolVarP(&o.silent, "silent", "s", false, "Keep the first entry of every duplicate pair without asking")
	flags.BoolVarP(&o.biblatex, "biblatex", "b", false, "Write BibLaTeX instead of BibTeX")
	flags.BoolVar(&o.json, "json", false, "Print the run summary as JSON")
	flags.BoolVar(&o.noBackup, "no-backup", false, "Do not copy an existing output file to .bak")
}

func newMergeCommand(ctx *commandContext) *cobra.Command {
	opts := &mergeOptions{}
	cmd := &cobra.Command{
		Use:   "merge DIR",
		Short: "Merge every .bib file in DIR into one deduplicated bibliography",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, ctx, args[0], opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

type mergeSummary struct {
	RunID             string               `json:"run_id"`
	Inputs            []string             `json:"inputs"`
	Output            bibfile.WriteResult  `json:"output"`
	Records           int                  `json:"records"`
	DuplicatesRemoved int                  `json:"duplicates_removed"`
	Threshold         float64              `json:"threshold"`
	Algorithm         string               `json:"algorithm"`
	Format            string               `json:"format"`
	Sources           []dedupe.SourceStats `json:"sources"`
}

func runMerge(cmd *cobra.Command, ctx *commandContext, dir string, opts *mergeOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	settings, err := settingsFromConfig(cfg, opts, cmd)
	if err != nil {
		return err
	}
	outputPath, err := resolveOutputPath(cfg, opts, dir)
	if err != nil {
		return err
	}

	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	runCtx := logging.WithRunID(cmd.Context(), runID)
	logger = logging.WithContext(runCtx, logger)

	paths, err := bibfile.Discover(dir, config.OutputPrefix)
	if err != nil {
		return err
	}
	logger.Info("merge started",
		logging.String("dir", dir),
		logging.Int("inputs", len(paths)),
		logging.Float64("threshold", settings.Threshold),
		logging.String("algorithm", settings.Algorithm.String()),
		logging.Bool("silent", settings.Silent),
	)

	sources, err := bibfile.ReadAll(paths, logger)
	if err != nil {
		return err
	}

	var resolver dedupe.Resolver
	if !settings.Silent {
		// Stdout carries only the JSON document when --json is set.
		promptOut := cmd.OutOrStdout()
		if opts.json {
			promptOut = cmd.ErrOrStderr()
		}
		resolver = dedupe.NewPolicy(settings, prompt.NewTerminal(cmd.InOrStdin(), promptOut))
	}
	result, err := dedupe.NewMerger(settings, resolver, logger).MergeAll(sources)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	written, err := bibfile.Write(runCtx, outputPath, result.Collection, settings.Format, bibfile.WriteOptions{
		Backup: cfg.Output.Backup && !opts.noBackup,
	})
	if err != nil {
		return err
	}
	logger.Info("merge written",
		logging.String("output", written.Path),
		logging.Int("records", written.Records),
		logging.Int("bytes", written.Bytes),
	)

	summary := mergeSummary{
		RunID:             runID,
		Inputs:            paths,
		Output:            written,
		Records:           result.Collection.Len(),
		DuplicatesRemoved: result.DuplicatesRemoved,
		Threshold:         settings.Threshold,
		Algorithm:         settings.Algorithm.String(),
		Format:            settings.Format.String(),
		Sources:           result.Sources,
	}
	if opts.json {
		return writeJSON(cmd, summary)
	}
	printMergeSummary(cmd, summary)
	return nil
}

// settingsFromConfig layers explicitly set flags over the loaded config.
func settingsFromConfig(cfg *config.Config, opts *mergeOptions, cmd *cobra.Command) (dedupe.Settings, error) {
	settings := dedupe.DefaultSettings()

	threshold := cfg.Merge.SimilarityThreshold
	if cmd.Flags().Changed("threshold") {
		threshold = opts.threshold
	}
	if err := config.ValidateThreshold(threshold); err != nil {
		return settings, err
	}
	settings.Threshold = threshold

	algorithmName := cfg.Merge.Algorithm
	if strings.TrimSpace(opts.algorithm) != "" {
		algorithmName = opts.algorithm
	}
	algorithm, err := textutil.ParseAlgorithm(algorithmName)
	if err != nil {
		return settings, err
	}
	settings.Algorithm = algorithm

	settings.Silent = cfg.Merge.Silent
	if cmd.Flags().Changed("silent") {
		settings.Silent = opts.silent
	}

	formatName := cfg.Output.Format
	if opts.biblatex {
		formatName = render.BibLaTeX.String()
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return settings, err
	}
	settings.Format = format
	return settings, nil
}

// resolveOutputPath picks the flag, then the config, then the default file
// inside dir.
func resolveOutputPath(cfg *config.Config, opts *mergeOptions, dir string) (string, error) {
	path := strings.TrimSpace(opts.output)
	if path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		path = expanded
	} else if cfg.Output.Path != "" {
		path = cfg.Output.Path
	} else {
		path = filepath.Join(dir, config.DefaultOutputFileName)
	}
	if err := config.ValidateOutputPath(path); err != nil {
		return "", err
	}
	return path, nil
}

func printMergeSummary(cmd *cobra.Command, summary mergeSummary) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	rows := make([][]string, 0, len(summary.Sources))
	for _, source := range summary.Sources {
		rows = append(rows, []string{
			source.Source,
			strconv.Itoa(source.Records),
			strconv.Itoa(source.Added),
			strconv.Itoa(source.Replaced),
			strconv.Itoa(source.DuplicatesRemoved),
			strconv.Itoa(len(source.Renamed)),
		})
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(
		[]string{"Source", "Entries", "Added", "Replaced", "Duplicates", "Renamed"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
	))

	fmt.Fprintln(out, renderStatusLine("Output", statusOK,
		fmt.Sprintf("%s (%d entries, %s)", summary.Output.Path, summary.Records, humanize.Bytes(uint64(summary.Output.Bytes))), colorize))
	if summary.Output.BackupPath != "" {
		fmt.Fprintln(out, renderStatusLine("Backup", statusInfo, summary.Output.BackupPath, colorize))
	}
	kind := statusOK
	if summary.DuplicatesRemoved > 0 {
		kind = statusWarn
	}
	fmt.Fprintln(out, renderStatusLine("Repetitions", kind, strconv.Itoa(summary.DuplicatesRemoved), colorize))
	fmt.Fprintf(out, "Found %d repetitions in the bibliography.\n", summary.DuplicatesRemoved)
}

func algorithmList() string {
	names := make([]string, 0, len(textutil.Algorithms()))
	for _, alg := range textutil.Algorithms() {
		names = append(names, alg.String())
	}
	return strings.Join(names, ", ")
}
