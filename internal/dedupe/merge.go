package dedupe

import (
	"fmt"
	"log/slog"

	"bibmerge/internal/bib"
	"bibmerge/internal/logging"
)

// Rename records a key rewritten by AllocateKey.
type Rename struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SourceStats summarizes how one source collection was folded in.
type SourceStats struct {
	Source            string   `json:"source"`
	Records           int      `json:"records"`
	Added             int      `json:"added"`
	Replaced          int      `json:"replaced"`
	DuplicatesRemoved int      `json:"duplicates_removed"`
	Renamed           []Rename `json:"renamed,omitempty"`
}

// Result is the outcome of MergeAll.
type Result struct {
	Collection        *bib.Collection
	DuplicatesRemoved int
	Sources           []SourceStats
}

// Merger folds source collections into a target collection.
type Merger struct {
	settings   Settings
	classifier Classifier
	resolver   Resolver
	logger     *slog.Logger
}

// Option customizes a Merger.
type Option func(*Merger)

// WithClassifier replaces the settings-bound classifier.
func WithClassifier(c Classifier) Option {
	return func(m *Merger) {
		if c != nil {
			m.classifier = c
		}
	}
}

// NewMerger constructs a Merger. A nil resolver means NewPolicy(s, nil),
// which only works in silent mode.
func NewMerger(s Settings, resolver Resolver, logger *slog.Logger, opts ...Option) *Merger {
	if resolver == nil {
		resolver = NewPolicy(s, nil)
	}
	m := &Merger{
		settings:   s,
		classifier: SettingsClassifier(s),
		resolver:   resolver,
		logger:     logging.NewComponentLogger(logger, "merge"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MergeAll folds every source, in order, into a new collection and sums the
// duplicates removed. On error the partial result is returned alongside it.
func (m *Merger) MergeAll(sources []*bib.Collection) (Result, error) {
	result := Result{Collection: bib.NewCollection("merged")}
	for _, source := range sources {
		stats, err := m.MergeOne(source, result.Collection)
		result.Sources = append(result.Sources, stats)
		result.DuplicatesRemoved += stats.DuplicatesRemoved
		if err != nil {
			return result, err
		}
	}
	m.logger.Info("merge completed",
		logging.Int("sources", len(sources)),
		logging.Int("records", result.Collection.Len()),
		logging.Int("duplicates_removed", result.DuplicatesRemoved),
		logging.String("algorithm", m.settings.Algorithm.String()),
		logging.Float64("threshold", m.settings.Threshold),
	)
	return result, nil
}

// MergeOne folds source into target and returns what happened. Records are
// taken in source order; target is scanned in insertion order.
func (m *Merger) MergeOne(source, target *bib.Collection) (SourceStats, error) {
	stats := SourceStats{Source: source.Source, Records: source.Len()}
	for _, candidate := range source.Records() {
		if candidate.Key == "" {
			panic(fmt.Sprintf("dedupe: record without key in source %q", source.Source))
		}
		if err := m.place(candidate, target, &stats); err != nil {
			return stats, fmt.Errorf("merge %s: %w", sourceLabel(source), err)
		}
	}
	m.logger.Info("source merged",
		logging.String(logging.FieldSource, sourceLabel(source)),
		logging.Int("records", stats.Records),
		logging.Int("added", stats.Added),
		logging.Int("replaced", stats.Replaced),
		logging.Int("duplicates_removed", stats.DuplicatesRemoved),
		logging.Int("renamed", len(stats.Renamed)),
	)
	return stats, nil
}

// place scans target for the first match of candidate and applies the
// verdict. KeepBoth does not end the scan; every other outcome does.
func (m *Merger) place(candidate *bib.Record, target *bib.Collection, stats *SourceStats) error {
	keep := true
	replaceKey := ""

scan:
	for _, incumbent := range target.Records() {
		match := m.classifier.Classify(candidate, incumbent)
		switch match.Verdict {
		case Distinct:
			continue
		case Identical:
			stats.DuplicatesRemoved++
			keep = false
			m.logDecision(candidate, incumbent, match, "drop-identical")
			break scan
		}

		resolution, err := m.resolver.Resolve(incumbent, candidate)
		if err != nil {
			return fmt.Errorf("resolve %s against %s: %w", candidate.Key, incumbent.Key, err)
		}
		m.logDecision(candidate, incumbent, match, resolution.String())

		switch resolution {
		case KeepBoth:
			continue
		case KeepCandidate:
			stats.DuplicatesRemoved++
			replaceKey = incumbent.Key
			break scan
		default:
			stats.DuplicatesRemoved++
			keep = false
			break scan
		}
	}

	if replaceKey != "" {
		target.Remove(replaceKey)
		stats.Replaced++
	}
	if !keep {
		return nil
	}

	key := AllocateKey(candidate.Key, target)
	if key != candidate.Key {
		stats.Renamed = append(stats.Renamed, Rename{From: candidate.Key, To: key})
		m.logger.Debug("citation key renamed",
			logging.String("from", candidate.Key),
			logging.String("to", key),
		)
		candidate = candidate.Clone()
		candidate.Key = key
	}
	if err := target.Insert(candidate); err != nil {
		return err
	}
	if replaceKey == "" {
		stats.Added++
	}
	return nil
}

func (m *Merger) logDecision(candidate, incumbent *bib.Record, match Match, result string) {
	attrs := logging.DecisionAttrs("duplicate", result, string(match.Rule))
	attrs = append(attrs,
		logging.String("candidate", candidate.Key),
		logging.String("incumbent", incumbent.Key),
	)
	if match.Rule == RuleSimilarTitle {
		attrs = append(attrs, logging.Float64("similarity", match.Score))
	}
	m.logger.Debug("duplicate detected", logging.Args(attrs...)...)
}

func sourceLabel(c *bib.Collection) string {
	if c.Source == "" {
		return "(unnamed source)"
	}
	return c.Source
}
