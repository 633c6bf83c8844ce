package dedupe

import (
	"bibmerge/internal/bib"
	"bibmerge/internal/textutil"
)

// Verdict is the outcome of comparing two records.
type Verdict int

const (
	Distinct Verdict = iota
	Identical
	Duplicate
)

// String returns a lowercase name for logs.
func (v Verdict) String() string {
	switch v {
	case Identical:
		return "identical"
	case Duplicate:
		return "duplicate"
	default:
		return "distinct"
	}
}

// Rule names the classification rule that produced a verdict.
type Rule string

const (
	RuleNone         Rule = ""
	RuleIdentical    Rule = "identical"
	RuleKey          Rule = "same_key"
	RuleDOI          Rule = "same_doi"
	RuleTitle        Rule = "same_title"
	RuleSimilarTitle Rule = "similar_title"
)

// Match is a verdict together with the rule that fired. Score is set only
// for RuleSimilarTitle.
type Match struct {
	Verdict Verdict
	Rule    Rule
	Score   float64
}

// Classifier compares an incoming record against one already in the target.
type Classifier interface {
	Classify(candidate, incumbent *bib.Record) Match
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(candidate, incumbent *bib.Record) Match

// Classify calls f.
func (f ClassifierFunc) Classify(candidate, incumbent *bib.Record) Match {
	return f(candidate, incumbent)
}

// SettingsClassifier binds Classify to s.
func SettingsClassifier(s Settings) Classifier {
	return ClassifierFunc(func(candidate, incumbent *bib.Record) Match {
		return Classify(candidate, incumbent, s)
	})
}

// Classify applies the duplicate rules in order and returns the first that
// fires:
//  1. field-set equality (Identical)
//  2. same key
//  3. same non-empty DOI
//  4. same non-empty verbatim title
//  5. title similarity at or above s.Threshold, when s.Threshold < 1
func Classify(candidate, incumbent *bib.Record, s Settings) Match {
	if candidate.Equal(incumbent) {
		return Match{Verdict: Identical, Rule: RuleIdentical}
	}
	if candidate.Key == incumbent.Key {
		return Match{Verdict: Duplicate, Rule: RuleKey}
	}
	if a, ok := candidate.DOI(); ok {
		if b, ok := incumbent.DOI(); ok && a == b {
			return Match{Verdict: Duplicate, Rule: RuleDOI}
		}
	}

	titleA, okA := candidate.Title()
	titleB, okB := incumbent.Title()
	if !okA || !okB {
		return Match{Verdict: Distinct}
	}
	if titleA == titleB {
		return Match{Verdict: Duplicate, Rule: RuleTitle}
	}
	if s.fuzzy() {
		score := textutil.Score(titleA, titleB, s.Algorithm)
		if score >= s.Threshold {
			return Match{Verdict: Duplicate, Rule: RuleSimilarTitle, Score: score}
		}
	}
	return Match{Verdict: Distinct}
}
