package dedupe_test

import (
	"errors"
	"strings"
	"testing"

	"bibmerge/internal/dedupe"
	"bibmerge/internal/render"
	"bibmerge/internal/testsupport"
)

type scriptedChooser struct {
	choice int
	err    error
	calls  int
	first  string
	second string
}

func (s *scriptedChooser) Choose(first, second string) (int, error) {
	s.calls++
	s.first, s.second = first, second
	return s.choice, s.err
}

func TestPolicySilentNeverPrompts(t *testing.T) {
	chooser := &scriptedChooser{choice: dedupe.ChoiceSecond}
	s := dedupe.DefaultSettings()
	s.Silent = true

	got, err := dedupe.NewPolicy(s, chooser).Resolve(testsupport.Record("A"), testsupport.Record("B"))
	if err != nil {
		t.Fatal(err)
	}
	if got != dedupe.KeepIncumbent {
		t.Fatalf("silent policy returned %s", got)
	}
	if chooser.calls != 0 {
		t.Fatal("silent policy consulted the chooser")
	}
}

func TestPolicyMapsChoices(t *testing.T) {
	tests := []struct {
		choice int
		want   dedupe.Resolution
	}{
		{dedupe.ChoiceFirst, dedupe.KeepIncumbent},
		{dedupe.ChoiceSecond, dedupe.KeepCandidate},
		{dedupe.ChoiceBoth, dedupe.KeepBoth},
	}
	for _, tt := range tests {
		chooser := &scriptedChooser{choice: tt.choice}
		got, err := dedupe.NewPolicy(dedupe.DefaultSettings(), chooser).Resolve(testsupport.Record("A"), testsupport.Record("B"))
		if err != nil {
			t.Fatalf("choice %d: %v", tt.choice, err)
		}
		if got != tt.want {
			t.Fatalf("choice %d resolved to %s, want %s", tt.choice, got, tt.want)
		}
	}
}

func TestPolicyRendersInConfiguredFormat(t *testing.T) {
	chooser := &scriptedChooser{choice: dedupe.ChoiceFirst}
	s := dedupe.DefaultSettings()
	s.Format = render.BibLaTeX

	incumbent := testsupport.Record("A", "journal", "Mind")
	candidate := testsupport.Record("B", "journal", "Noûs")
	if _, err := dedupe.NewPolicy(s, chooser).Resolve(incumbent, candidate); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(chooser.first, "@article{A,") || !strings.Contains(chooser.first, "journaltitle = {Mind}") {
		t.Fatalf("unexpected first rendering:\n%s", chooser.first)
	}
	if !strings.HasPrefix(chooser.second, "@article{B,") {
		t.Fatalf("unexpected second rendering:\n%s", chooser.second)
	}
}

func TestPolicyPropagatesChooserErrors(t *testing.T) {
	boom := errors.New("eof")
	chooser := &scriptedChooser{err: boom}
	if _, err := dedupe.NewPolicy(dedupe.DefaultSettings(), chooser).Resolve(testsupport.Record("A"), testsupport.Record("B")); !errors.Is(err, boom) {
		t.Fatalf("expected chooser error, got %v", err)
	}
}

func TestPolicyRejectsInvalidChoice(t *testing.T) {
	chooser := &scriptedChooser{choice: 4}
	if _, err := dedupe.NewPolicy(dedupe.DefaultSettings(), chooser).Resolve(testsupport.Record("A"), testsupport.Record("B")); err == nil {
		t.Fatal("expected error for out-of-range choice")
	}
}

func TestPolicyInteractiveWithoutChooser(t *testing.T) {
	if _, err := dedupe.NewPolicy(dedupe.DefaultSettings(), nil).Resolve(testsupport.Record("A"), testsupport.Record("B")); err == nil {
		t.Fatal("expected error when interactive policy has no chooser")
	}
}

func TestResolutionString(t *testing.T) {
	if dedupe.KeepBoth.String() != "keep-both" || dedupe.Resolution(9).String() != "unknown" {
		t.Fatal("unexpected resolution names")
	}
}
