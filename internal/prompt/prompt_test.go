package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"bibmerge/internal/bib"
	"bibmerge/internal/dedupe"
)

func TestChooseAcceptsValidChoices(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1\n", dedupe.ChoiceFirst},
		{"2\n", dedupe.ChoiceSecond},
		{" 3 \n", dedupe.ChoiceBoth},
		{"2", dedupe.ChoiceSecond},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tt.input), &out)
			got, err := term.Choose("@article{a,\n}", "@article{b,\n}")
			if err != nil {
				t.Fatalf("Choose returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestChoosePrintsBothEntries(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("1\n"), &out)
	if _, err := term.Choose("FIRST", "SECOND"); err != nil {
		t.Fatalf("Choose returned error: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Entries:", "1- FIRST", "2- SECOND", questionSuffix, repeatPrompt} {
		if !strings.Contains(text, want) {
			t.Fatalf("prompt missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Fatalf("expected no color for buffer output:\n%q", text)
	}
}

func TestChooseRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("yes\n0\n4\n\n3\n"), &out)
	got, err := term.Choose("a", "b")
	if err != nil {
		t.Fatalf("Choose returned error: %v", err)
	}
	if got != dedupe.ChoiceBoth {
		t.Fatalf("got %d want %d", got, dedupe.ChoiceBoth)
	}
	if n := strings.Count(out.String(), invalidChoice); n != 4 {
		t.Fatalf("expected 4 invalid notices, got %d:\n%s", n, out.String())
	}
}

func TestChooseEndOfInput(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("maybe\n"), &out)
	_, err := term.Choose("a", "b")
	if !errors.Is(err, ErrNoChoice) {
		t.Fatalf("expected ErrNoChoice, got %v", err)
	}
}

func TestChooseReadError(t *testing.T) {
	boom := errors.New("boom")
	term := NewTerminal(iotest.ErrReader(boom), io.Discard)
	_, err := term.Choose("a", "b")
	if !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestTerminalDrivesPolicy(t *testing.T) {
	settings := dedupe.DefaultSettings()
	var out bytes.Buffer
	policy := dedupe.NewPolicy(settings, NewTerminal(strings.NewReader("2\n"), &out))

	incumbent := bib.NewRecord("a", "article")
	incumbent.Set("title", "Same")
	candidate := bib.NewRecord("b", "article")
	candidate.Set("title", "Same")

	resolution, err := policy.Resolve(incumbent, candidate)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolution != dedupe.KeepCandidate {
		t.Fatalf("got %v want keep-candidate", resolution)
	}
	if !strings.Contains(out.String(), "@article{a,") || !strings.Contains(out.String(), "@article{b,") {
		t.Fatalf("expected both renderings in prompt:\n%s", out.String())
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatal("expected non-file writer to disable color")
	}
}
