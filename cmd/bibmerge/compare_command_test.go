package main

import (
	"encoding/json"
	"testing"
)

func TestCompareTitlesTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"compare", "Graph Coloring", "Graph Colouring"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, name := range []string{"levenshtein", "damerau-levenshtein", "jaro", "jaro-winkler", "sorensen-dice", "cosine"} {
		requireContains(t, out, name)
	}
	requireContains(t, out, "≥ 1.00")
}

func TestCompareTitlesJSONUsesThresholdFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"compare", "Deep Things", "Deep Thing", "-t", "0.9", "--json"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	var results []comparison
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(results) != 6 {
		t.Fatalf("expected 6 algorithms, got %d", len(results))
	}
	if results[0].Algorithm != "levenshtein" || !results[0].Match {
		t.Fatalf("expected levenshtein match at 0.9, got %+v", results[0])
	}
}

func TestCompareTitlesStripsBraces(t *testing.T) {
	results := compareTitles("{GPU} Kernels", "GPU Kernels", 1)
	for _, result := range results {
		if result.Score != 1 || !result.Match {
			t.Fatalf("expected identical verbatim titles for %s, got %+v", result.Algorithm, result)
		}
	}
}

func TestCompareRequiresTwoTitles(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"compare", "only one"}, env.configPath, ""); err == nil {
		t.Fatal("expected argument error")
	}
}
