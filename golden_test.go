package abjad

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name         string `json:"name"`
	Input        string `json:"input"`
	Prefs        Prefs  `json:"prefs"`
	Total        uint   `json:"total"`
	Unrecognized int    `json:"unrecognized"`
}

const goldenPath = "testdata/golden.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			total, log := EvaluateCollect(tc.Input, tc.Prefs)
			if total != tc.Total {
				t.Errorf("EvaluateCollect(%q) total = %d, want %d", tc.Input, total, tc.Total)
			}
			if len(log) != tc.Unrecognized {
				t.Errorf("EvaluateCollect(%q) logged %d, want %d", tc.Input, len(log), tc.Unrecognized)
			}

			// Cross-mode checks: best effort always agrees, strict
			// agrees exactly when nothing was logged.
			if best := Evaluate(tc.Input, tc.Prefs); best != total {
				t.Errorf("Evaluate(%q) = %d, EvaluateCollect total = %d", tc.Input, best, total)
			}
			strict, err := EvaluateStrict(tc.Input, tc.Prefs)
			if tc.Unrecognized == 0 {
				if err != nil {
					t.Errorf("EvaluateStrict(%q) error: %v", tc.Input, err)
				} else if strict != total {
					t.Errorf("EvaluateStrict(%q) = %d, want %d", tc.Input, strict, total)
				}
			} else if err == nil {
				t.Errorf("EvaluateStrict(%q) succeeded, want error", tc.Input)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		total, log := EvaluateCollect(tc.Input, tc.Prefs)
		tc.Total = total
		tc.Unrecognized = len(log)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff testdata/golden.json")
}
