package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kuandriy/pathguide/internal/config"
)

// Report is a one-shot snapshot written after a demo run ends, the same
// diagnostic role cmd/focus's --status subcommand played for its own tree,
// but here it is not resumable state — SPEC_FULL.md §13 explicitly keeps
// spec.md's Non-goal that no guide reloads a tree from disk.
type Report struct {
	RunName             string  `json:"runName"`
	Guide               string  `json:"guide"`
	Seed                int64   `json:"seed"`
	Traversals          int     `json:"traversals"`
	NodeCount           int     `json:"nodeCount"`
	MaxFullyExploredLvl int     `json:"maxFullyExploredLevel,omitempty"`
	Exhausted           bool    `json:"exhausted"`
	DistinctLeaves      int     `json:"distinctLeaves,omitempty"`
}

// writeReport marshals r to JSON and writes it atomically (tmp file +
// rename) so a killed process never leaves a half-written report behind.
func writeReport(path string, r Report) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "pathguide: save report: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathguide: marshal report: %v\n", err)
		return
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "pathguide: write report: %v\n", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		fmt.Fprintf(os.Stderr, "pathguide: save report: %v\n", err)
	}
}

// loadReport reads back a report previously written by writeReport. A
// missing file is reported as an error here (unlike config.Load's
// defaults-on-missing behavior) since inspect has nothing sensible to show
// without a prior run.
func loadReport(path string) (Report, error) {
	var r Report
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, fmt.Errorf("no report found at %s", path)
		}
		return r, fmt.Errorf("read report %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("parse report %s: %w", path, err)
	}
	return r, nil
}

func renderText(r Report) string {
	status := "exhausted"
	if !r.Exhausted {
		status = "open-ended"
	}
	return fmt.Sprintf(
		"[pathguide | run=%s guide=%s seed=%d]\n  traversals=%d nodes=%d leaves=%d status=%s\n",
		r.RunName, r.Guide, r.Seed, r.Traversals, r.NodeCount, r.DistinctLeaves, status,
	)
}

func renderJSON(r Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func guideKindString(k config.GuideKind) string { return string(k) }
