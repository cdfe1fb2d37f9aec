// Package report writes enhanced test cases to the CSV and JSON formats
// consumed by downstream test-management tooling.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// csvHeader is the column layout of the CSV export. Steps are joined with
// newlines inside a single cell so spreadsheet tools render them as a list.
var csvHeader = []string{
	"id", "title", "steps", "expected", "preconditions",
	"priority", "priority_confidence", "priority_score", "priority_reasoning",
}

// WriteCSV writes the cases as CSV to w.
func WriteCSV(w io.Writer, cases []model.TestCase) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, tc := range cases {
		id := tc.ID
		if id == "" {
			id = fmt.Sprintf("TC-%03d", i+1)
		}
		row := []string{
			id,
			tc.Title,
			strings.Join(tc.Steps, "\n"),
			tc.Expected,
			tc.Preconditions,
			string(tc.Priority),
			strconv.FormatFloat(tc.PriorityConfidence, 'f', 2, 64),
			strconv.FormatFloat(tc.PriorityScore, 'f', 2, 64),
			tc.PriorityReasoning,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes v as indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// SaveCSV writes the cases as CSV to path, creating parent directories.
func SaveCSV(path string, cases []model.TestCase) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteCSV(f, cases)
}

// SaveJSON writes v as indented JSON to path, creating parent directories.
func SaveJSON(path string, v any) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteJSON(f, v)
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
