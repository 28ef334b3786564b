package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a results directory for one experiment run, named by the
// experiment and the current timestamp under the given root.
func NewWriter(root, experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "run", "seat0", "seat1", "rounds", "seat0_wins", "seat1_wins", "ties", "winner", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Run,
			record.Seat0,
			record.Seat1,
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Seat0Wins),
			strconv.Itoa(record.Seat1Wins),
			strconv.Itoa(record.Ties),
			record.Winner,
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummaries(summaries []MatchupSummary) error {
	path := filepath.Join(w.baseDir, "matchup_summaries.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summaries file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"seat0", "seat1", "matches", "rounds", "seat0_win_rate", "seat1_win_rate", "tie_rate", "mean_outcome", "stddev_outcome"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summaries header: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			summary.Seat0,
			summary.Seat1,
			strconv.Itoa(summary.Matches),
			strconv.Itoa(summary.Rounds),
			strconv.FormatFloat(summary.Seat0WinRate, 'f', 6, 64),
			strconv.FormatFloat(summary.Seat1WinRate, 'f', 6, 64),
			strconv.FormatFloat(summary.TieRate, 'f', 6, 64),
			strconv.FormatFloat(summary.MeanOutcome, 'f', 6, 64),
			strconv.FormatFloat(summary.StdDevOutcome, 'f', 6, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}
