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

func NewWriter() (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "sweeps", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteSolveRecords(records []SolveRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "solve_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create solve records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"k", "positions", "edges", "terminals", "wins", "losses", "draws", "winner", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write solve records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.K),
			strconv.Itoa(record.Positions),
			strconv.Itoa(record.Edges),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Losses),
			strconv.Itoa(record.Draws),
			record.Winner,
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write solve record row: %w", err)
		}
	}

	return nil
}
