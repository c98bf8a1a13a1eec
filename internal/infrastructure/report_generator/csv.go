package report_generator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (g *CSV) Format() string {
	return FormatCSV
}

func (g *CSV) GenerateReport(outputPath string, result *domain.AnalysisResult) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create csv report: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	w := csv.NewWriter(f)
	enc := csvutil.NewEncoder(w)

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode analysis result: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write csv report: %w", err)
	}

	return nil
}
