package report_generator

import (
	"errors"
	"fmt"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheet = "Analysis"

type XLSX struct{}

func NewXLSX() *XLSX {
	return &XLSX{}
}

func (g *XLSX) Format() string {
	return FormatXLSX
}

func (g *XLSX) GenerateReport(outputPath string, result *domain.AnalysisResult) (err error) {
	f := excelize.NewFile()
	defer func() { err = errors.Join(err, f.Close()) }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	wrapped, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	row := 1
	write := func(label, value string, valueStyle int) error {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)

		if err := f.SetCellValue(sheet, labelCell, label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, labelCell, labelCell, bold); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCell, truncateCell(value)); err != nil {
			return err
		}
		if valueStyle != 0 {
			if err := f.SetCellStyle(sheet, valueCell, valueCell, valueStyle); err != nil {
				return err
			}
		}

		row++
		return nil
	}

	if err := write(title, "", 0); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	for _, fld := range summaryFields(result) {
		if err := write(fld.label, fld.value, 0); err != nil {
			return fmt.Errorf("failed to write %s: %w", fld.label, err)
		}
	}
	for _, s := range sections(result) {
		if err := write(s.heading, s.body, wrapped); err != nil {
			return fmt.Errorf("failed to write %s: %w", s.heading, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 100); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}

	return nil
}

func truncateCell(s string) string {
	runes := []rune(s)
	if len(runes) <= excelize.TotalCellChars {
		return s
	}
	return string(runes[:excelize.TotalCellChars-1]) + "…"
}
