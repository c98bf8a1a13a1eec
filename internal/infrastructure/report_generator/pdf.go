package report_generator

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

const (
	lineWidth  = 95
	lineHeight = 5
)

type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

func (g *PDF) Format() string {
	return FormatPDF
}

func (g *PDF) GenerateReport(outputPath string, result *domain.AnalysisResult) error {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(12, title, props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	for _, f := range summaryFields(result) {
		m.AddRow(7,
			text.NewCol(4, f.label, props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(8, f.value, props.Text{Size: 10}),
		)
	}

	for _, s := range sections(result) {
		m.AddRows(text.NewRow(12, s.heading, props.Text{
			Top:   5,
			Size:  12,
			Style: fontstyle.Bold,
		}))
		m.AddRows(bodyRows(s.body)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}

	return nil
}

func bodyRows(body string) []core.Row {
	lines := wrap(body, lineWidth)
	rows := make([]core.Row, 0, len(lines))

	for _, line := range lines {
		rows = append(rows, text.NewRow(lineHeight, line, props.Text{Size: 9}))
	}

	return rows
}
