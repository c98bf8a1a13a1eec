package report_generator

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

const (
	FormatPDF  = "pdf"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	title = "Scan Analysis Report"
)

type field struct {
	label string
	value string
}

type section struct {
	heading string
	body    string
}

func summaryFields(result *domain.AnalysisResult) []field {
	status := "Succeeded"
	if !result.Succeeded {
		status = "Failed"
	}

	questionnaire := "No"
	if result.ContextUsed {
		questionnaire = "Yes"
	}

	fields := []field{
		{label: "Job ID", value: result.JobID},
		{label: "Produced at", value: result.ProducedAt.UTC().Format(time.RFC3339)},
		{label: "Status", value: status},
		{label: "Questionnaire used", value: questionnaire},
	}
	if result.Error != "" {
		fields = append(fields, field{label: "Error", value: result.Error})
	}

	return fields
}

func sections(result *domain.AnalysisResult) []section {
	stageOne := strings.TrimSpace(result.StageOneOutput)
	if stageOne == "" {
		stageOne = domain.NoAnalysisAvailable
	}

	return []section{
		{heading: "Image Findings", body: stageOne},
		{heading: "Analysis", body: result.Summary()},
	}
}

// wrap splits text into lines of at most width runes, breaking on spaces
// where possible.
func wrap(text string, width int) []string {
	var lines []string

	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		for _, word := range words {
			for utf8.RuneCountInString(word) > width {
				if line.Len() > 0 {
					lines = append(lines, line.String())
					line.Reset()
				}
				runes := []rune(word)
				lines = append(lines, string(runes[:width]))
				word = string(runes[width:])
			}

			switch {
			case line.Len() == 0:
				line.WriteString(word)
			case utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width:
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(word)
			default:
				line.WriteByte(' ')
				line.WriteString(word)
			}
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
	}

	return lines
}
