package client

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/mattn/go-isatty"
)

const (
	barWidth      = 30
	valueMaxWidth = 90

	// NoAnalysisData is shown when a result carries nothing to display.
	NoAnalysisData = "No analysis data available"
)

// ProgressPrinter renders snapshots as a progress line. On a terminal the
// line is redrawn in place; otherwise a line is printed whenever the state or
// the progress decile changes.
type ProgressPrinter struct {
	out  io.Writer
	tty  bool
	last Snapshot
	seen bool
}

func NewProgressPrinter(out io.Writer) *ProgressPrinter {
	return &ProgressPrinter{out: out, tty: isTerminal(out)}
}

func (p *ProgressPrinter) Print(s Snapshot) {
	if !p.tty && p.seen && s.State == p.last.State && s.Progress/10 == p.last.Progress/10 {
		return
	}

	line := progressLine(s)

	if p.tty {
		fmt.Fprintf(p.out, "\r\033[K%s", line)
		if s.State == StateDone {
			fmt.Fprintln(p.out)
		}
	} else {
		fmt.Fprintln(p.out, line)
	}

	p.last = s
	p.seen = true
}

func progressLine(s Snapshot) string {
	filled := s.Progress * barWidth / domain.ProgressComplete
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled)

	line := fmt.Sprintf("[%s] %3d%% %s", bar, s.Progress, s.State)
	if s.Job != nil && s.Job.StatusMessage != "" && s.State == StatePolling {
		line += ": " + s.Job.StatusMessage
	}
	if s.CanProceed && s.State == StatePolling {
		line += " (taking longer than expected, press Enter to proceed)"
	}

	return line
}

func RenderResult(w io.Writer, result *domain.AnalysisResult) {
	if result == nil {
		fmt.Fprintln(w, NoAnalysisData)
		return
	}

	status := "succeeded"
	if !result.Succeeded {
		status = "failed"
	}

	rows := [][]string{
		{"Job", result.JobID},
		{"Status", status},
		{"Questionnaire used", yesNo(result.ContextUsed)},
		{"Produced at", formatTime(&result.ProducedAt)},
	}
	if result.Error != "" {
		rows = append(rows, []string{"Error", result.Error})
	}
	rows = append(rows,
		[]string{"Image findings", orDefault(result.StageOneOutput, NoAnalysisData)},
		[]string{"Analysis", result.Summary()},
	)

	fmt.Fprintln(w, renderTable(rows))
}

func RenderJob(w io.Writer, job *domain.Job) {
	rows := [][]string{
		{"Job", job.ID},
		{"State", string(job.State)},
		{"Progress", fmt.Sprintf("%d%%", job.ProgressPercent)},
		{"Message", job.StatusMessage},
		{"Artifact", job.ArtifactPath},
		{"Started at", formatTime(job.StartedAt)},
		{"Ended at", formatTime(job.EndedAt)},
	}
	if job.StageOneOutput != nil {
		rows = append(rows, []string{"Stage one output", *job.StageOneOutput})
	}
	if job.StageOneError != nil {
		rows = append(rows, []string{"Stage one error", *job.StageOneError})
	}

	fmt.Fprintln(w, renderTable(rows))
}

func renderTable(rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, WidthMax: valueMaxWidth, WidthMaxEnforcer: text.WrapSoft},
	})

	return tw.Render()
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
