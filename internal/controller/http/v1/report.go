package v1

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/kurochkinivan/scan_analyzer/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/scan_analyzer/internal/pipeline"
)

var reportContentTypes = map[string]string{
	report_generator.FormatPDF:  "application/pdf",
	report_generator.FormatCSV:  "text/csv; charset=utf-8",
	report_generator.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type ReportsHandler struct {
	log        *slog.Logger
	reportsDir string
}

func NewReportsHandler(log *slog.Logger, reportsDir string) *ReportsHandler {
	return &ReportsHandler{
		log:        log,
		reportsDir: reportsDir,
	}
}

// GetReport serves a generated report as a download. Reports appear once the
// job's result has been aggregated.
func (h *ReportsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	if err := uuid.Validate(jobID); err != nil {
		writeError(w, r, h.log, fmt.Errorf("%w: malformed job id", domain.ErrInput))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = report_generator.FormatPDF
	}

	contentType, ok := reportContentTypes[format]
	if !ok {
		writeError(w, r, h.log, fmt.Errorf("%w: unsupported report format %q", domain.ErrInput, format))
		return
	}

	f, err := os.Open(pipeline.ReportPath(h.reportsDir, jobID, format))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, r, h.log, fmt.Errorf("%w: no %s report for job %s", domain.ErrNotFound, format, jobID))
			return
		}
		writeError(w, r, h.log, fmt.Errorf("%w: %w", domain.ErrStorage, err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeError(w, r, h.log, fmt.Errorf("%w: %w", domain.ErrStorage, err))
		return
	}

	name := "analysis_" + jobID + "." + format

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeContent(w, r, name, info.ModTime(), f)
}
