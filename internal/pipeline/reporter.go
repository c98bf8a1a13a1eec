package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

// ReportPath is where the report of the given format for jobID is stored.
func ReportPath(dir, jobID, format string) string {
	return filepath.Join(dir, jobID+"."+format)
}

type Reporter struct {
	log              *slog.Logger
	outputDir        string
	reports          <-chan *domain.AnalysisResult
	reportGenerators []ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.AnalysisResult,
	reportGenerators ...ReportGenerator,
) *Reporter {
	return &Reporter{
		log:              log,
		outputDir:        outputDir,
		reports:          reports,
		reportGenerators: reportGenerators,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("job_id", result.JobID),
				slog.Bool("succeeded", result.Succeeded),
			)

			log.InfoContext(ctx, "received analysis result, generating reports")

			if err := r.processResult(result); err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(result *domain.AnalysisResult) error {
	if result.JobID == "" {
		return nil
	}

	var errs []error
	for _, generator := range r.reportGenerators {
		if err := r.generate(generator, result); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", generator.Format(), err))
		}
	}

	return errors.Join(errs...)
}

// generate writes into a hidden file next to the target and renames it, so a
// download never sees a half written report.
func (r *Reporter) generate(generator ReportGenerator, result *domain.AnalysisResult) error {
	format := generator.Format()
	path := ReportPath(r.outputDir, result.JobID, format)
	tmp := filepath.Join(r.outputDir, "."+result.JobID+".partial."+format)

	if err := generator.GenerateReport(tmp, result); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move report into place: %w", err)
	}

	return nil
}
