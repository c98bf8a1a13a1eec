package pipeline

import (
	"context"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/kurochkinivan/scan_analyzer/internal/stage"
)

type JobCreator interface {
	Create(ctx context.Context, jobID, artifactPath string) error
}

type JobWriter interface {
	Write(ctx context.Context, jobID string, update domain.JobUpdate) error
}

type JobReader interface {
	Read(ctx context.Context, jobID string) (*domain.Job, error)
}

type StageInvoker interface {
	Invoke(ctx context.Context, req stage.Request) (string, error)
}

type ArtifactChecker interface {
	Exists(path string) bool
}

type ReportGenerator interface {
	Format() string
	GenerateReport(outputPath string, result *domain.AnalysisResult) error
}
