package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/scan_analyzer/internal/contextrecord"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/kurochkinivan/scan_analyzer/internal/pipeline"
)

const (
	maxUploadSize  = 64 << 20
	maxMemory      = 8 << 20
	maxAnalyzeBody = 4 << 20
)

type ArtifactSaver interface {
	Save(r io.Reader, originalName string) (*domain.Artifact, error)
	Remove(path string) error
}

type JobStarter interface {
	Start(ctx context.Context, artifact *domain.Artifact, jobID string) error
}

type StatusGetter interface {
	Get(ctx context.Context, jobID string) (*domain.Job, error)
}

type ResultAggregator interface {
	Aggregate(ctx context.Context, req pipeline.AggregateRequest) (*domain.AnalysisResult, error)
}

type JobsHandler struct {
	log        *slog.Logger
	artifacts  ArtifactSaver
	runner     JobStarter
	status     StatusGetter
	aggregator ResultAggregator
	contexts   *contextCache
}

func NewJobsHandler(
	log *slog.Logger,
	artifacts ArtifactSaver,
	runner JobStarter,
	status StatusGetter,
	aggregator ResultAggregator,
) *JobsHandler {
	return &JobsHandler{
		log:        log,
		artifacts:  artifacts,
		runner:     runner,
		status:     status,
		aggregator: aggregator,
		contexts:   newContextCache(maxCachedContexts),
	}
}

type SubmitJobResponse struct {
	*domain.Artifact
	JobID string `json:"job_id"`
}

// SubmitJob stores the uploaded file and starts stage one for it. The
// optional "context" form field carries questionnaire JSON that is used by a
// later /analyze call for the same job.
func (h *JobsHandler) SubmitJob(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, h.log, fmt.Errorf("%w: upload exceeds %d bytes", domain.ErrInput, maxBytesErr.Limit))
			return
		}
		writeError(w, r, h.log, fmt.Errorf("%w: %w", domain.ErrInput, err))
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	var record *domain.ContextRecord
	if raw := strings.TrimSpace(r.FormValue("context")); raw != "" {
		var err error
		if record, err = contextrecord.Parse([]byte(raw)); err != nil {
			writeError(w, r, h.log, err)
			return
		}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, h.log, fmt.Errorf("%w: %w", domain.ErrNoFileProvided, err))
		return
	}
	defer file.Close()

	artifact, err := h.artifacts.Save(file, header.Filename)
	if err != nil {
		writeError(w, r, h.log, fmt.Errorf("failed to save artifact: %w", err))
		return
	}

	jobID := pipeline.NewJobID()
	if err := h.runner.Start(r.Context(), artifact, jobID); err != nil {
		if rmErr := h.artifacts.Remove(artifact.Path); rmErr != nil {
			h.log.WarnContext(r.Context(), "failed to remove artifact of unstarted job",
				slog.String("artifact_path", artifact.Path),
				slog.String("err", rmErr.Error()),
			)
		}
		writeError(w, r, h.log, fmt.Errorf("failed to start job: %w", err))
		return
	}

	if record != nil {
		h.contexts.put(jobID, record)
	}

	h.log.InfoContext(r.Context(), "job submitted",
		slog.String("job_id", jobID),
		slog.String("artifact_path", artifact.Path),
		slog.Int64("size", artifact.SizeBytes),
		slog.Bool("context", record != nil),
	)

	writeJSON(w, h.log, http.StatusCreated, SubmitJobResponse{Artifact: artifact, JobID: jobID})
}

func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.status.Get(r.Context(), chi.URLParam(r, "job_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, job)
}

type AnalyzeRequest struct {
	JobID          string          `json:"job_id,omitempty"`
	ArtifactPath   string          `json:"artifact_path"`
	StageOneOutput string          `json:"stage_one_output"`
	Context        json.RawMessage `json:"context,omitempty"`
}

// Analyze runs stage two. A failed stage two still answers 200 with the
// degraded result so the client can show what stage one produced.
func (h *JobsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBody)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.log, fmt.Errorf("%w: malformed request body: %w", domain.ErrInput, err))
		return
	}

	record, err := h.contextFor(req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	result, err := h.aggregator.Aggregate(r.Context(), pipeline.AggregateRequest{
		JobID:          req.JobID,
		ArtifactPath:   req.ArtifactPath,
		StageOneOutput: req.StageOneOutput,
		Context:        record,
	})
	if err != nil && result == nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}

func (h *JobsHandler) contextFor(req AnalyzeRequest) (*domain.ContextRecord, error) {
	raw := strings.TrimSpace(string(req.Context))
	if raw != "" && raw != "null" {
		return contextrecord.Parse([]byte(raw))
	}

	if req.JobID == "" {
		return nil, nil
	}

	record, _ := h.contexts.get(req.JobID)
	return record, nil
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
