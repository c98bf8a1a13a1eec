package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	v1 "github.com/kurochkinivan/scan_analyzer/internal/controller/http/v1"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/kurochkinivan/scan_analyzer/internal/pipeline"
)

var errorCodes = map[string]error{
	"NoFileProvided":       domain.ErrNoFileProvided,
	"UnsupportedFile":      domain.ErrUnsupportedFile,
	"InvalidContext":       domain.ErrInvalidContext,
	"InvalidInput":         domain.ErrInput,
	"MissingArtifact":      domain.ErrMissingArtifact,
	"NotFound":             domain.ErrNotFound,
	"Conflict":             domain.ErrConflict,
	"StorageError":         domain.ErrStorage,
	"StageInvocationError": domain.ErrStageInvocation,
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded %d", e.StatusCode)
	}
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	if err, ok := errorCodes[e.Code]; ok {
		return err
	}
	if e.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return nil
}

// API talks to a scan_analyzer server.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Submit uploads the file at path together with optional questionnaire JSON.
func (a *API) Submit(ctx context.Context, path string, contextJSON []byte) (*v1.SubmitJobResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	body, writer := io.Pipe()
	form := multipart.NewWriter(writer)

	go func() {
		writer.CloseWithError(writeForm(form, f, filepath.Base(path), contextJSON))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/v1/jobs", body)
	if err != nil {
		_ = body.Close()
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var resp v1.SubmitJobResponse
	if err := a.do(req, http.StatusCreated, &resp); err != nil {
		_ = body.Close()
		return nil, fmt.Errorf("failed to submit job: %w", err)
	}

	return &resp, nil
}

func writeForm(form *multipart.Writer, file io.Reader, filename string, contextJSON []byte) error {
	if len(contextJSON) > 0 {
		if err := form.WriteField("context", string(contextJSON)); err != nil {
			return err
		}
	}

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}

	return form.Close()
}

func (a *API) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/v1/jobs/"+url.PathEscape(jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	var job domain.Job
	if err := a.do(req, http.StatusOK, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

// Aggregate asks the server to run stage two. Like the server side
// aggregator it returns the degraded result together with an error wrapping
// domain.ErrAggregation when stage two failed.
func (a *API) Aggregate(ctx context.Context, areq pipeline.AggregateRequest) (*domain.AnalysisResult, error) {
	payload := v1.AnalyzeRequest{
		JobID:          areq.JobID,
		ArtifactPath:   areq.ArtifactPath,
		StageOneOutput: areq.StageOneOutput,
	}
	if areq.Context != nil {
		raw, err := json.Marshal(areq.Context)
		if err != nil {
			return nil, fmt.Errorf("failed to encode context: %w", err)
		}
		payload.Context = raw
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/v1/analyze", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result domain.AnalysisResult
	if err := a.do(req, http.StatusOK, &result); err != nil {
		return nil, err
	}

	if !result.Succeeded {
		return &result, fmt.Errorf("%w: %s", domain.ErrAggregation, result.Error)
	}

	return &result, nil
}

// DownloadReport copies the job's report in the given format to w.
func (a *API) DownloadReport(ctx context.Context, jobID, format string, w io.Writer) error {
	target := fmt.Sprintf("%s/api/v1/jobs/%s/report?format=%s", a.baseURL, url.PathEscape(jobID), url.QueryEscape(format))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	return nil
}

func (a *API) do(req *http.Request, wantStatus int, out any) error {
	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body v1.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	return apiErr
}
