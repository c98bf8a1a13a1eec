package domain

import "time"

type Artifact struct {
	Path         string    `json:"artifact_path"`
	OriginalName string    `json:"original_name"`
	SizeBytes    int64     `json:"size"`
	MIMEType     string    `json:"mime_type"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
