package model

import "time"

// Analytics DTOs are derived, ephemeral values: recomputed on every
// aggregation run or period change, never persisted.

// TimeSeriesPoint is one calendar day of upload activity.
type TimeSeriesPoint struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Uploads   int    `json:"uploads"`
	TotalSize int64  `json:"total_size"`
}

// TypeCount is the per-document-type slice of the distribution.
type TypeCount struct {
	Type    string `json:"type"`
	Count   int    `json:"count"`
	AvgSize int64  `json:"avg_size"`
}

// ActivityBucket is one fixed histogram slot (day of week or hour range).
// Buckets always appear in output regardless of data presence.
type ActivityBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ModelUsage reports upstream LLM API consumption for one model.
type ModelUsage struct {
	Model    string `json:"model"`
	Requests int    `json:"requests"`
	Tokens   int64  `json:"tokens"`
}

// StorageSummary is the account-level storage snapshot.
type StorageSummary struct {
	UsedBytes     int64 `json:"used_bytes"`
	QuotaBytes    int64 `json:"quota_bytes"`
	DocumentCount int   `json:"document_count"`
}

// Stats sources.
const (
	StatsSourceReporting = "reporting"
	StatsSourceLocal     = "local"
)

// DashboardStats is the combined analytics payload for one period.
// Source records whether it came from the reporting API or was derived
// locally from a raw document list after an upstream failure.
type DashboardStats struct {
	Period      string            `json:"period"`
	Source      string            `json:"source"`
	GeneratedAt time.Time         `json:"generated_at"`
	Uploads     []TimeSeriesPoint `json:"uploads"`
	Types       []TypeCount       `json:"types"`
	Weekdays    []ActivityBucket  `json:"weekdays"`
	Hours       []ActivityBucket  `json:"hours"`
	Models      []ModelUsage      `json:"models"`
	Storage     StorageSummary    `json:"storage"`
}

// Summary is the result of a summary-generation request.
type Summary struct {
	DocumentID  string    `json:"document_id"`
	Text        string    `json:"text"`
	Model       string    `json:"model"`
	Tokens      int64     `json:"tokens"`
	GeneratedAt time.Time `json:"generated_at"`
}
