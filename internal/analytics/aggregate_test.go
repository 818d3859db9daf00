package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdash/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"7d", Period7d, false},
		{"30d", Period30d, false},
		{"90d", Period90d, false},
		{"1y", Period1y, false},
		{"", Period30d, false},
		{"14d", "", true},
		{"week", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestTimeSeries_DenseDays(t *testing.T) {
	now := day("2024-01-07T15:00:00Z")
	docs := []model.Document{
		{UploadedAt: day("2024-01-01T10:00:00Z"), Size: 1024},
		{UploadedAt: day("2024-01-01T22:30:00Z"), Size: 2048},
	}

	points := TimeSeries(docs, Period7d, now)

	require.Len(t, points, 7)
	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, "2024-01-07", points[6].Date)

	assert.Equal(t, 2, points[0].Uploads)
	assert.Equal(t, int64(3072), points[0].TotalSize)
	for _, p := range points[1:] {
		assert.Zero(t, p.Uploads, p.Date)
		assert.Zero(t, p.TotalSize, p.Date)
	}
}

func TestTimeSeries_WindowAndExclusions(t *testing.T) {
	now := day("2024-03-31T12:00:00Z")
	docs := []model.Document{
		{UploadedAt: day("2024-03-31T01:00:00Z"), Size: 10}, // in window
		{CreatedAt: day("2024-03-25T01:00:00Z"), Size: 20},  // created_at fallback
		{UploadedAt: day("2024-03-01T01:00:00Z"), Size: 30}, // before window
		{Size: 40}, // no timestamp at all: excluded
	}

	points := TimeSeries(docs, Period7d, now)

	total := 0
	for _, p := range points {
		total += p.Uploads
	}
	assert.Equal(t, 2, total)
}

func TestTimeSeries_EmptyInput(t *testing.T) {
	points := TimeSeries(nil, Period30d, day("2024-06-01T00:00:00Z"))
	require.Len(t, points, 30)
	for _, p := range points {
		assert.Zero(t, p.Uploads)
	}
}

func TestTypeDistribution(t *testing.T) {
	ts := day("2024-01-01T00:00:00Z")
	docs := []model.Document{
		{Filename: "a.pdf", Size: 100, UploadedAt: ts},
		{Filename: "b.PDF", Size: 300, UploadedAt: ts},
		{Filename: "c.txt", Size: 50, UploadedAt: ts},
		{Filename: "noext", ContentType: "image/png", Size: 10, UploadedAt: ts},
		{Filename: "mystery", Size: 5, UploadedAt: ts},
		{Filename: "skipped.pdf", Size: 999}, // no timestamp: excluded
	}

	dist := TypeDistribution(docs)

	require.Len(t, dist, 4)
	assert.Equal(t, model.TypeCount{Type: "pdf", Count: 2, AvgSize: 200}, dist[0])

	// Every counted document appears exactly once.
	total := 0
	for _, tc := range dist {
		total += tc.Count
	}
	assert.Equal(t, 5, total)

	// Ties sorted by label for deterministic output.
	assert.Equal(t, "image", dist[1].Type)
	assert.Equal(t, "other", dist[2].Type)
	assert.Equal(t, "txt", dist[3].Type)
}

func TestTypeDistribution_Empty(t *testing.T) {
	assert.Empty(t, TypeDistribution(nil))
}

func TestWeekdayHistogram(t *testing.T) {
	docs := []model.Document{
		{UploadedAt: day("2024-01-01T09:00:00Z")}, // Monday
		{UploadedAt: day("2024-01-08T09:00:00Z")}, // Monday
		{UploadedAt: day("2024-01-07T09:00:00Z")}, // Sunday
	}

	buckets := WeekdayHistogram(docs)

	require.Len(t, buckets, 7)
	assert.Equal(t, "Sun", buckets[0].Label)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 2, buckets[1].Count)
}

func TestWeekdayHistogram_EmptyKeepsCardinality(t *testing.T) {
	buckets := WeekdayHistogram(nil)
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
	}
}

func TestHourHistogram(t *testing.T) {
	docs := []model.Document{
		{UploadedAt: day("2024-01-01T00:10:00Z")},
		{UploadedAt: day("2024-01-01T02:59:00Z")},
		{UploadedAt: day("2024-01-01T23:00:00Z")},
	}

	buckets := HourHistogram(docs)

	require.Len(t, buckets, 8)
	assert.Equal(t, "00-02", buckets[0].Label)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, "21-23", buckets[7].Label)
	assert.Equal(t, 1, buckets[7].Count)
}

func TestHourHistogram_EmptyKeepsCardinality(t *testing.T) {
	buckets := HourHistogram(nil)
	require.Len(t, buckets, 8)
}
