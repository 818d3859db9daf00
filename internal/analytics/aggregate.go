package analytics

// Package analytics holds the pure aggregation core feeding the dashboard:
// dense daily time series, type distribution, and fixed-cardinality
// activity histograms. Functions here take a document snapshot and return
// derived values; no I/O and no shared state.

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"docdash/internal/model"
)

// Weekday bucket labels, Sunday first to match time.Weekday ordering.
var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Hour bucket labels: 8 three-hour ranges covering the full day.
var hourLabels = [8]string{
	"00-02", "03-05", "06-08", "09-11", "12-14", "15-17", "18-20", "21-23",
}

// TimeSeries buckets documents into one entry per calendar day (UTC) in
// the inclusive window [now-period, now]. Days without uploads yield
// zero-valued entries, so the result is dense: exactly period.Days()
// entries regardless of input. Documents outside the window or without a
// usable timestamp are skipped.
func TimeSeries(docs []model.Document, period Period, now time.Time) []model.TimeSeriesPoint {
	start := period.Start(now)
	days := period.Days()

	points := make([]model.TimeSeriesPoint, days)
	for i := range points {
		points[i].Date = start.AddDate(0, 0, i).Format("2006-01-02")
	}

	index := make(map[string]int, days)
	for i, p := range points {
		index[p.Date] = i
	}

	for _, d := range docs {
		ts, ok := d.EffectiveTime()
		if !ok {
			continue
		}
		i, ok := index[ts.UTC().Format("2006-01-02")]
		if !ok {
			continue
		}
		points[i].Uploads++
		points[i].TotalSize += d.Size
	}
	return points
}

// TypeDistribution groups documents by type label and reports count and
// average size per type, sorted descending by count (ties by label so
// output is deterministic). Each document with a usable timestamp is
// counted exactly once; empty input yields an empty slice.
func TypeDistribution(docs []model.Document) []model.TypeCount {
	type agg struct {
		count int
		size  int64
	}
	byType := make(map[string]*agg)

	for _, d := range docs {
		if _, ok := d.EffectiveTime(); !ok {
			continue
		}
		label := TypeLabel(d)
		a := byType[label]
		if a == nil {
			a = &agg{}
			byType[label] = a
		}
		a.count++
		a.size += d.Size
	}

	out := make([]model.TypeCount, 0, len(byType))
	for label, a := range byType {
		out = append(out, model.TypeCount{
			Type:    label,
			Count:   a.count,
			AvgSize: a.size / int64(a.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// TypeLabel derives the display label for a document's type: lowercased
// filename extension when present, otherwise a label mapped from the MIME
// type, otherwise "other".
func TypeLabel(d model.Document) string {
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(d.Filename)), "."); ext != "" {
		return ext
	}
	if label := mimeLabel(d.ContentType); label != "" {
		return label
	}
	return "other"
}

func mimeLabel(contentType string) string {
	mt := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch mt {
	case "application/pdf":
		return "pdf"
	case "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "doc"
	case "application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return "sheet"
	case "text/plain":
		return "txt"
	case "text/csv":
		return "csv"
	}
	switch {
	case strings.HasPrefix(mt, "image/"):
		return "image"
	case strings.HasPrefix(mt, "text/"):
		return "text"
	}
	return ""
}

// WeekdayHistogram counts uploads per day of week. The result always has
// exactly 7 buckets, Sunday through Saturday.
func WeekdayHistogram(docs []model.Document) []model.ActivityBucket {
	buckets := make([]model.ActivityBucket, len(weekdayLabels))
	for i, label := range weekdayLabels {
		buckets[i].Label = label
	}
	for _, d := range docs {
		ts, ok := d.EffectiveTime()
		if !ok {
			continue
		}
		buckets[int(ts.UTC().Weekday())].Count++
	}
	return buckets
}

// HourHistogram counts uploads per three-hour range of the day. The
// result always has exactly 8 buckets.
func HourHistogram(docs []model.Document) []model.ActivityBucket {
	buckets := make([]model.ActivityBucket, len(hourLabels))
	for i, label := range hourLabels {
		buckets[i].Label = label
	}
	for _, d := range docs {
		ts, ok := d.EffectiveTime()
		if !ok {
			continue
		}
		buckets[ts.UTC().Hour()/3].Count++
	}
	return buckets
}
