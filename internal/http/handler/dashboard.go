package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/analytics"
	"docdash/internal/chart"
	"docdash/internal/format"
	"docdash/internal/model"
	"docdash/internal/service"
)

// GetDashboardStats returns aggregated dashboard statistics. The
// refresh=true query parameter forces a fresh fetch past the cache.
func GetDashboardStats(dashSvc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period, err := analytics.ParsePeriod(c.Query("period"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PERIOD", "invalid period")
		}
		refresh := c.QueryBool("refresh")

		stats, err := dashSvc.Stats(c.UserContext(), period, refresh)
		if err != nil {
			return writeError(c, fiber.StatusBadGateway, "STATS_UNAVAILABLE", "statistics unavailable")
		}
		return c.JSON(stats)
	}
}

func sendSVG(c *fiber.Ctx, svg string) error {
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.SendString(svg)
}

// dashboardStats resolves period-scoped stats for the chart handlers,
// honoring the same period and refresh query parameters as the stats
// endpoint. The returned bool reports whether a response has already
// been written.
func dashboardStats(c *fiber.Ctx, dashSvc service.DashboardService) (*model.DashboardStats, bool, error) {
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		return nil, true, writeError(c, fiber.StatusBadRequest, "INVALID_PERIOD", "invalid period")
	}
	stats, err := dashSvc.Stats(c.UserContext(), period, c.QueryBool("refresh"))
	if err != nil {
		return nil, true, writeError(c, fiber.StatusBadGateway, "STATS_UNAVAILABLE", "statistics unavailable")
	}
	return stats, false, nil
}

// UploadsChart renders the upload trend as an SVG bar chart.
func UploadsChart(dashSvc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, done, err := dashboardStats(c, dashSvc)
		if done {
			return err
		}
		values := make([]chart.Value, 0, len(stats.Uploads))
		for _, p := range stats.Uploads {
			values = append(values, chart.Value{Label: p.Date, Y: float64(p.Uploads)})
		}
		return sendSVG(c, chart.Bar("Uploads", values))
	}
}

// TypesChart renders the type distribution as an SVG pie chart.
func TypesChart(dashSvc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, done, err := dashboardStats(c, dashSvc)
		if done {
			return err
		}
		values := make([]chart.Value, 0, len(stats.Types))
		for _, t := range stats.Types {
			label := t.Type + " (" + format.Bytes(t.AvgSize) + " avg)"
			values = append(values, chart.Value{Label: label, Y: float64(t.Count)})
		}
		return sendSVG(c, chart.Pie("Types", values))
	}
}

// ActivityChart renders weekday or hour histograms as an SVG bar
// chart, selected by the by query parameter (weekday|hour).
func ActivityChart(dashSvc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		by := c.Query("by", "weekday")
		if by != "weekday" && by != "hour" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DIMENSION", "by must be weekday or hour")
		}
		stats, done, err := dashboardStats(c, dashSvc)
		if done {
			return err
		}
		buckets := stats.Weekdays
		title := "Activity by weekday"
		if by == "hour" {
			buckets = stats.Hours
			title = "Activity by hour"
		}
		values := make([]chart.Value, 0, len(buckets))
		for _, b := range buckets {
			values = append(values, chart.Value{Label: b.Label, Y: float64(b.Count)})
		}
		return sendSVG(c, chart.Bar(title, values))
	}
}
