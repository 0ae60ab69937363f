package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/domain/dto"
)

// Canonical field vocabulary of a signal event feed.
var signalFields = []string{
	"id", "country", "lat", "lon", "disease", "grade", "eventType",
	"status", "description", "year", "reportDate", "cases", "deaths",
}

// Vendor-specific labels mapped into the canonical vocabulary; labels
// already canonical pass through unchanged.
var signalColumnMapping = map[string]string{
	"iso_code":          "id",
	"country_name":      "country",
	"latitude":          "lat",
	"longitude":         "lon",
	"disease_name":      "disease",
	"risk_grade":        "grade",
	"event_type":        "eventType",
	"event_status":      "status",
	"event_description": "description",
	"report_date":       "reportDate",
	"case_count":        "cases",
	"death_count":       "deaths",
}

// NormalizeSignalColumn maps one vendor column label to its canonical
// signal field name.
func NormalizeSignalColumn(label string) string {
	label = strings.TrimSpace(label)
	if canonical, ok := signalColumnMapping[label]; ok {
		return canonical
	}
	return label
}

// EventTypeFromFile derives the event type from the feed file name:
// "signal_data.csv" → "SIGNAL".
func EventTypeFromFile(csvFile string) string {
	return strings.ToUpper(strings.TrimSuffix(csvFile, "_data.csv"))
}

// ClassifyGrade applies the ordered substring heuristic over the raw
// grade text. It is a heuristic, not a parser: "Risk Grade 2" → Grade 2,
// but so would any text containing a "2".
func ClassifyGrade(raw string) string {
	grade := strings.ToLower(raw)
	switch {
	case strings.Contains(grade, "3"):
		return domain.Grade3
	case strings.Contains(grade, "2"):
		return domain.Grade2
	case strings.Contains(grade, "1"):
		return domain.Grade1
	default:
		return domain.Ungraded
	}
}

// ClassifyStatus applies the ordered substring heuristic over the raw
// status text.
func ClassifyStatus(raw string) string {
	status := strings.ToLower(raw)
	switch {
	case strings.Contains(status, "closed"), strings.Contains(status, "ended"):
		return domain.StatusClosed
	case strings.Contains(status, "monitor"):
		return domain.StatusMonitoring
	default:
		return domain.StatusOngoing
	}
}

// collapseZeroFloat keeps the feed's literal fallback behavior: absent
// values and unparseable text both land on 0.0. Genuine zeros also pass
// through as 0.0, which is indistinguishable by design of the source
// format.
func collapseZeroFloat(cell dto.Cell) float64 {
	if !cell.Present {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell.Value), 64)
	if err != nil {
		return 0
	}
	return v
}

func collapseZeroInt(cell dto.Cell) int {
	if !cell.Present {
		return 0
	}
	s := strings.TrimSpace(cell.Value)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func stringOr(cell dto.Cell, fallback string) string {
	if !cell.Present {
		return fallback
	}
	return cell.Value
}

// StandardizeSignal turns the extracted rows of one feed file into
// validated signal events: canonical fields filled with per-field
// defaults, coordinates and counts coerced, grade/status classified.
func StandardizeSignal(table Table, csvFile string, now time.Time) []domain.Event {
	events := make([]domain.Event, 0, len(table.Rows))

	for _, row := range table.Rows {
		event := domain.Event{
			Source:    "WHO",
			DataType:  domain.DataTypeSignal,
			EventType: EventTypeFromFile(csvFile),

			ID:          stringOr(row.Cell("id"), ""),
			Country:     stringOr(row.Cell("country"), "Unknown"),
			Disease:     stringOr(row.Cell("disease"), "Unknown"),
			Description: stringOr(row.Cell("description"), ""),
			ReportDate:  stringOr(row.Cell("reportDate"), now.Format(time.RFC3339)),

			Lat:    collapseZeroFloat(row.Cell("lat")),
			Lon:    collapseZeroFloat(row.Cell("lon")),
			Cases:  collapseZeroInt(row.Cell("cases")),
			Deaths: collapseZeroInt(row.Cell("deaths")),

			Grade:  ClassifyGrade(stringOr(row.Cell("grade"), domain.Ungraded)),
			Status: ClassifyStatus(stringOr(row.Cell("status"), domain.StatusOngoing)),

			SourceFile: csvFile,
		}

		if year := row.Int("year"); year != nil {
			event.Year = int(*year)
		} else {
			event.Year = now.Year()
		}

		events = append(events, event)
	}

	return events
}
