package domain

import "time"

// Alert lifecycle: active → acknowledged → resolved. Acknowledging or
// resolving an alert already in that state is a no-op; there is no
// transition back to active.
const (
	AlertStatusActive       = "active"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
)

const (
	AlertSeverityCritical = "critical"
	AlertSeverityHigh     = "high"
	AlertSeverityMedium   = "medium"
	AlertSeverityLow      = "low"
)

const (
	AlertCategoryDiseaseOutbreak  = "disease_outbreak"
	AlertCategoryResourceShortage = "resource_shortage"
	AlertCategoryNaturalDisaster  = "natural_disaster"
	AlertCategoryAdministrative   = "administrative"
	AlertCategoryCapacityAlert    = "capacity_alert"
)

type Alert struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	Status      string `db:"status" json:"status"`
	Severity    string `db:"severity" json:"severity"`
	Country     string `db:"country" json:"country"`
	Region      string `db:"region" json:"region"`

	Date            time.Time `db:"date" json:"date"`
	LastUpdatedDate time.Time `db:"last_updated_date" json:"last_updated_date"`
}
