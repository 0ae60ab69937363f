package domain

import "time"

// StarRow is one STAR hazard-registry record.
type StarRow struct {
	ID         int64  `db:"id"`
	KeyOnTable string `db:"key_on_table"`

	N                       *int64  `db:"n"`
	Country                 *string `db:"country"`
	Level                   *string `db:"level"`
	Year                    *string `db:"year"`
	StartDate               *string `db:"start_date"`
	EndDate                 *string `db:"end_date"`
	SubgroupOfHazards       *string `db:"subgroup_of_hazards"`
	MainTypeOfHazard        *string `db:"main_type_of_hazard"`
	Hazard                  *string `db:"hazard"`
	HealthConsequences      *string `db:"health_consequences"`
	Scale                   *string `db:"scale"`
	GeographicalArea        *string `db:"geographical_area"`
	Exposure                *string `db:"exposure"`
	Frequency               *string `db:"frequency"`
	Seasonality             *string `db:"seasonality"`
	Jan                     *string `db:"jan"`
	Feb                     *string `db:"feb"`
	Mar                     *string `db:"mar"`
	Apr                     *string `db:"apr"`
	May                     *string `db:"may"`
	Jun                     *string `db:"jun"`
	Jul                     *string `db:"jul"`
	Aug                     *string `db:"aug"`
	Sep                     *string `db:"sep"`
	Oct                     *string `db:"oct"`
	Nov                     *string `db:"nov"`
	Dec                     *string `db:"dec"`
	Likelihood              *string `db:"likelihood"`
	Severity                *string `db:"severity"`
	Vulnerability           *string `db:"vulnerability"`
	VulnerabilityDetails    *string `db:"vulnerability_details"`
	CopingCapacity          *string `db:"coping_capacity"`
	CopingCapacityDetails   *string `db:"coping_capacity_details"`
	GovernanceAndResouces   *string `db:"governance_and_resouces"`
	HealthSectorCapacity    *string `db:"health_sector_capacity"`
	NonHealthSectorCapcity  *string `db:"non_health_sector_capcity"`
	CommutyCapacity         *string `db:"commuty_capacity"`
	Resources               *string `db:"resources"`
	Impact                  *string `db:"impact"`
	ConfidenceLevel         *string `db:"confidence_level"`
	RiskLevel               *string `db:"risk_level"`
	RiskLevelNumber         *string `db:"risk_level_number"`
	Status                  *string `db:"status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
