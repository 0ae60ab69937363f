package domain

import "time"

// Sheet is one year-named worksheet of the ESPAR workbook.
type Sheet struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Espar is one states-party row of a sheet, keyed by (sheet, key_on_table).
type Espar struct {
	ID           int64    `db:"id"`
	SheetID      int64    `db:"sheet_id"`
	KeyOnTable   string   `db:"key_on_table"`
	DataReceived *string  `db:"data_received"`
	Region       *string  `db:"region"`
	States       *string  `db:"states"`
	ISOCode      *string  `db:"iso_code"`
	TotalAverage *float64 `db:"total_average"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Indicator is one capacity score (0-100 in steps of 20) on an Espar row.
type Indicator struct {
	ID      int64    `db:"id"`
	EsparID int64    `db:"espar_id"`
	Code    string   `db:"code"`
	Value   *float64 `db:"value"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ScaledScore maps the 0-100 score to 0-5. A missing value scales to 0.
func (i *Indicator) ScaledScore() int {
	if i.Value == nil {
		return 0
	}
	return int(*i.Value / 20)
}

// EsparWithIndicators is the query-side aggregate of one Espar row.
type EsparWithIndicators struct {
	Espar      Espar       `json:"espar"`
	Indicators []Indicator `json:"indicators"`
}

func (e *EsparWithIndicators) WeakIndicators() []Indicator {
	weak := make([]Indicator, 0, len(e.Indicators))
	for _, i := range e.Indicators {
		if i.ScaledScore() <= 2 {
			weak = append(weak, i)
		}
	}
	return weak
}

func (e *EsparWithIndicators) StrongIndicators() []Indicator {
	strong := make([]Indicator, 0, len(e.Indicators))
	for _, i := range e.Indicators {
		if i.ScaledScore() >= 4 {
			strong = append(strong, i)
		}
	}
	return strong
}
