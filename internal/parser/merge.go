package parser

import (
	"fmt"

	"github.com/caminohealth/camino-backend/internal/domain"
)

// mergeKey derives the dedup key for an authoritative record from its
// data-type tag.
func mergeKey(event domain.Event) string {
	switch event.DataType {
	case domain.DataTypeSignal:
		return fmt.Sprintf("signal-%s-%s-%s", event.Country, event.Disease, truncate(event.ReportDate, 10))
	case domain.DataTypeReadinessSummary:
		return fmt.Sprintf("summary-%s-%s-%s", event.Country, event.District, event.Disease)
	case domain.DataTypeReadinessCategory:
		return fmt.Sprintf("category-%s-%s-%s-%s", event.Country, event.District, event.Disease, event.CategoryCode)
	default:
		return fmt.Sprintf("other-%s", event.ID)
	}
}

// existingKey keys stored records under a distinct namespace so they
// never collide with freshly parsed ones.
func existingKey(event domain.Event) string {
	return fmt.Sprintf("existing-%s-%s-%s", event.Country, event.Disease, truncate(event.ReportDate, 10))
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// CombineAndDeduplicate merges freshly parsed records with previously
// stored ones. Authoritative records are inserted first (priority 1,
// last-write-wins among themselves); stored records (priority 2) only
// fill keys that are still free, so authoritative data always wins.
// Output order is not guaranteed.
func CombineAndDeduplicate(authoritative, existing []domain.Event) []domain.Event {
	merged := make(map[string]domain.Event, len(authoritative)+len(existing))

	for _, event := range authoritative {
		event.SourcePriority = 1
		merged[mergeKey(event)] = event
	}

	for _, event := range existing {
		key := existingKey(event)
		if _, ok := merged[key]; ok {
			continue
		}
		event.SourcePriority = 2
		merged[key] = event
	}

	out := make([]domain.Event, 0, len(merged))
	for _, event := range merged {
		out = append(out, event)
	}
	return out
}
