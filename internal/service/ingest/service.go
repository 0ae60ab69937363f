package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/caminohealth/camino-backend/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewIngestService(store store.Store) *Service {
	return &Service{store: store}
}

// Ingest routes an uploaded file to the loader registered for the
// domain and returns the number of rows persisted.
func (s *Service) Ingest(ctx context.Context, domainName, fileName string, r io.Reader) (int, error) {
	cfg, err := Lookup(domainName)
	if err != nil {
		return 0, err
	}

	switch cfg.Kind {
	case KindReadiness:
		return s.ingestReadiness(ctx, cfg, fileName, r)
	case KindStar:
		return s.ingestStar(ctx, cfg, r)
	case KindEspar:
		return s.ingestEspar(ctx, r)
	case KindCHW:
		return s.ingestCHW(ctx, r)
	default:
		return 0, fmt.Errorf("domain %s: unhandled kind %d", cfg.Name, cfg.Kind)
	}
}
