package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/parser"
	"github.com/caminohealth/camino-backend/internal/pkg/logger"
)

// esparSkipRows is the preamble every ESPAR workbook sheet carries
// before the header row.
const esparSkipRows = 13

var esparBaseFields = []string{
	"Data Received", "Region", "States Party of IHR", "ISO Code", "Total Average",
}

// ingestEspar walks the year-named sheets of an ESPAR workbook. Header
// columns outside the fixed base set are treated as indicator codes;
// the workbook layout, not a hardcoded list, decides which capacities
// exist in a given year.
func (s *Service) ingestEspar(ctx context.Context, r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	saved := 0
	for _, sheetName := range f.GetSheetList() {
		if !parser.IsYear(sheetName) {
			continue
		}

		n, err := s.ingestEsparSheet(ctx, f, sheetName)
		if err != nil {
			return saved, fmt.Errorf("sheet %s: %w", sheetName, err)
		}
		saved += n
	}

	logger.Infof(ctx, "ingested %d espar rows", saved)
	return saved, nil
}

func (s *Service) ingestEsparSheet(ctx context.Context, f *excelize.File, sheetName string) (int, error) {
	sheet, err := s.store.GetOrCreateSheet(ctx, sheetName)
	if err != nil {
		return 0, fmt.Errorf("get or create sheet: %w", err)
	}

	header, err := parser.SheetColumns(f, sheetName, esparSkipRows)
	if err != nil {
		return 0, err
	}

	base := make(map[string]bool, len(esparBaseFields))
	for _, field := range esparBaseFields {
		base[field] = true
	}

	indicatorCodes := make([]string, 0, len(header))
	for _, label := range header {
		if !base[label] {
			indicatorCodes = append(indicatorCodes, label)
		}
	}

	fields := append(append([]string{}, esparBaseFields...), indicatorCodes...)
	table, err := parser.ExtractSheet(f, sheetName, fields, nil, esparSkipRows)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, raw := range table.Rows {
		espar, err := s.store.UpsertEspar(ctx, &domain.Espar{
			SheetID:      sheet.ID,
			KeyOnTable:   parser.UniqueKey(sheetName, raw.Index),
			DataReceived: raw.Str("Data Received"),
			Region:       raw.Str("Region"),
			States:       raw.Str("States Party of IHR"),
			ISOCode:      raw.Str("ISO Code"),
			TotalAverage: raw.Float("Total Average"),
		})
		if err != nil {
			return saved, fmt.Errorf("row %d: %w", raw.Index, err)
		}

		for _, code := range indicatorCodes {
			indicator := &domain.Indicator{
				EsparID: espar.ID,
				Code:    code,
				Value:   raw.Float(code),
			}
			if err := s.store.UpsertIndicator(ctx, indicator); err != nil {
				return saved, fmt.Errorf("row %d indicator %s: %w", raw.Index, code, err)
			}
		}
		saved++
	}

	return saved, nil
}
