package ingest

import "github.com/caminohealth/camino-backend/internal/pkg/constants"

// Kind selects the loader a registered domain goes through.
type Kind int

const (
	KindReadiness Kind = iota
	KindStar
	KindEspar
	KindCHW
)

// DomainConfig describes one uploadable dataset: its public name, the
// key prefix its rows are stored under, the loader kind, and for
// readiness questionnaires the extra columns beyond the shared set.
//
// Key is kept verbatim from the historical exports, misspellings
// included ("marbug", "meningitiseelimination"); correcting it would
// orphan every previously stored row.
type DomainConfig struct {
	Name        string
	Key         string
	Kind        Kind
	ExtraFields []string
	Subnational bool
}

// periodFields are carried by every readiness export except the
// arbovirus and meningitis questionnaires.
var periodFields = []string{"data_period", "data_period_id"}

var registry = []DomainConfig{
	{Name: "arbovirus", Key: "arbovirus", Kind: KindReadiness},
	{Name: "cholera", Key: "cholera", Kind: KindReadiness, ExtraFields: periodFields},
	{Name: "cholerasubnational", Key: "cholerasubnational", Kind: KindReadiness, ExtraFields: append(periodFields, "district"), Subnational: true},
	{Name: "cyclone", Key: "cyclone", Kind: KindReadiness, ExtraFields: periodFields},
	{Name: "fvd", Key: "fvd", Kind: KindReadiness, ExtraFields: periodFields},
	{Name: "fvdpoe", Key: "fvdpoe", Kind: KindReadiness, ExtraFields: append(periodFields, "district", "poe_name"), Subnational: true},
	{Name: "lassafever", Key: "lassafever", Kind: KindReadiness, ExtraFields: periodFields},
	{Name: "lassafeverdistrict", Key: "lassafeverdistrict", Kind: KindReadiness, ExtraFields: append(periodFields, "has_international_poe", "district"), Subnational: true},
	{Name: "marburg", Key: "marbug", Kind: KindReadiness, ExtraFields: periodFields},
	{Name: "meningitis", Key: "meningitis", Kind: KindReadiness},
	{Name: "meningitiselimination", Key: "meningitiseelimination", Kind: KindReadiness, ExtraFields: periodFields},
	{Name: "mpox", Key: "mpox", Kind: KindReadiness, ExtraFields: periodFields},
	{Name: "mpoxdistrict", Key: "mpoxdistrict", Kind: KindReadiness, ExtraFields: append(periodFields, "district"), Subnational: true},
	{Name: "naturaldisaster", Key: "naturaldisaster", Kind: KindReadiness, ExtraFields: periodFields},
	{Name: "riftvalleyfever", Key: "riftvalleyfever", Kind: KindReadiness, ExtraFields: periodFields},

	{Name: "stardata", Key: "stardata", Kind: KindStar},
	{Name: "espar", Key: "espar", Kind: KindEspar},
	{Name: "chw", Key: "chw", Kind: KindCHW},
}

// Registry lists every uploadable domain in registration order.
func Registry() []DomainConfig {
	out := make([]DomainConfig, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a domain by its public name.
func Lookup(name string) (DomainConfig, error) {
	for _, cfg := range registry {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return DomainConfig{}, constants.ErrUnknownDomain
}
