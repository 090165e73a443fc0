package domain

// Product types carried by the static catalog.
const (
	TypeKneeHigh  = "knee-high"
	TypePanty     = "panty"
	TypeThighHigh = "thigh-high"
)

// Product is a static catalog record. The catalog is read-only and lives in
// memory; products are identified by their code, not a database id.
type Product struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Compression   string   `json:"compression"`
	Category      []string `json:"category"`
	Colors        []string `json:"colors"`
	PriceSale     float64  `json:"price_sale"`
	PriceOriginal float64  `json:"price_original"`
	ImageURL      string   `json:"image_url"`
	Description   string   `json:"description"`
}
