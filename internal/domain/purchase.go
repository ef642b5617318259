package domain

// Field names of a purchase document. The underscore-prefixed ones are assigned by the server.
const (
	FieldID          = "_id"
	FieldCreatedAt   = "_created_at"
	FieldUpdatedAt   = "_updated_at"
	FieldMarket      = "market"
	FieldDollarValue = "dollar_value"
	FieldEuroValue   = "euro_value"
	FieldBTCPrice    = "bitcoin_price"
	FieldBTCVolume   = "bitcoin_volume"
)

// Purchase is a recorded crypto purchase scoped to one exchange market.
// Fields holds the client-supplied values constrained by the purchase schema.
type Purchase struct {
	ID        string
	Market    string
	Fields    map[string]any
	CreatedAt int64
	UpdatedAt *int64
}

// Document flattens the purchase into the shape served to clients.
func (p *Purchase) Document() map[string]any {
	doc := make(map[string]any, len(p.Fields)+4)
	for k, v := range p.Fields {
		doc[k] = v
	}
	doc[FieldID] = p.ID
	doc[FieldMarket] = p.Market
	doc[FieldCreatedAt] = p.CreatedAt
	if p.UpdatedAt != nil {
		doc[FieldUpdatedAt] = *p.UpdatedAt
	}
	return doc
}
