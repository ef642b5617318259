package exchange

// Market is the subset of a /markets element the service relies on.
// Symbol is a pointer so a missing or null symbol can be told apart from an empty one.
type Market struct {
	Symbol *string `json:"symbol"`
}
