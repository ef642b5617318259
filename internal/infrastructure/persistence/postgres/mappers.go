package postgres

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanielPopoola/coinledger/internal/domain"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// formatID renders an id the way clients see it: 32 hex characters.
func formatID(id uuid.UUID) string {
	return hex.EncodeToString(id[:])
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return parsed, nil
}

// encodeFields serializes document fields for the JSONB column.
func encodeFields(fields map[string]any) (string, error) {
	normalized := make(map[string]any, len(fields))
	for k, v := range fields {
		if n, ok := v.(json.Number); ok {
			v = storableNumber(n)
		}
		normalized[k] = v
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("encode purchase fields: %w", err)
	}
	return string(data), nil
}

// storableNumber rewrites exponent notation as a plain decimal with a fraction.
// Postgres numeric drops the exponent on input, so 1e3 would come back as the
// integer 1000.
func storableNumber(n json.Number) json.Number {
	s := n.String()
	if !strings.ContainsAny(s, "eE") {
		return n
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return n
	}

	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return json.Number(out)
}

// toDomainModel decodes the JSONB document keeping numbers as json.Number,
// so integers and floats come back exactly as they were written.
func toDomainModel(m PurchaseModel) (*domain.Purchase, error) {
	fields := map[string]any{}
	if len(m.Data) > 0 {
		dec := json.NewDecoder(bytes.NewReader(m.Data))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("decode purchase %s: %w", formatID(m.ID), err)
		}
	}

	return &domain.Purchase{
		ID:        formatID(m.ID),
		Market:    m.Market,
		Fields:    fields,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
