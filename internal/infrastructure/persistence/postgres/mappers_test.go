package postgres

import (
	"testing"

	"github.com/DanielPopoola/coinledger/internal/domain"
	"github.com/DanielPopoola/coinledger/internal/validation"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorableNumber(t *testing.T) {
	tests := []struct {
		in   json.Number
		want json.Number
	}{
		{in: "100", want: "100"},
		{in: "92.5", want: "92.5"},
		{in: "1e3", want: "1000.0"},
		{in: "1E3", want: "1000.0"},
		{in: "1.5e3", want: "1500.0"},
		{in: "2.5e-4", want: "0.00025"},
		{in: "-3e2", want: "-300.0"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got := storableNumber(tt.in)
			assert.Equal(t, tt.want, got)

			inKind, _ := validation.KindOf(tt.in)
			outKind, _ := validation.KindOf(got)
			assert.Equal(t, inKind, outKind)
		})
	}
}

func TestEncodeFields_KeepsFloatKindForExponents(t *testing.T) {
	data, err := encodeFields(map[string]any{
		domain.FieldDollarValue: json.Number("1e3"),
		domain.FieldEuroValue:   json.Number("7"),
	})
	require.NoError(t, err)

	p, err := toDomainModel(PurchaseModel{ID: uuid.New(), Data: []byte(data)})
	require.NoError(t, err)

	kind, _ := validation.KindOf(p.Fields[domain.FieldDollarValue])
	assert.Equal(t, validation.KindFloat, kind)
	kind, _ = validation.KindOf(p.Fields[domain.FieldEuroValue])
	assert.Equal(t, validation.KindInt, kind)
}

func TestEncodeFields_Nil(t *testing.T) {
	data, err := encodeFields(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", data)
}

func TestParseID(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	parsed, err := parseID(formatID(id))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = parseID("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
