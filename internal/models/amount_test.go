package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{25, "25"},
		{25.5, "25.50"},
		{25.554, "25.55"},
		{0.1, "0.10"},
		{1000000, "1000000"},
		{19.999, "20.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.in))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Amount
		wantErr bool
	}{
		{name: "integer", in: "20", want: 20},
		{name: "decimal", in: "12.75", want: 12.75},
		{name: "surrounding spaces", in: " 5 ", want: 5},
		{name: "empty", in: "", wantErr: true},
		{name: "zero", in: "0", wantErr: true},
		{name: "negative", in: "-3", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "NaN", in: "NaN", wantErr: true},
		{name: "infinity", in: "Inf", wantErr: true},
		{name: "leading dot", in: ".5", want: 0.5},
		{name: "exponent", in: "1e3", wantErr: true},
		{name: "hex float", in: "0x1p4", wantErr: true},
		{name: "underscores", in: "1_000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Amount
		wantErr bool
	}{
		{name: "number", body: `{"amount": 20}`, want: 20},
		{name: "string", body: `{"amount": "20.5"}`, want: 20.5},
		{name: "empty string", body: `{"amount": ""}`, want: 0},
		{name: "null", body: `{"amount": null}`, want: 0},
		{name: "bad string", body: `{"amount": "twenty"}`, wantErr: true},
		{name: "bool", body: `{"amount": true}`, wantErr: true},
		{name: "exponent string", body: `{"amount": "2e1"}`, wantErr: true},
		{name: "negative string", body: `{"amount": "-5"}`, want: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Amount Amount `json:"amount"`
			}
			err := json.Unmarshal([]byte(tt.body), &v)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Amount)
		})
	}
}

func TestAmount_Displayable(t *testing.T) {
	tests := []struct {
		in   Amount
		want bool
	}{
		{20, true},
		{0.01, true},
		{0.005, true},
		{0.004, false},
		{0, false},
		{-1, false},
	}

	for _, tt := range tests {
		t.Run(FormatAmount(float64(tt.in)), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Displayable())
		})
	}
}
