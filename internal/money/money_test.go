package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "whole units", input: "100", want: 10000},
		{name: "two decimals", input: "100.00", want: 10000},
		{name: "one decimal", input: "12.5", want: 1250},
		{name: "surrounding spaces", input: "  3.50 ", want: 350},
		{name: "zero", input: "0", want: 0},
		{name: "maximum", input: "99999999.99", want: MaxCents},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "three decimals", input: "12.345", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "trailing dot", input: "5.", wantErr: true},
		{name: "leading dot", input: ".5", wantErr: true},
		{name: "too large", input: "100000000", wantErr: true},
		{name: "exponent", input: "1e3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "108.50", FromCents(10850).String())
	assert.Equal(t, "0.05", FromCents(5).String())
	assert.Equal(t, "-1.50", FromCents(-150).String())
	assert.Equal(t, "Rs. 3.50", FromCents(350).Format("Rs."))
	assert.Equal(t, "3.50", FromCents(350).Format(""))
}

func TestMoney_AddIsExact(t *testing.T) {
	total := MustParse("100.00").Add(MustParse("3.50")).Add(MustParse("5.00"))
	assert.Equal(t, "108.50", total.String())

	// 0.1 + 0.2 style drift must not happen
	assert.Equal(t, "0.30", MustParse("0.10").Add(MustParse("0.20")).String())
}

func TestMoney_Value(t *testing.T) {
	v, err := FromCents(10850).Value()
	require.NoError(t, err)
	assert.Equal(t, "108.50", v)
}

func TestMoney_Scan(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Money
	}{
		{name: "sqlite integer", input: int64(100), want: 10000},
		{name: "sqlite real", input: 108.5, want: 10850},
		{name: "mysql bytes", input: []byte("108.50"), want: 10850},
		{name: "postgres string", input: "3.50", want: 350},
		{name: "null", input: nil, want: 0},
		{name: "negative text", input: "-2.25", want: -225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, m.Scan(tt.input))
			assert.Equal(t, tt.want, m)
		})
	}

	var m Money
	assert.Error(t, m.Scan(true))
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}
