package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestMoney_Number(t *testing.T) {
	tests := []struct {
		name  string
		tag   language.Tag
		unit  currency.Unit
		value float64
		want  string
	}{
		{name: "en-US pads cents", tag: language.AmericanEnglish, unit: currency.USD, value: 10.5, want: "10.50"},
		{name: "en-US groups thousands", tag: language.AmericanEnglish, unit: currency.USD, value: 1234.5, want: "1,234.50"},
		{name: "en-US zero", tag: language.AmericanEnglish, unit: currency.USD, value: 0, want: "0.00"},
		{name: "pt-BR uses comma decimals", tag: language.BrazilianPortuguese, unit: currency.BRL, value: 1234.5, want: "1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMoney(tt.tag, tt.unit).Number(tt.value))
		})
	}
}

func TestMoney_Format(t *testing.T) {
	m := NewMoney(language.AmericanEnglish, currency.USD)

	got := m.Format(1.98)
	assert.Contains(t, got, "1.98")
	assert.Contains(t, got, "$")
	assert.Equal(t, m.Symbol()+" 1.98", got)
}
