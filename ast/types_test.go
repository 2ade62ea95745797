package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestMetaFirstOccurrenceWins(t *testing.T) {
	var w withMetadata
	w.AddMetadata(NewMetadata("statement", "first.pdf"), NewMetadata("statement", "second.pdf"))

	value, ok := w.Meta("statement")
	assert.True(t, ok)
	assert.Equal(t, "first.pdf", value.String())

	_, ok = w.Meta("receipt")
	assert.False(t, ok)
}

func TestMetadataValueString(t *testing.T) {
	str := "statements/2024-02-28.pdf"
	account := Account("Assets:Francis:Bank")
	number := "42.50"
	yes := true
	no := false
	date, _ := NewDate("2024-01-15")

	tests := []struct {
		name     string
		value    *MetadataValue
		wantType string
		want     string
	}{
		{"string", &MetadataValue{StringValue: &str}, "string", str},
		{"date", &MetadataValue{Date: date}, "date", "2024-01-15"},
		{"account", &MetadataValue{Account: &account}, "account", "Assets:Francis:Bank"},
		{"number", &MetadataValue{Number: &number}, "number", "42.50"},
		{"true", &MetadataValue{Boolean: &yes}, "boolean", "TRUE"},
		{"false", &MetadataValue{Boolean: &no}, "boolean", "FALSE"},
		{"empty", &MetadataValue{}, "unknown", ""},
		{"nil", nil, "nil", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.value.Type())
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "journal.beancount:12", Position{Filename: "journal.beancount", Line: 12, Column: 3}.String())
	assert.Equal(t, "12:3", Position{Line: 12, Column: 3}.String())
	assert.True(t, Position{}.IsZero())
	assert.False(t, Position{Line: 1}.IsZero())
}

func TestDateZero(t *testing.T) {
	var nilDate *Date
	assert.True(t, nilDate.IsZero())
	assert.Equal(t, "", nilDate.String())
	assert.True(t, (&Date{}).IsZero())
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "-100.00 GBP", NewAmount("-100.00", "GBP").String())

	var amount *Amount
	assert.Equal(t, "", amount.String())
}
