package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeworks/docscan/internal/model"
)

func TestExtractWithPatterns_FieldBlock(t *testing.T) {
	a := newTestAnalyzer(nil)
	text := "REF: TEST-001\n" +
		"Adres: Kerkstraat 1, 1000 Brussel\n" +
		"Contact: Jan Peeters\n" +
		"Tel: +32 477 12 34 56\n" +
		"Datum: 11/10/2025\n" +
		"Tijd: 10:00 - 12:00"

	records := a.extractWithPatterns(text)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "TEST-001", rec.CustomerRef)
	assert.Equal(t, "Kerkstraat 1, 1000 Brussel", rec.DeliveryAddress.Line1)
	assert.Equal(t, "Jan Peeters", rec.DeliveryAddress.ContactName)
	assert.Equal(t, "+32 477 12 34 56", rec.DeliveryAddress.ContactPhone)
	assert.Equal(t, "2025-10-11", rec.ServiceDate)
	assert.Equal(t, "10:00", rec.TimeWindowStart)
	assert.Equal(t, "12:00", rec.TimeWindowEnd)
	assert.Equal(t, "Geëxtraheerd uit sectie 1", rec.Notes)
	assert.Equal(t, "TASK-0", rec.TaskID)
}

func TestExtractWithPatterns_PipeTableTwoRows(t *testing.T) {
	a := newTestAnalyzer(nil)
	text := "Leveringen:\n" +
		"| Ref | Klant | Adres | Tijd |\n" +
		"|-----|-------|-------|------|\n" +
		"| ORD-100 | Bakkerij Jan | Kerkstraat 12, 1000 Brussel | 08:00 - 10:00 |\n" +
		"| ORD-101 | Slagerij Piet | Stationsplein 3, 2000 Antwerpen | 10:00 - 12:00 |\n"

	records := a.extractWithPatterns(renderPipeTables(text))
	require.Len(t, records, 2)
	assert.Equal(t, "ORD-100", records[0].CustomerRef)
	assert.Equal(t, "Kerkstraat 12, 1000 Brussel", records[0].DeliveryAddress.Line1)
	assert.Equal(t, "08:00", records[0].TimeWindowStart)
	assert.Equal(t, "ORD-101", records[1].CustomerRef)
	assert.Equal(t, "Slagerij Piet", records[1].DeliveryAddress.ContactName)
}

func TestExtractWithPatterns_DiscardsBoilerplate(t *testing.T) {
	a := newTestAnalyzer(nil)
	text := "Levering 1: ORD-100 naar Kerkstraat 12, 1000 Brussel graag voor 10:00 vandaag.\n\n" +
		"Levering 2: met vriendelijke groet en alvast bedankt voor de goede samenwerking dit jaar.\n"

	records := a.extractWithPatterns(text)
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-100", records[0].CustomerRef)
}

func TestExtractWithPatterns_NeverEmpty(t *testing.T) {
	a := newTestAnalyzer(nil)
	records := a.extractWithPatterns("korte mail zonder gegevens, alvast bedankt")
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "AUTO-1", rec.CustomerRef)
	assert.Equal(t, model.AddressNotFound, rec.DeliveryAddress.Line1)
	assert.NotEmpty(t, rec.ServiceDate)
	assert.Equal(t, "09:00", rec.TimeWindowStart)
	assert.Equal(t, "17:00", rec.TimeWindowEnd)
	require.Len(t, rec.Items, 1)
	assert.Equal(t, model.ItemDefault, rec.Items[0].Description)
}

func TestExtractWithPatterns_AutoRefWhenOnlyAddress(t *testing.T) {
	a := newTestAnalyzer(nil)
	records := a.extractWithPatterns("Graag morgen bezorgen op Koningstraat 8, 1000 Brussel. Alvast bedankt!")
	require.Len(t, records, 1)
	assert.Equal(t, "AUTO-1", records[0].CustomerRef)
	assert.Equal(t, "Koningstraat 8, 1000 Brussel. Alvast bedankt!", records[0].DeliveryAddress.Line1)
}
