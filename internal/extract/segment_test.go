package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_TablePairsHeaderWithRows(t *testing.T) {
	text := "TABLE:\n" +
		"HEADER: Klant | Adres | Tijd\n" +
		"ROW: Bakkerij Jan | Kerkstraat 12, 1000 Brussel | 08:00 - 10:00\n" +
		"ROW: Slagerij Piet | Stationsplein 3, 2000 Antwerpen | 10:00 - 12:00\n"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.True(t, strings.HasPrefix(sections[0], "Klant | Adres | Tijd\n"))
	assert.Contains(t, sections[0], "Bakkerij Jan")
	assert.True(t, strings.HasPrefix(sections[1], "Klant | Adres | Tijd\n"))
	assert.Contains(t, sections[1], "Slagerij Piet")
}

func TestSegment_NumberedBoldEntries(t *testing.T) {
	text := "Leveringen voor morgen:\n" +
		"1. **ORD-100** Kerkstraat 12, 1000 Brussel, voor 10:00\n" +
		"2. **ORD-101** Stationsplein 3, 2000 Antwerpen, na 14:00\n"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Contains(t, sections[0], "ORD-100")
	assert.NotContains(t, sections[0], "**")
	assert.Contains(t, sections[1], "ORD-101")
	assert.NotContains(t, sections[1], "ORD-100")
}

func TestSegment_NumberedLastEntryRunsToEnd(t *testing.T) {
	text := "1. **ORD-100** Kerkstraat 12, 1000 Brussel\n" +
		"2. **ORD-101** Stationsplein 3, 2000 Antwerpen\nExtra instructie: bel bij aankomst."

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Contains(t, sections[1], "Extra instructie")
}

func TestSegment_FreeTextAnchors(t *testing.T) {
	text := "Levering 1: Kerkstraat 12, 1000 Brussel, referentie ORD-100, voor 10:00.\n" +
		"Levering 2: Stationsplein 3, 2000 Antwerpen, referentie ORD-101, na 14:00.\n"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Contains(t, sections[0], "ORD-100")
	assert.Contains(t, sections[1], "ORD-101")
}

func TestSegment_TerseNumberedEntriesKept(t *testing.T) {
	text := "1. ORD-100 Kerkstraat 12, 1000 Brussel, voor 10:00\n" +
		"2. ORD-101 Gent\n"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Contains(t, sections[1], "ORD-101")
}

func TestSegment_AddressBlocksSplit(t *testing.T) {
	text := "Adres: Kerkstraat 12, 1000 Brussel, contact Jan Peeters, graag voor 10:00.\n" +
		"Adres: Stationsplein 3, 2000 Antwerpen, contact Piet Claes, na 14:00.\n"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Contains(t, sections[0], "Kerkstraat 12")
	assert.Contains(t, sections[1], "Stationsplein 3")
}

func TestSegment_FieldBlockStaysTogether(t *testing.T) {
	// A single delivery written as a block of fields must not be split on
	// the field lines.
	text := "REF: TEST-001\n" +
		"Adres: Kerkstraat 1, 1000 Brussel\n" +
		"Contact: Jan Peeters\n" +
		"Tel: +32 477 12 34 56\n" +
		"Datum: 11/10/2025\n" +
		"Tijd: 10:00 - 12:00"

	sections := Segment(text)
	require.Len(t, sections, 1)
	assert.Contains(t, sections[0], "TEST-001")
	assert.Contains(t, sections[0], "10:00 - 12:00")
}

func TestSegment_NeverEmpty(t *testing.T) {
	sections := Segment("kort")
	require.NotEmpty(t, sections)
	assert.Equal(t, []string{"kort"}, sections)
}
