package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractServiceDate(t *testing.T) {
	a := newTestAnalyzer(nil)

	tests := []struct {
		name    string
		section string
		want    string
	}{
		{"iso passes through", "Leveren op 2025-10-11 in Brussel", "2025-10-11"},
		{"marker with slashes", "Datum: 11/10/2025", "2025-10-11"},
		{"bare slash date day first", "graag 11/10/2025 voor 10:00", "2025-10-11"},
		{"two digit year", "leverdatum: 11/10/25", "2025-10-11"},
		{"dashes day first", "op 11-10-25 bezorgen", "2025-10-11"},
		{"weekday with clock year", "vrijdag 17/10 leveren", "2025-10-17"},
		{"no date defaults to tomorrow", "graag zo snel mogelijk leveren", "2025-10-11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.extractServiceDate(tt.section))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	now := testNow()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso unchanged", "2025-10-11", "2025-10-11"},
		{"slash day first", "11/10/2025", "2025-10-11"},
		{"dash day first short year", "11-10-25", "2025-10-11"},
		{"dash year first", "2025-10-11", "2025-10-11"},
		{"garbage defaults to tomorrow", "volgende week", "2025-10-11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in, now))
		})
	}
}

func TestNormalizeDate_Idempotent(t *testing.T) {
	now := testNow()
	once := NormalizeDate("11/10/2025", now)
	assert.Equal(t, once, NormalizeDate(once, now))
}
