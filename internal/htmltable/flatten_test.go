package htmltable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_TableWithHeader(t *testing.T) {
	out := Flatten(`<table>
		<tr><th>Ref</th><th>Adres</th></tr>
		<tr><td>ORD-100</td><td>Kerkstraat 12, 1000 Brussel</td></tr>
		<tr><td>ORD-101</td><td>Stationsplein 3, 2000 Antwerpen</td></tr>
	</table>`)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "TABLE:", lines[0])
	assert.Equal(t, "HEADER: Ref | Adres", lines[1])
	assert.Equal(t, "ROW: ORD-100 | Kerkstraat 12, 1000 Brussel", lines[2])
	assert.Equal(t, "ROW: ORD-101 | Stationsplein 3, 2000 Antwerpen", lines[3])
}

func TestFlatten_HeaderlessTable(t *testing.T) {
	out := Flatten(`<table><tr><td>ORD-100</td><td>Kerkstraat 12</td></tr></table>`)
	assert.Contains(t, out, "ROW: ORD-100 | Kerkstraat 12")
	assert.NotContains(t, out, "HEADER:")
}

func TestFlatten_MixedContent(t *testing.T) {
	out := Flatten(`<p>Beste planner,</p>
		<table><tr><td>ORD-100</td><td>Kerkstraat 12</td></tr></table>
		<p>Alvast bedankt</p>`)

	assert.Contains(t, out, "Beste planner,")
	assert.Contains(t, out, "ROW: ORD-100 | Kerkstraat 12")
	assert.Contains(t, out, "Alvast bedankt")
}

func TestFlatten_SkipsScriptAndStyle(t *testing.T) {
	out := Flatten(`<style>body { color: red }</style><script>alert(1)</script><p>inhoud</p>`)
	assert.Equal(t, "inhoud", out)
}

func TestFlatten_NestedMarkupInCells(t *testing.T) {
	out := Flatten(`<table><tr><td><b>ORD-100</b> <span>met spoed</span></td><td>Kerkstraat 12</td></tr></table>`)
	assert.Contains(t, out, "ROW: ORD-100 met spoed | Kerkstraat 12")
}
