// Package xlsxtable renders spreadsheet uploads as line-oriented table
// markup, mirroring what htmltable does for HTML mail bodies.
package xlsxtable

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Flatten reads an xlsx workbook and renders its first sheet as a TABLE
// block. The first non-empty row is taken as the header.
func Flatten(data []byte) (string, error) {
	wb, err := xlsx.OpenBinary(data)
	if err != nil {
		return "", eris.Wrap(err, "xlsxtable: open workbook")
	}
	if len(wb.Sheets) == 0 {
		return "", eris.New("xlsxtable: workbook has no sheets")
	}

	sheet := wb.Sheets[0]
	var sb strings.Builder
	sb.WriteString("TABLE:\n")
	wroteHeader := false
	for _, row := range sheet.Rows {
		cells := rowValues(row)
		if len(cells) == 0 {
			continue
		}
		if !wroteHeader {
			sb.WriteString("HEADER: ")
			wroteHeader = true
		} else {
			sb.WriteString("ROW: ")
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
	}
	if !wroteHeader {
		return "", eris.New("xlsxtable: sheet is empty")
	}
	return sb.String(), nil
}

func rowValues(row *xlsx.Row) []string {
	cells := make([]string, 0, len(row.Cells))
	empty := true
	for _, cell := range row.Cells {
		v := strings.TrimSpace(cell.String())
		if v != "" {
			empty = false
		}
		cells = append(cells, v)
	}
	if empty {
		return nil
	}
	// Trim trailing blank columns so the pipe row stays tight.
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
