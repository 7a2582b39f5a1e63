// Package csv implements a small, best-effort CSV parser for published
// spreadsheet exports.
//
// Google Sheets CSV exports are close to RFC 4180 but arrive with quirks:
// an optional UTF-8 BOM, CRLF or LF line endings, and occasional blank
// lines. This parser tolerates all of them and never fails on malformed
// quoting — an unterminated quote simply consumes the rest of the line.
// encoding/csv is deliberately not used: it rejects rows whose field count
// differs from the header, while the published sheets routinely omit
// trailing cells.
package csv

import "strings"

// Row is one parsed CSV record. Headers preserves the column order of the
// source file; Values maps each header (as published, trimmed but not
// normalized) to its trimmed cell value. A row always carries every header
// of its dataset — cells missing at the end of a line are empty strings.
type Row struct {
	Headers []string
	Values  map[string]string
}

// Get returns the trimmed cell value for an exact header name, or "" if
// the row has no such column. Header-name tolerance lives in the core
// field resolver, not here.
func (r Row) Get(header string) string {
	return r.Values[header]
}

// Parse turns raw CSV text into rows keyed by the header line.
//
// The first non-blank line provides the headers. Blank and whitespace-only
// lines are discarded, which means a data row consisting of a single
// legitimately-empty cell is indistinguishable from a blank line; the
// published sheets never contain such rows. Parse never returns an error:
// malformed quoting degrades to a best-effort split.
func Parse(text string) []Row {
	text = strings.TrimPrefix(text, "\uFEFF")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}

	headers := splitLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := splitLine(line)
		// A lone separator survives the blank-line filter but carries no data.
		if len(cells) == 1 && cells[0] == "" {
			continue
		}

		values := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				values[h] = strings.TrimSpace(cells[i])
			} else {
				values[h] = ""
			}
		}
		rows = append(rows, Row{Headers: headers, Values: values})
	}
	return rows
}

// splitLine splits one CSV line into cells with RFC-4180-style quoting:
// a quote toggles quoted mode, a doubled quote inside quoted mode is a
// literal quote, and commas only separate fields outside quoted mode.
func splitLine(line string) []string {
	var (
		cells    []string
		current  strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	cells = append(cells, current.String())
	return cells
}
