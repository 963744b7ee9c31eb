// Package csvtext parses delimited text the way the upstream open-data
// portals actually serve it: quoted fields, "" escapes, LF or CRLF row
// endings, stray blank lines. Parsing is format-only; semantic cleaning
// (sentinel tokens, trimming of values) belongs to the callers.
package csvtext

import "strings"

// Rows splits content into records of raw fields using a single-pass
// state machine. Lenient, best-effort: an unterminated quote consumes
// the rest of the input into the final field instead of failing, and a
// record whose fields are all empty is dropped (tolerates trailing blank
// lines).
func Rows(content string, delim byte) [][]string {
	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		if !allEmpty(row) {
			rows = append(rows, row)
		}
		row = nil
	}

	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(content) && content[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case !inQuotes && c == delim:
			endField()
		case !inQuotes && (c == '\n' || c == '\r'):
			if c == '\r' && i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			field.WriteByte(c)
		}
	}

	// flush whatever remains when input ends without a newline
	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}
	return rows
}

// Records zips the first row as headers into header-keyed maps, one per
// subsequent row. A byte-order mark on the first header cell is stripped
// and headers are trimmed; cell values stay raw. A row shorter than the
// header yields empty strings for the missing columns.
func Records(content string, delim byte) []map[string]string {
	rows := Rows(content, delim)
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

func allEmpty(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
