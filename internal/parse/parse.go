// Package parse extracts structured rows from named tables within a
// rendered page, including tables the source site hides inside HTML
// comments.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/albapepper/footscout/internal/domain"
)

// commentedTable matches an HTML comment that wraps a table carrying a
// "stats_" id — the source site's mechanism for hiding extra tables from
// default rendering.
var commentedTable = regexp.MustCompile(`(?s)<!--(.*?<table[^>]*id="stats_[^"]*".*?)-->`)

// Parse extracts zero or more rows for each requested table id. It is pure:
// the same html and tableIDs always yield the same result.
func Parse(html string, tableIDs []string) (map[string][]domain.RawRow, error) {
	expanded := uncommentStatsTables(html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(expanded))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	out := make(map[string][]domain.RawRow, len(tableIDs))
	for _, id := range tableIDs {
		sel := doc.Find("#" + id)
		if sel.Length() == 0 {
			continue // table absent for this player (e.g. no European section)
		}
		rows := parseTable(sel)
		if len(rows) > 0 {
			out[id] = rows
		}
	}
	return out, nil
}

// uncommentStatsTables strips the comment markers around any table whose id
// starts with "stats_", so goquery can see it like any other DOM table. Only
// comments that actually wrap one of these tables are touched; ordinary
// comments are left alone.
func uncommentStatsTables(html string) string {
	return commentedTable.ReplaceAllString(html, "$1")
}

// parseTable walks the <tbody> rows of a single table selection. Rows living
// in <thead>/<tfoot> are never visited, which is how header rows and the
// source site's aggregated "totals" footer rows are skipped.
func parseTable(sel *goquery.Selection) []domain.RawRow {
	var rows []domain.RawRow

	sel.Find("tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		// Repeated mid-table header rows carry class "thead" on the <tr>.
		if class, _ := tr.Attr("class"); strings.Contains(class, "thead") {
			return
		}
		row := make(domain.RawRow)
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			key, ok := cell.Attr("data-stat")
			if !ok || key == "" {
				return
			}
			row[key] = parseCell(strings.TrimSpace(cell.Text()))
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})

	return rows
}

// parseCell coerces lenient numeric text into a typed CellValue: empty
// becomes null, thousands-separator commas are stripped before parsing,
// and anything that still fails to parse as a number is kept as a string.
func parseCell(text string) domain.CellValue {
	if text == "" {
		return domain.CellValue{IsNull: true}
	}
	stripped := strings.ReplaceAll(text, ",", "")

	if i, err := strconv.ParseInt(stripped, 10, 64); err == nil {
		return domain.CellValue{IsInt: true, I: i}
	}
	if f, err := strconv.ParseFloat(stripped, 64); err == nil {
		return domain.CellValue{IsFlt: true, F: f}
	}
	return domain.CellValue{S: text}
}
