package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// ReadHTMLTable parses records from the first table of an HTML page whose
// header row names every required column. Header cells are matched like CSV
// headers, so the dashboard's own detail table reads back this way.
func ReadHTMLTable(r io.Reader) ([]models.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var table *goquery.Selection
	var cols [numFields]int
	headerErr := fmt.Errorf("no table found: %w", ErrMissingColumn)
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		header := cellTexts(t.Find("tr").First().Find("th, td"))
		c, err := mapColumns(header)
		if err != nil {
			headerErr = err
			return true
		}
		table, cols = t, c
		return false
	})
	if table == nil {
		return nil, headerErr
	}

	var (
		records []models.Record
		rowErr  error
	)
	table.Find("tr").Slice(1, goquery.ToEnd).EachWithBreak(func(i int, tr *goquery.Selection) bool {
		cells := cellTexts(tr.Find("td"))
		if len(cells) == 0 {
			return true
		}
		rec, err := parseRow(cells, cols)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i+1, err)
			return false
		}
		records = append(records, rec)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return records, nil
}

func cellTexts(s *goquery.Selection) []string {
	return s.Map(func(_ int, cell *goquery.Selection) string {
		return strings.TrimSpace(cell.Text())
	})
}
