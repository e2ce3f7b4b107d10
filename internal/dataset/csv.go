// Package dataset loads salary records and keeps them in an immutable
// Store.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// ErrMissingColumn is returned when the header lacks a required field.
var ErrMissingColumn = errors.New("missing column")

type field int

const (
	fieldYear field = iota
	fieldSeniority
	fieldContract
	fieldCompanySize
	fieldRole
	fieldResidence
	fieldRemote
	fieldSalary
	numFields
)

// Header is the column order WriteCSV uses.
var Header = []string{
	"year",
	"seniority",
	"contract",
	"company_size",
	"role",
	"residence_country_code",
	"remote_category",
	"salary_usd",
}

// columnAliases maps accepted header names to fields. Besides the canonical
// names it accepts the Portuguese headers of the cleaned dashboard dataset
// and the raw public data-science salaries headers.
var columnAliases = map[string]field{
	"year":                   fieldYear,
	"ano":                    fieldYear,
	"work_year":              fieldYear,
	"seniority":              fieldSeniority,
	"senioridade":            fieldSeniority,
	"experience_level":       fieldSeniority,
	"contract":               fieldContract,
	"contrato":               fieldContract,
	"employment_type":        fieldContract,
	"company_size":           fieldCompanySize,
	"tamanho_empresa":        fieldCompanySize,
	"role":                   fieldRole,
	"cargo":                  fieldRole,
	"job_title":              fieldRole,
	"residence_country_code": fieldResidence,
	"residencia":             fieldResidence,
	"employee_residence":     fieldResidence,
	"remote_category":        fieldRemote,
	"remoto":                 fieldRemote,
	"remote_ratio":           fieldRemote,
	"remote":                 fieldRemote,
	"residence":              fieldResidence,
	"salary_usd":             fieldSalary,
	"usd":                    fieldSalary,
	"salary_in_usd":          fieldSalary,
}

// ReadCSV parses records from CSV with a header row. Columns are matched by
// name, case-insensitively; unknown columns are ignored.
func ReadCSV(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func mapColumns(header []string) ([numFields]int, error) {
	var cols [numFields]int
	for i := range cols {
		cols[i] = -1
	}
	for i, name := range header {
		if f, ok := columnAliases[normalizeHeader(name)]; ok && cols[f] < 0 {
			cols[f] = i
		}
	}
	var missing []string
	for f, idx := range cols {
		if idx < 0 {
			missing = append(missing, Header[f])
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

// normalizeHeader lowercases name and collapses every run of other
// characters into one underscore, so "Company size" and "Salary (USD)" match
// company_size and salary_usd.
func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

var salaryCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

func parseRow(row []string, cols [numFields]int) (models.Record, error) {
	get := func(f field) string {
		if cols[f] >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[cols[f]])
	}

	year, err := parseYear(get(fieldYear))
	if err != nil {
		return models.Record{}, err
	}
	salary, err := strconv.ParseFloat(salaryCleaner.Replace(get(fieldSalary)), 64)
	if err != nil {
		return models.Record{}, fmt.Errorf("parse salary: %w", err)
	}
	return models.Record{
		Year:        year,
		Seniority:   get(fieldSeniority),
		Contract:    get(fieldContract),
		CompanySize: get(fieldCompanySize),
		Role:        get(fieldRole),
		Residence:   get(fieldResidence),
		Remote:      get(fieldRemote),
		SalaryUSD:   salary,
	}, nil
}

// parseYear accepts "2023" as well as the "2023.0" that spreadsheet exports
// tend to produce.
func parseYear(s string) (int, error) {
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse year %q: %w", s, err)
	}
	return int(f), nil
}

// WriteCSV writes records under the canonical Header.
func WriteCSV(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			r.Seniority,
			r.Contract,
			r.CompanySize,
			r.Role,
			r.Residence,
			r.Remote,
			strconv.FormatFloat(r.SalaryUSD, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadFile reads a dataset from disk. Files ending in .html or .htm are read
// with ReadHTMLTable, anything else as CSV.
func LoadFile(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	read := ReadCSV
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".html" || ext == ".htm" {
		read = ReadHTMLTable
	}
	records, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
