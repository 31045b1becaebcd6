package importer

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	internal "github.com/frahmantamala/payroll-management/internal"
)

// Header labels recognized in tabular imports. The Russian labels are
// the ones the upstream accounting system exports; unrecognized columns
// are ignored.
var columnLabels = map[string]string{
	"ФИО":            "full_name",
	"full_name":      "full_name",
	"Должность":      "position",
	"position":       "position",
	"Оклад":          "base_salary",
	"base_salary":    "base_salary",
	"Отдел":          "department",
	"department":     "department",
	"ИНН":            "tax_id",
	"tax_id":         "tax_id",
	"БанковскийСчет": "bank_account",
	"bank_account":   "bank_account",
}

// ParseCSV reads a ;-delimited document with a header row. Rows that
// cannot be mapped (too short, unparseable salary) are dropped, not
// fatal; an unreadable document is.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, internal.NewImportFormatError("unparseable CSV document", internal.ErrCodeMalformedDocument).WithCause(err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	// column index -> canonical field name
	fields := make(map[int]string)
	for i, label := range rows[0] {
		if name, ok := columnLabels[strings.TrimSpace(label)]; ok {
			fields[i] = name
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, ok := mapRow(fields, row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func mapRow(fields map[int]string, row []string) (Record, bool) {
	var rec Record
	for i, name := range fields {
		if i >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[i])
		switch name {
		case "full_name":
			rec.FullName = value
		case "position":
			rec.Position = &value
		case "base_salary":
			salary, err := parseSalary(value)
			if err != nil {
				return Record{}, false
			}
			rec.BaseSalary = &salary
		case "department":
			rec.Department = &value
		case "tax_id":
			rec.TaxID = &value
		case "bank_account":
			rec.BankAccount = &value
		}
	}
	return rec, true
}

// parseSalary treats an empty cell as zero, matching the source
// system's habit of exporting blanks for missing numbers.
func parseSalary(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
}

type jsonDocument struct {
	Employees []json.RawMessage `json:"employees"`
}

// ParseJSON reads a structured document carrying a list of employee
// objects under the "employees" key. Elements that fail to decode are
// skipped; a document that is not valid JSON fails the whole batch.
func ParseJSON(r io.Reader) ([]Record, error) {
	var doc jsonDocument
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, internal.NewImportFormatError("unparseable JSON document", internal.ErrCodeMalformedDocument).WithCause(err)
	}

	records := make([]Record, 0, len(doc.Employees))
	for _, raw := range doc.Employees {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
