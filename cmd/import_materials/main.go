// import_materials generates a seed SQL script for the materials table
// from a supplier price list in CSV format.
//
// Expected columns: name, unit, unit_price, stock, min_stock
// (header row required; extra columns are ignored).
//
// Usage: go run ./cmd/import_materials <business-uuid> [path/pricelist.csv]
// By default it reads pricelist.csv from the current directory.
// Writes: internal/infrastructure/postgres/migrations/002_seed_materials.sql
//
// Supplier exports are often Windows-1252 or ISO-8859-1 encoded; the file
// is transparently re-encoded to UTF-8 unless it already is UTF-8.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type materialRow struct {
	name      string
	unit      string
	unitPrice decimal.Decimal
	stock     decimal.Decimal
	minStock  decimal.Decimal
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import_materials <business-uuid> [pricelist.csv]")
		os.Exit(1)
	}
	businessID, err := uuid.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid business id: %v\n", err)
		os.Exit(1)
	}

	csvPath := "pricelist.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read CSV: %v\n", err)
		os.Exit(1)
	}

	var src io.Reader = strings.NewReader(string(raw))
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV has no data rows")
		os.Exit(1)
	}

	cols := headerIndex(records[0])
	for _, required := range []string{"name", "unit", "unit_price"} {
		if _, ok := cols[required]; !ok {
			fmt.Fprintf(os.Stderr, "missing required column %q\n", required)
			os.Exit(1)
		}
	}

	var rows []materialRow
	for i, rec := range records[1:] {
		row, err := parseRow(rec, cols)
		if err != nil {
			fmt.Fprintf(os.Stderr, "row %d: %v (skipped)\n", i+2, err)
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no valid rows in CSV")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_materials.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Materials seed generated from %s\n", filepath.Base(csvPath))
	fmt.Fprintf(out, "-- Business: %s\n\n", businessID)
	out.WriteString("INSERT INTO materials (id, business_id, name, unit, unit_price, stock, min_stock, created_at, updated_at) VALUES\n")
	for i, row := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', %s, %s, %s, now(), now())%s\n",
			uuid.NewString(), businessID, escapeSQL(row.name), escapeSQL(row.unit),
			row.unitPrice, row.stock, row.minStock, sep)
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	fmt.Printf("generated %s: %d materials\n", outPath, len(rows))
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func parseRow(rec []string, cols map[string]int) (materialRow, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	name := get("name")
	unit := get("unit")
	if name == "" || unit == "" {
		return materialRow{}, fmt.Errorf("empty name or unit")
	}

	price, err := parseDecimal(get("unit_price"))
	if err != nil {
		return materialRow{}, fmt.Errorf("unit_price: %w", err)
	}
	if price.IsNegative() {
		return materialRow{}, fmt.Errorf("unit_price is negative")
	}

	stock := decimal.Zero
	if s := get("stock"); s != "" {
		if stock, err = parseDecimal(s); err != nil {
			return materialRow{}, fmt.Errorf("stock: %w", err)
		}
	}
	minStock := decimal.Zero
	if s := get("min_stock"); s != "" {
		if minStock, err = parseDecimal(s); err != nil {
			return materialRow{}, fmt.Errorf("min_stock: %w", err)
		}
	}

	return materialRow{name: name, unit: unit, unitPrice: price, stock: stock, minStock: minStock}, nil
}

// parseDecimal accepts Indonesian-style notation with a comma decimal
// separator ("12.500,50") as well as plain decimal notation ("12500.50").
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if strings.Count(s, ".") > 1 {
		s = strings.ReplaceAll(s, ".", "")
	}
	return decimal.NewFromString(s)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
