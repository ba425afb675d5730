package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rshade/coolroof/internal/calculator"
)

// Scenario is one configuration read from a spreadsheet row.
type Scenario struct {
	Row    int
	Name   string
	Config calculator.Configuration
}

// RowError records a spreadsheet row that was skipped.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// ImportResult is the outcome of reading a scenario workbook.
type ImportResult struct {
	Sheet     string
	Scenarios []Scenario
	Skipped   []RowError
}

// ReadScenarios reads scenarios from the first sheet of an XLSX workbook.
// The first row is a header; area_m2 is required and the remaining columns
// (name, roof_type, roof_insulation, wall_insulation, eer, energy_price,
// emission_factor) fall back to defaults when absent or blank. The eer column
// accepts a number or a band name. Rows that fail to parse or validate are
// skipped and reported in ImportResult.Skipped. Numbers typed as text may use
// a single decimal comma ("0,85").
func ReadScenarios(r io.Reader, defaults calculator.Configuration) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	// Raw values keep number formats such as "#,##0" out of numeric cells;
	// text cells may still carry a decimal comma.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return ImportResult{Sheet: sheet}, fmt.Errorf("%w: %q", ErrEmptySheet, sheet)
	}

	cols := headerIndex(rows[0])
	if _, ok := cols["area_m2"]; !ok {
		return ImportResult{Sheet: sheet}, fmt.Errorf("%w: area_m2", ErrMissingColumn)
	}

	result := ImportResult{Sheet: sheet}
	for i := 1; i < len(rows); i++ {
		rowNum := i + 1
		row := rows[i]
		if isBlank(row) {
			continue
		}
		sc, pErr := parseScenarioRow(row, cols, defaults)
		if pErr == nil {
			pErr = sc.Config.Validate()
		}
		if pErr != nil {
			result.Skipped = append(result.Skipped, RowError{Row: rowNum, Err: pErr})
			continue
		}
		sc.Row = rowNum
		result.Scenarios = append(result.Scenarios, sc)
	}
	return result, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cellValue(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseScenarioRow(row []string, cols map[string]int, defaults calculator.Configuration) (Scenario, error) {
	cfg := defaults
	sc := Scenario{Name: cellValue(row, cols, "name")}

	area := cellValue(row, cols, "area_m2")
	if area == "" {
		return sc, fmt.Errorf("%w: area_m2 is empty", ErrInvalidCell)
	}
	var err error
	if cfg.AreaM2, err = toFloat("area_m2", area); err != nil {
		return sc, err
	}

	if v := cellValue(row, cols, "roof_type"); v != "" {
		if cfg.RoofType, err = calculator.ParseRoofType(v); err != nil {
			return sc, err
		}
	}
	if v := cellValue(row, cols, "roof_insulation"); v != "" {
		if cfg.RoofInsulation, err = calculator.ParseInsulation(v); err != nil {
			return sc, fmt.Errorf("roof_insulation: %w", err)
		}
	}
	if v := cellValue(row, cols, "wall_insulation"); v != "" {
		if cfg.WallInsulation, err = calculator.ParseInsulation(v); err != nil {
			return sc, fmt.Errorf("wall_insulation: %w", err)
		}
	}
	if v := cellValue(row, cols, "eer"); v != "" {
		if cfg.EER, err = parseEER(v); err != nil {
			return sc, err
		}
	}
	if v := cellValue(row, cols, "energy_price"); v != "" {
		if cfg.EnergyPrice, err = toFloat("energy_price", v); err != nil {
			return sc, err
		}
	}
	if v := cellValue(row, cols, "emission_factor"); v != "" {
		if cfg.EmissionFactor, err = toFloat("emission_factor", v); err != nil {
			return sc, err
		}
	}

	sc.Config = cfg
	return sc, nil
}

func parseEER(v string) (float64, error) {
	if f, ok := parseNumber(v); ok {
		return f, nil
	}
	band, err := calculator.ParseEERBand(v)
	if err != nil {
		return 0, err
	}
	return band.Value(), nil
}

func toFloat(column, s string) (float64, error) {
	v, ok := parseNumber(s)
	if !ok {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidCell, column, s)
	}
	return v, nil
}

// parseNumber parses a finite number written with a decimal point or, as in
// Polish-locale workbooks, a single decimal comma. Thousands separators are
// not accepted: "1,000.5" and "1,2,3" are invalid.
func parseNumber(s string) (float64, bool) {
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") || strings.Count(s, ",") > 1 {
			return 0, false
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
