package csvcatalog

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"scentMatch/domain"
)

// fixed non-accord columns of the catalog file
const (
	colName           = "name"
	colBrand          = "brand"
	colRatingValue    = "ratingValue"
	colRatingCount    = "ratingCount"
	colGenderScore    = "gender_score"
	colPriceValue     = "priceValue_score"
	colTimeOfDay      = "timeOfDay_score"
	colSeasonScore    = "season_score"
	colNotesBreakdown = "notesBreakdown"
)

// Repository loads the catalog from a CSV feature table. Column indices
// are resolved once from the header row; any missing column or
// non-numeric feature cell is a SchemaViolation, fatal at startup.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

type columnIndex struct {
	name, brand              int
	ratingValue, ratingCount int
	gender, priceValue       int
	timeOfDay, season        int
	notesBreakdown           int
	accords                  [domain.NumAccords]int
}

func (r *Repository) Load(ctx context.Context) ([]domain.Fragrance, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(bufio.NewReader(f))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &domain.SchemaViolationError{Reason: fmt.Sprintf("malformed csv: %v", err)}
	}
	if len(records) == 0 {
		return nil, &domain.SchemaViolationError{Reason: "empty catalog file"}
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	items := make([]domain.Fragrance, 0, len(records)-1)
	for rowNum, rec := range records[1:] {
		item, err := parseRow(rec, cols, rowNum+2)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func resolveColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.TrimSpace(h)] = i
	}

	var cols columnIndex
	var missing []string

	lookup := func(name string) int {
		if i, ok := byName[name]; ok {
			return i
		}
		missing = append(missing, name)
		return -1
	}

	cols.name = lookup(colName)
	cols.brand = lookup(colBrand)
	cols.ratingValue = lookup(colRatingValue)
	cols.ratingCount = lookup(colRatingCount)
	cols.gender = lookup(colGenderScore)
	cols.priceValue = lookup(colPriceValue)
	cols.timeOfDay = lookup(colTimeOfDay)
	cols.season = lookup(colSeasonScore)
	cols.notesBreakdown = lookup(colNotesBreakdown)
	for i, accord := range domain.AccordNames {
		cols.accords[i] = lookup(accord)
	}

	if len(missing) > 0 {
		return cols, &domain.SchemaViolationError{Reason: "missing columns: " + strings.Join(missing, ", ")}
	}
	return cols, nil
}

func parseRow(rec []string, cols columnIndex, rowNum int) (domain.Fragrance, error) {
	var item domain.Fragrance

	field := func(col int) string {
		if col < 0 || col >= len(rec) {
			return ""
		}
		return rec[col]
	}

	numeric := func(col int, colName string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(field(col)), 64)
		if err != nil {
			return 0, &domain.SchemaViolationError{
				Reason: fmt.Sprintf("row %d: non-numeric value %q in column %s", rowNum, field(col), colName),
			}
		}
		return v, nil
	}

	item.Name = strings.TrimSpace(field(cols.name))
	item.Brand = strings.TrimSpace(field(cols.brand))
	item.NotesBreakdown = field(cols.notesBreakdown)

	var err error
	if item.RatingValue, err = numeric(cols.ratingValue, colRatingValue); err != nil {
		return item, err
	}

	count, err := numeric(cols.ratingCount, colRatingCount)
	if err != nil {
		return item, err
	}
	if count < 0 {
		return item, &domain.SchemaViolationError{Reason: fmt.Sprintf("row %d: negative ratingCount", rowNum)}
	}
	item.RatingCount = int(count)

	if item.GenderScore, err = numeric(cols.gender, colGenderScore); err != nil {
		return item, err
	}
	if item.PriceValueScore, err = numeric(cols.priceValue, colPriceValue); err != nil {
		return item, err
	}
	if item.TimeOfDayScore, err = numeric(cols.timeOfDay, colTimeOfDay); err != nil {
		return item, err
	}
	if item.SeasonScore, err = numeric(cols.season, colSeasonScore); err != nil {
		return item, err
	}
	for i, accord := range domain.AccordNames {
		if item.Accords[i], err = numeric(cols.accords[i], accord); err != nil {
			return item, err
		}
	}

	return item, nil
}
