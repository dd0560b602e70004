// Package importer loads a concept catalog from XLSX or CSV files.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/logger"
)

// ListSeparator splits multi-valued cells such as examples and tags.
const ListSeparator = ";"

// Columns maps concept fields to spreadsheet columns ("A", "B", ...).
// An empty column is not read.
type Columns struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Difficulty  string `yaml:"difficulty"`
	Description string `yaml:"description"`
	Examples    string `yaml:"examples"`
	Tags        string `yaml:"tags"`
	Group       string `yaml:"group"`
	Course      string `yaml:"course"`
	Confidence  string `yaml:"confidence"`
}

// Config describes the layout of an import file.
type Config struct {
	Columns Columns `yaml:"columns"`

	// Sheet is the XLSX sheet to read. Empty means the first sheet.
	Sheet string `yaml:"sheet"`

	// StartRow is the 1-based first data row.
	StartRow int `yaml:"start_row"`

	// Used when the cell is empty.
	DefaultCategory   catalog.Category `yaml:"default_category"`
	DefaultDifficulty catalog.Level    `yaml:"default_difficulty"`
	DefaultConfidence float64          `yaml:"default_confidence"`
}

// DefaultConfig reads columns A-I with one header row.
func DefaultConfig() Config {
	return Config{
		Columns: Columns{
			Name:        "A",
			Category:    "B",
			Difficulty:  "C",
			Description: "D",
			Examples:    "E",
			Tags:        "F",
			Group:       "G",
			Course:      "H",
			Confidence:  "I",
		},
		StartRow:          2,
		DefaultCategory:   catalog.CategoryVocabulary,
		DefaultDifficulty: catalog.LevelA1,
		DefaultConfidence: 1,
	}
}

// Result summarizes an import.
type Result struct {
	Processed   int
	Created     int
	Existing    int
	Groups      int
	CourseLinks int
	Errors      []string
}

// ConceptStore is the concept repository plus lookup by name, used to
// keep re-imports idempotent.
type ConceptStore interface {
	catalog.ConceptRepo
	FindByName(ctx context.Context, name string) (*catalog.Concept, error)
}

// Importer writes imported rows to the catalog. groups and courses may
// be nil, in which case those columns are ignored.
type Importer struct {
	concepts ConceptStore
	groups   catalog.GroupRepo
	courses  catalog.CourseRepo
	log      *logger.Logger
}

func New(concepts ConceptStore, groups catalog.GroupRepo, courses catalog.CourseRepo, log *logger.Logger) *Importer {
	return &Importer{
		concepts: concepts,
		groups:   groups,
		courses:  courses,
		log:      logger.OrNop(log).With("component", "importer"),
	}
}

// ImportFile imports a .xlsx or .csv file, chosen by extension.
func (im *Importer) ImportFile(ctx context.Context, path string, cfg Config) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return im.ImportCSV(ctx, f, cfg)
	case ".xlsx", ".xlsm":
		return im.ImportXLSX(ctx, f, cfg)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

// ImportXLSX imports rows from an Excel workbook.
func (im *Importer) ImportXLSX(ctx context.Context, r io.Reader, cfg Config) (*Result, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return im.importRows(ctx, rows, cfg)
}

// ImportCSV imports rows from a CSV stream.
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader, cfg Config) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return im.importRows(ctx, rows, cfg)
}

func (im *Importer) importRows(ctx context.Context, rows [][]string, cfg Config) (*Result, error) {
	res := &Result{Errors: []string{}}
	start := max(cfg.StartRow, 1)

	// Group members are collected and upserted once per group.
	var groupOrder []string
	members := map[string][]string{}

	for i, row := range rows {
		rowNum := i + 1
		if rowNum < start || blank(row) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Processed++

		c, err := parseConcept(row, cfg)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		id, created, err := im.ensureConcept(ctx, c)
		if err != nil {
			return res, fmt.Errorf("row %d: %w", rowNum, err)
		}
		if created {
			res.Created++
		} else {
			res.Existing++
		}

		if g := cell(row, cfg.Columns.Group); g != "" && im.groups != nil {
			if _, ok := members[g]; !ok {
				groupOrder = append(groupOrder, g)
			}
			members[g] = append(members[g], id)
		}

		if course := cell(row, cfg.Columns.Course); course != "" && im.courses != nil {
			conf, err := parseConfidence(cell(row, cfg.Columns.Confidence), cfg.DefaultConfidence)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
				continue
			}
			err = im.courses.Create(ctx, catalog.CourseConcept{
				CourseID:   course,
				ConceptID:  id,
				Confidence: conf,
				Active:     true,
			})
			if err != nil {
				return res, fmt.Errorf("row %d: link course %s: %w", rowNum, course, err)
			}
			res.CourseLinks++
		}
	}

	for _, name := range groupOrder {
		_, err := im.groups.Upsert(ctx, catalog.ConceptGroup{Name: name, MemberConcepts: members[name], Active: true})
		if err != nil {
			return res, fmt.Errorf("upsert group %q: %w", name, err)
		}
		res.Groups++
	}

	im.log.Info("import finished",
		"processed", res.Processed,
		"created", res.Created,
		"existing", res.Existing,
		"groups", res.Groups,
		"errors", len(res.Errors),
	)
	return res, nil
}

// ensureConcept returns the id of the concept with c's name, creating it
// if needed.
func (im *Importer) ensureConcept(ctx context.Context, c catalog.Concept) (string, bool, error) {
	existing, err := im.concepts.FindByName(ctx, c.Name)
	if err != nil {
		return "", false, fmt.Errorf("look up concept %q: %w", c.Name, err)
	}
	if existing != nil {
		return existing.ID, false, nil
	}
	created, err := im.concepts.Create(ctx, c)
	if err != nil {
		return "", false, err
	}
	return created.ID, true, nil
}

func parseConcept(row []string, cfg Config) (catalog.Concept, error) {
	c := catalog.Concept{
		Name:        cell(row, cfg.Columns.Name),
		Category:    cfg.DefaultCategory,
		Difficulty:  cfg.DefaultDifficulty,
		Description: cell(row, cfg.Columns.Description),
		Examples:    splitList(cell(row, cfg.Columns.Examples)),
		Tags:        splitList(cell(row, cfg.Columns.Tags)),
		Active:      true,
	}
	if c.Name == "" {
		return c, errors.New("name is empty")
	}
	if v := cell(row, cfg.Columns.Category); v != "" {
		cat, ok := catalog.ParseCategory(v)
		if !ok {
			return c, fmt.Errorf("unknown category %q", v)
		}
		c.Category = cat
	}
	if v := cell(row, cfg.Columns.Difficulty); v != "" {
		lvl, ok := catalog.ParseLevel(v)
		if !ok {
			return c, fmt.Errorf("unknown level %q", v)
		}
		c.Difficulty = lvl
	}
	return c, nil
}

func parseConfidence(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, fmt.Errorf("confidence %q is not in [0,1]", v)
	}
	return f, nil
}

// cell returns the trimmed value at a column letter, or "" when the
// column is unset or past the end of the row.
func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx, err := excelize.ColumnNameToNumber(column)
	if err != nil || idx > len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx-1])
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ListSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
