package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/catalog/catalogtest"
)

const sampleCSV = `name,category,difficulty,description,examples,tags,group,course,confidence
kot,vocabulary,a1,cat,To jest kot.;Mam kota.,animals,Animals,pl-101,0.9
pies,VOCABULARY,A1,dog,To jest pies.,animals,Animals,pl-101,
Genitive after negation,grammar,A2,,Nie mam czasu.,cases;negation,,pl-101,0.7
,grammar,A1,missing name,,,,,
aspect,grammar,Z9,bad level,,,,,
`

type fixture struct {
	concepts *catalogtest.Concepts
	groups   *catalogtest.Groups
	courses  *catalogtest.Courses
	im       *Importer
}

func newFixture() *fixture {
	f := &fixture{
		concepts: &catalogtest.Concepts{},
		groups:   &catalogtest.Groups{},
		courses:  &catalogtest.Courses{},
	}
	f.im = New(f.concepts, f.groups, f.courses, nil)
	return f
}

func TestImportCSV(t *testing.T) {
	f := newFixture()

	res, err := f.im.ImportCSV(context.Background(), strings.NewReader(sampleCSV), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 5, res.Processed)
	assert.Equal(t, 3, res.Created)
	assert.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "row 5")
	assert.Contains(t, res.Errors[1], "unknown level")

	require.Len(t, f.concepts.Items, 3)
	kot := f.concepts.Items[0]
	assert.Equal(t, "kot", kot.Name)
	assert.Equal(t, catalog.CategoryVocabulary, kot.Category)
	assert.Equal(t, catalog.LevelA1, kot.Difficulty)
	assert.Equal(t, []string{"To jest kot.", "Mam kota."}, kot.Examples)
	assert.True(t, kot.Active)

	gen := f.concepts.Items[2]
	assert.Equal(t, catalog.CategoryGrammar, gen.Category)
	assert.Equal(t, []string{"cases", "negation"}, gen.Tags)

	require.Len(t, f.groups.Items, 1)
	assert.Equal(t, "Animals", f.groups.Items[0].Name)
	assert.Equal(t, []string{kot.ID, f.concepts.Items[1].ID}, f.groups.Items[0].MemberConcepts)
	assert.Equal(t, 1, res.Groups)

	require.Len(t, f.courses.Items, 3)
	assert.Equal(t, 3, res.CourseLinks)
	assert.InDelta(t, 0.9, f.courses.Items[0].Confidence, 1e-9)
	assert.InDelta(t, 1.0, f.courses.Items[1].Confidence, 1e-9, "empty confidence uses the default")
}

func TestImportCSV_Idempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.im.ImportCSV(ctx, strings.NewReader(sampleCSV), DefaultConfig())
	require.NoError(t, err)
	res, err := f.im.ImportCSV(ctx, strings.NewReader(sampleCSV), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 3, res.Existing)
	assert.Len(t, f.concepts.Items, 3)
	assert.Len(t, f.groups.Items[0].MemberConcepts, 2)
}

func TestImportXLSX(t *testing.T) {
	wb := excelize.NewFile()
	defer wb.Close()
	require.NoError(t, wb.SetSheetRow("Sheet1", "A1", &[]any{"name", "category", "difficulty", "description", "examples"}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A2", &[]any{"dom", "vocabulary", "A1", "house", "Mój dom.;W domu."}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A4", &[]any{"aspekt", "grammar", "B1"}))
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)

	f := newFixture()
	res, err := f.im.ImportXLSX(context.Background(), buf, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Processed, "blank rows are skipped")
	require.Len(t, f.concepts.Items, 2)
	assert.Equal(t, []string{"Mój dom.", "W domu."}, f.concepts.Items[0].Examples)
	assert.Equal(t, catalog.LevelB1, f.concepts.Items[1].Difficulty)
	assert.Empty(t, f.groups.Items)
	assert.Empty(t, f.courses.Items)
}

func TestImportFile_CustomColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concepts.csv")
	require.NoError(t, os.WriteFile(path, []byte("B1,dopełniacz\nA1,mianownik\n"), 0o644))

	cfg := Config{
		Columns:         Columns{Name: "B", Difficulty: "A"},
		StartRow:        1,
		DefaultCategory: catalog.CategoryGrammar,
	}
	f := newFixture()
	res, err := f.im.ImportFile(context.Background(), path, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, "dopełniacz", f.concepts.Items[0].Name)
	assert.Equal(t, catalog.LevelB1, f.concepts.Items[0].Difficulty)
	assert.Equal(t, catalog.CategoryGrammar, f.concepts.Items[1].Category)
}

func TestImportFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concepts.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := newFixture().im.ImportFile(context.Background(), path, DefaultConfig())
	assert.ErrorContains(t, err, "unsupported")
}

func TestCell(t *testing.T) {
	row := []string{" a ", "b"}
	assert.Equal(t, "a", cell(row, "A"))
	assert.Equal(t, "b", cell(row, "B"))
	assert.Equal(t, "", cell(row, "C"))
	assert.Equal(t, "", cell(row, ""))
}
