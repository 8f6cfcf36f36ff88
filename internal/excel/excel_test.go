package excel

import (
	"bytes"
	"strings"
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testCategories = []models.Category{
	{ID: "cat-1", NameRu: "Диваны", NameKy: "Дивандар", Slug: "divany"},
	{ID: "cat-2", NameRu: "Столы", NameKy: "Стол", Slug: "stoly"},
}

func TestExportImport_RoundTrip(t *testing.T) {
	products := []models.Product{
		{ID: "p-1", NameRu: "Диван угловой", NameKy: "Бурчтук диван", Slug: "divan-uglovoy", Description: "Серый", Price: 45000, CategoryID: "cat-1"},
		{ID: "p-2", NameRu: "Стол обеденный", NameKy: "Тамактануучу стол", Slug: "stol-obedenny", Price: 12500.50, CategoryID: "cat-2"},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, products, testCategories))

	result, err := Import(&buf, testCategories)
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Len(t, result.Products, 2)

	assert.Equal(t, "Диван угловой", result.Products[0].NameRu)
	assert.Equal(t, "cat-1", result.Products[0].CategoryID)
	assert.Equal(t, 12500.50, result.Products[1].Price)
}

func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImport_CollectsRowErrors(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"ID", "Название (рус)", "Название (кырг)", "Slug", "Описание", "Цена", "Категория"},
		{"", "Диван", "Диван", "divan", "", "45000", "divany"},
		{"", "Кресло", "Кресло", "kreslo", "", "не число", "divany"},
		{"", "Стол", "Стол", "stol", "", "9000", "нет-такой"},
		{"", "", "Стул", "stul", "", "3000", "stoly"}, // без русского названия
	})

	result, err := Import(buf, testCategories)
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	assert.Equal(t, "Диван", result.Products[0].NameRu)

	require.Len(t, result.Errors, 3)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Err.Error(), "не число")
	assert.Equal(t, 4, result.Errors[1].Row)
	assert.Contains(t, result.Errors[1].Err.Error(), "неизвестная категория")
	assert.Equal(t, 5, result.Errors[2].Row)
}

func TestImport_RejectsEmptyFile(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"ID", "Название (рус)", "Название (кырг)", "Slug", "Описание", "Цена", "Категория"},
	})

	_, err := Import(buf, testCategories)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "пуст")
}

func TestImport_NotAnExcelFile(t *testing.T) {
	_, err := Import(strings.NewReader("это не xlsx"), testCategories)
	require.Error(t, err)
}
