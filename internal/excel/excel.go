// Package excel выгружает каталог в xlsx и загружает его обратно.
// Формат один и тот же в обе стороны, так что админ может выгрузить
// каталог, поправить цены в таблице и залить файл назад.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/validation"
	"storefront/models"

	"github.com/xuri/excelize/v2"
)

const sheetProducts = "Товары"

var exportHeader = []string{"ID", "Название (рус)", "Название (кырг)", "Slug", "Описание", "Цена", "Категория"}

// ImportResult — итог разбора одного файла. Валидные строки и ошибки
// по невалидным, с номерами строк таблицы.
type ImportResult struct {
	Products []models.Product
	Errors   []RowError
}

type RowError struct {
	Row int
	Err error
}

// Export пишет каталог в xlsx. Категория указывается slug-ом: он
// стабильнее сгенерированного id и читается человеком.
func Export(w io.Writer, products []models.Product, categories []models.Category) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetProducts); err != nil {
		return fmt.Errorf("не удалось переименовать лист: %w", err)
	}

	slugByID := make(map[string]string, len(categories))
	for _, c := range categories {
		slugByID[c.ID] = c.Slug
	}

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetProducts, cell, title); err != nil {
			return fmt.Errorf("не удалось записать заголовок: %w", err)
		}
	}

	for i, p := range products {
		row := i + 2
		values := []interface{}{
			p.ID, p.NameRu, p.NameKy, p.Slug, p.Description, p.Price, slugByID[p.CategoryID],
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetProducts, cell, v); err != nil {
				return fmt.Errorf("не удалось записать строку %d: %w", row, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("не удалось сохранить файл: %w", err)
	}
	return nil
}

// Import читает xlsx в формате Export. Битая строка не роняет импорт
// целиком: она попадает в Errors, остальные строки обрабатываются.
func Import(r io.Reader, categories []models.Category) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать лист: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("файл пуст: нет строк с товарами")
	}

	idBySlug := make(map[string]string, len(categories))
	for _, c := range categories {
		idBySlug[c.Slug] = c.ID
	}

	result := &ImportResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		product, err := parseRow(row, idBySlug)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Err: err})
			continue
		}
		if err := validation.ValidateProduct(product); err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Err: err})
			continue
		}
		result.Products = append(result.Products, *product)
	}

	return result, nil
}

func parseRow(row []string, idBySlug map[string]string) (*models.Product, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(cell(5), ",", "."), 64)
	if err != nil {
		return nil, fmt.Errorf("цена %q не число", cell(5))
	}

	categoryID, ok := idBySlug[cell(6)]
	if !ok {
		return nil, fmt.Errorf("неизвестная категория %q", cell(6))
	}

	return &models.Product{
		ID:          cell(0),
		NameRu:      cell(1),
		NameKy:      cell(2),
		Slug:        cell(3),
		Description: cell(4),
		Price:       price,
		CategoryID:  categoryID,
	}, nil
}
