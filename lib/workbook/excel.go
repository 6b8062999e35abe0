package workbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExcelFile stores the book in a local .xlsx file, a missing file reads as
// an empty book.
type ExcelFile struct {
	Path string
}

func NewExcel(path string) *Workbook {
	return New(fmt.Sprintf("excel:%s", filepath.Base(path)), ExcelFile{Path: path})
}

func (f ExcelFile) Read(ctx context.Context) (Book, error) {
	_, span := tracer.Start(ctx, "excel:Read")
	defer span.End()

	file, err := excelize.OpenFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Book{}, nil
	}
	if err != nil {
		return Book{}, err
	}
	defer file.Close()

	champions, err := sheetRows(file, ChampionsSheet)
	if err != nil {
		return Book{}, err
	}
	ratings, err := sheetRows(file, RatingsSheet)
	if err != nil {
		return Book{}, err
	}
	return FromGrids(champions, ratings)
}

func sheetRows(file *excelize.File, sheet string) ([][]string, error) {
	index, err := file.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, nil
	}
	return file.GetRows(sheet)
}

func (f ExcelFile) Write(ctx context.Context, book Book) error {
	_, span := tracer.Start(ctx, "excel:Write")
	defer span.End()

	file := excelize.NewFile()
	defer file.Close()

	err := file.SetSheetName("Sheet1", ChampionsSheet)
	if err != nil {
		return err
	}
	_, err = file.NewSheet(RatingsSheet)
	if err != nil {
		return err
	}

	err = writeGrid(file, ChampionsSheet, book.ChampionsGrid())
	if err != nil {
		return err
	}
	err = writeGrid(file, RatingsSheet, book.RatingsGrid())
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(f.Path), 0755)
	if err != nil {
		return err
	}
	// excelize refuses to save without a known extension
	tmp := filepath.Join(filepath.Dir(f.Path), ".~"+filepath.Base(f.Path))
	err = file.SaveAs(tmp)
	if err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}

func writeGrid(file *excelize.File, sheet string, grid [][]any) error {
	for i, row := range grid {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		err = file.SetSheetRow(sheet, axis, &row)
		if err != nil {
			return err
		}
	}
	return nil
}
