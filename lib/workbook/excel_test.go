package workbook

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelWorkbook(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "champions.xlsx")
	book := NewExcel(path)
	require.Equal(t, "excel:champions.xlsx", book.Name())

	names, err := book.Names(ctx)
	require.NoError(t, err)
	require.Len(t, names, 0)

	require.NoError(t, book.Save(ctx, testRecord("Ninja", 4.5)))
	require.NoError(t, book.Save(ctx, testRecord("Arbiter", 4)))
	require.NoError(t, book.Save(ctx, testRecord("ninja", 2.5)))

	names, err = book.Names(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Arbiter", "ninja"}, names)

	records, err := book.Records(ctx)
	require.NoError(t, err)
	value, ok := records[1].Lookup("Core Areas", "Demon Lord")
	require.True(t, ok)
	require.Equal(t, 2.5, value)

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()
	require.Equal(t, []string{ChampionsSheet, RatingsSheet}, file.GetSheetList())

	id, err := file.GetCellValue(ChampionsSheet, "A3")
	require.NoError(t, err)
	require.Equal(t, "1", id)
}
