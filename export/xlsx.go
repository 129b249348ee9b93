package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/tabgrid/model"
)

// XLSX returns a workbook with one sheet per table. The first column holds
// row labels; a Section column follows when any row has a section.
func XLSX(tables []*model.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool)
	for i, t := range tables {
		sheet := sheetName(t, i, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("xlsx sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("xlsx sheet: %w", err)
		}
		if err := writeSheet(f, sheet, t); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, t *model.Table) error {
	withSection := false
	for _, r := range t.Rows {
		if r.Section != "" {
			withSection = true
			break
		}
	}

	header := []string{"Label"}
	if withSection {
		header = append(header, "Section")
	}
	header = append(header, t.Headers...)

	write := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	for i, h := range header {
		if err := write(i+1, 1, h); err != nil {
			return fmt.Errorf("xlsx header: %w", err)
		}
	}
	for r, rec := range t.Rows {
		row := r + 2
		col := 1
		cells := []string{rec.Label}
		if withSection {
			cells = append(cells, rec.Section)
		}
		for _, h := range t.Headers {
			cells = append(cells, rec.Values[h])
		}
		for _, v := range cells {
			if err := write(col, row, v); err != nil {
				return fmt.Errorf("xlsx row %d: %w", r, err)
			}
			col++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // labels
	return nil
}

// sheetName derives a unique, valid sheet name from the table name.
func sheetName(t *model.Table, index int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(t.Name))
	name = strings.Trim(name, "'")
	if name == "" {
		name = fmt.Sprintf("Table %d", index+1)
	}

	base := truncateRunes(name, 31)
	name = base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncateRunes(base, 31-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
