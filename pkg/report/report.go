// Package report writes collections as XLSX workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"farmdesk/entities"
)

const (
	InventorySheet = "Inventory"
	TasksSheet     = "Tasks"
)

var (
	inventoryHeader = []any{"ID", "Item", "Category", "Stock", "Unit", "Threshold", "Low stock", "Last updated"}
	taskHeader      = []any{"ID", "Type", "Description", "Plot", "Supervisor", "Status", "Due", "Item", "Quantity"}
)

// WriteInventory writes one row per item with the derived low-stock flag.
func WriteInventory(w io.Writer, items []entities.InventoryItem) error {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		updated := ""
		if !it.LastUpdated.IsZero() {
			updated = it.LastUpdated.UTC().Format("2006-01-02 15:04")
		}
		rows = append(rows, []any{it.ID, it.ItemName, it.Category, it.Stock, it.Unit, it.Threshold, yesNo(it.LowStock()), updated})
	}
	return write(w, InventorySheet, inventoryHeader, rows)
}

// WriteTasks writes one row per task; empty cells for absent optionals.
func WriteTasks(w io.Writer, tasks []entities.Task) error {
	rows := make([][]any, 0, len(tasks))
	for _, t := range tasks {
		row := []any{t.ID, t.Type, t.Description, t.Plot, t.SupervisorID, string(t.Status), "", "", ""}
		if t.DueDate != nil {
			row[6] = *t.DueDate
		}
		if t.InventoryItemID != nil {
			row[7] = *t.InventoryItemID
		}
		if t.RequiredQuantity != nil {
			row[8] = *t.RequiredQuantity
		}
		rows = append(rows, row)
	}
	return write(w, TasksSheet, taskHeader, rows)
}

func write(w io.Writer, sheet string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetColWidth(sheet, "A", lastCol, 14); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
