package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"farmdesk/entities"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(none)"))
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func id(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func optID(v *uint) string {
	if v == nil {
		return ""
	}
	return id(*v)
}

func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

var taskColumns = []string{"ID", "Type", "Plot", "Supervisor", "Status", "Due", "Description"}

func taskRow(t entities.Task) []string {
	return []string{id(t.ID), t.Type, t.Plot, id(t.SupervisorID), string(t.Status), optString(t.DueDate), t.Description}
}

var supervisorColumns = []string{"ID", "Name", "Email", "Phone", "Plots", "Photo"}

func supervisorRow(s entities.Supervisor) []string {
	photo := ""
	if s.PhotoURL != "" {
		photo = "yes"
	}
	return []string{id(s.ID), s.Name, s.Email, s.Phone, strings.Join(s.Plots, ", "), photo}
}

var plotColumns = []string{"ID", "Number", "Name", "Lat", "Lon", "Supervisor"}

func plotRow(p entities.Plot) []string {
	return []string{id(p.ID), p.PlotNumber, p.Name, humanize.Ftoa(p.Latitude), humanize.Ftoa(p.Longitude), optID(p.SupervisorID)}
}

var inventoryColumns = []string{"ID", "Item", "Category", "Stock", "Threshold", "Status", "Updated"}

func inventoryRow(i entities.InventoryItem) []string {
	status := "ok"
	if i.LowStock() {
		status = "LOW"
	}
	updated := ""
	if !i.LastUpdated.IsZero() {
		updated = humanize.Time(i.LastUpdated)
	}
	return []string{
		id(i.ID), i.ItemName, i.Category,
		humanize.Ftoa(i.Stock) + " " + i.Unit,
		humanize.Ftoa(i.Threshold) + " " + i.Unit,
		status, updated,
	}
}
