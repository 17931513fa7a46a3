package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"farmdesk/pkg/monitoring"
)

func monitorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Show active tasks per plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			plots := plotResource.controller(a)
			tasks := taskResource.controller(a)
			if err := plots.Mount(ctx); err != nil {
				return err
			}
			if err := tasks.Mount(ctx); err != nil {
				return err
			}

			r := monitoring.FieldStatus(plots.Items(), tasks.Items())
			rows := make([][]string, 0, len(r.Plots))
			for _, p := range r.Plots {
				work := make([]string, 0, len(p.ActiveTasks))
				for _, t := range p.ActiveTasks {
					work = append(work, fmt.Sprintf("%s (%s)", t.Type, t.Status))
				}
				rows = append(rows, []string{p.Plot.PlotNumber, p.Plot.Name, strconv.Itoa(len(p.ActiveTasks)), strings.Join(work, ", ")})
			}
			fmt.Fprintln(a.out, titleStyle.Render("Field monitoring"))
			renderTable(a.out, []string{"Plot", "Name", "Active", "Work"}, rows)

			if len(r.Unmatched) > 0 {
				fmt.Fprintln(a.out, warnStyle.Render(fmt.Sprintf("%d active task(s) reference unknown plots", len(r.Unmatched))))
				rows = rows[:0]
				for _, t := range r.Unmatched {
					rows = append(rows, taskRow(t))
				}
				renderTable(a.out, taskColumns, rows)
			}
			return nil
		},
	}
}

func stockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "Show task demand against inventory and low-stock items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			tasks := taskResource.controller(a)
			items := inventoryResource.controller(a)
			if err := tasks.Mount(ctx); err != nil {
				return err
			}
			if err := items.Mount(ctx); err != nil {
				return err
			}

			r := monitoring.StockCheck(tasks.Items(), items.Items())
			fmt.Fprintln(a.out, titleStyle.Render("Shortages"))
			rows := make([][]string, 0, len(r.Shortages))
			for _, s := range r.Shortages {
				rows = append(rows, []string{
					id(s.Task.ID), s.Task.Type, s.Task.Plot, s.Item.ItemName,
					humanize.Ftoa(s.Required) + " " + s.Item.Unit,
					humanize.Ftoa(s.Available) + " " + s.Item.Unit,
					humanize.Ftoa(s.Missing()) + " " + s.Item.Unit,
				})
			}
			renderTable(a.out, []string{"Task", "Type", "Plot", "Item", "Required", "In stock", "Missing"}, rows)

			fmt.Fprintln(a.out, titleStyle.Render("Low stock"))
			rows = make([][]string, 0, len(r.LowStock))
			for _, it := range r.LowStock {
				rows = append(rows, inventoryRow(it))
			}
			renderTable(a.out, inventoryColumns, rows)

			if len(r.DanglingItems) > 0 {
				fmt.Fprintln(a.out, warnStyle.Render(fmt.Sprintf("%d active task(s) reference unknown inventory items", len(r.DanglingItems))))
			}
			return nil
		},
	}
}

func loadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Show open tasks per supervisor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			sups := supervisorResource.controller(a)
			tasks := taskResource.controller(a)
			if err := sups.Mount(ctx); err != nil {
				return err
			}
			if err := tasks.Mount(ctx); err != nil {
				return err
			}

			loads := monitoring.SupervisorLoad(sups.Items(), tasks.Items())
			rows := make([][]string, 0, len(loads))
			for _, l := range loads {
				rows = append(rows, []string{
					id(l.Supervisor.ID), l.Supervisor.Name, strings.Join(l.Supervisor.Plots, ", "),
					strconv.Itoa(l.Pending), strconv.Itoa(l.InProgress),
				})
			}
			renderTable(a.out, []string{"ID", "Supervisor", "Plots", "Pending", "In progress"}, rows)
			return nil
		},
	}
}
