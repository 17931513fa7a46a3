package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"farmdesk/entities"
	"farmdesk/pkg/report"
)

func exportInventoryCmd(a *app, c collection[entities.InventoryItem]) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the inventory to an XLSX file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			ctl := c.controller(a)
			if err := ctl.Mount(ctx); err != nil {
				return err
			}
			return writeFile(a, out, func(f *os.File) error { return report.WriteInventory(f, ctl.Items()) })
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "inventory.xlsx", "Output file")
	return cmd
}

func exportTasksCmd(a *app, c collection[entities.Task]) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all tasks to an XLSX file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			ctl := c.controller(a)
			if err := ctl.Mount(ctx); err != nil {
				return err
			}
			return writeFile(a, out, func(f *os.File) error { return report.WriteTasks(f, ctl.Items()) })
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "tasks.xlsx", "Output file")
	return cmd
}

func writeFile(a *app, path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(a.out, "wrote %s\n", path)
	return nil
}
