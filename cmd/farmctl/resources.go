package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"farmdesk/entities"
	"farmdesk/pkg/client"
	"farmdesk/pkg/dialog"
	"farmdesk/pkg/listctl"
)

// collection describes one backend collection for the generic
// list/create/update/delete commands.
type collection[T interface{ GetID() uint }] struct {
	name    string
	single  string
	source  func(*client.Client) *client.Resource[T]
	seed    func() T
	columns []string
	row     func(T) []string
	// create replaces the generic create command when set.
	create func(*app, collection[T]) *cobra.Command
	extra  []func(*app, collection[T]) *cobra.Command
}

func (c collection[T]) controller(a *app) *listctl.Controller[T] {
	return listctl.New[T](c.source(a.api),
		listctl.WithNotifier[T](a.notifier()),
		listctl.WithLogger[T](a.logEntry(c.name)),
	)
}

func (c collection[T]) render(a *app, items []T) {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, c.row(it))
	}
	renderTable(a.out, c.columns, rows)
}

func (c collection[T]) command(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.name,
		Short: "Manage " + c.name,
	}
	create := c.createCmd
	if c.create != nil {
		create = func(a *app) *cobra.Command { return c.create(a, c) }
	}
	cmd.AddCommand(c.listCmd(a), create(a), c.updateCmd(a), c.deleteCmd(a))
	for _, extra := range c.extra {
		cmd.AddCommand(extra(a, c))
	}
	return cmd
}

func (c collection[T]) listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all " + c.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			ctl := c.controller(a)
			if err := ctl.Mount(ctx); err != nil {
				return err
			}
			c.render(a, ctl.Items())
			return nil
		},
	}
}

func (c collection[T]) createCmd(a *app) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + c.single + " from JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			seed := c.seed()
			if err := decodeInput(cmd, data, &seed); err != nil {
				return err
			}
			ctl := c.controller(a)
			d := dialog.New[T](ctl)
			d.OpenCreate(seed)
			out, err := d.Confirm(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created %s %d\n", c.single, (*out).GetID())
			c.render(a, ctl.Items())
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON record, @file or - for stdin")
	return cmd
}

func (c collection[T]) updateCmd(a *app) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Merge JSON fields into a " + c.single,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()

			ctl := c.controller(a)
			if err := ctl.Mount(ctx); err != nil {
				return err
			}
			current, ok := find(ctl.Items(), recordID)
			if !ok {
				return fmt.Errorf("%s %d not found", c.single, recordID)
			}
			d := dialog.New[T](ctl)
			d.OpenEdit(recordID, current)
			if err := decodeInput(cmd, data, d.Draft()); err != nil {
				return err
			}
			if _, err := d.Confirm(ctx); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "updated %s %d\n", c.single, recordID)
			c.render(a, ctl.Items())
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON fields, @file or - for stdin")
	return cmd
}

func (c collection[T]) deleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + c.single,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()

			ctl := c.controller(a)
			if err := ctl.Mount(ctx); err != nil {
				return err
			}
			if err := ctl.Delete(ctx, recordID); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted %s %d\n", c.single, recordID)
			c.render(a, ctl.Items())
			return nil
		},
	}
}

func find[T interface{ GetID() uint }](items []T, recordID uint) (T, bool) {
	for _, it := range items {
		if it.GetID() == recordID {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(v), nil
}

// decodeInput reads JSON from the flag value, "@path" or "-" (stdin) and
// merges it into dst.
func decodeInput(cmd *cobra.Command, data string, dst any) error {
	var raw []byte
	switch {
	case data == "":
		return fmt.Errorf("--data is required")
	case data == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		raw = b
	case data[0] == '@':
		b, err := os.ReadFile(data[1:])
		if err != nil {
			return fmt.Errorf("read %s: %w", data[1:], err)
		}
		raw = b
	default:
		raw = []byte(data)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

var taskResource = collection[entities.Task]{
	name:    "tasks",
	single:  "task",
	source:  (*client.Client).Tasks,
	seed:    func() entities.Task { return entities.Task{Status: entities.StatusPending} },
	columns: taskColumns,
	row:     taskRow,
	extra:   []func(*app, collection[entities.Task]) *cobra.Command{exportTasksCmd},
}

var supervisorResource = collection[entities.Supervisor]{
	name:    "supervisors",
	single:  "supervisor",
	source:  (*client.Client).Supervisors,
	seed:    func() entities.Supervisor { return entities.Supervisor{Plots: []string{}} },
	columns: supervisorColumns,
	row:     supervisorRow,
	create:  createSupervisorCmd,
}

var plotResource = collection[entities.Plot]{
	name:    "plots",
	single:  "plot",
	source:  (*client.Client).Plots,
	seed:    func() entities.Plot { return entities.Plot{} },
	columns: plotColumns,
	row:     plotRow,
}

var inventoryResource = collection[entities.InventoryItem]{
	name:    "inventory",
	single:  "inventory item",
	source:  (*client.Client).Inventory,
	seed:    func() entities.InventoryItem { return entities.InventoryItem{} },
	columns: inventoryColumns,
	row:     inventoryRow,
	extra:   []func(*app, collection[entities.InventoryItem]) *cobra.Command{exportInventoryCmd},
}

func tasksCmd(a *app) *cobra.Command       { return taskResource.command(a) }
func supervisorsCmd(a *app) *cobra.Command { return supervisorResource.command(a) }
func plotsCmd(a *app) *cobra.Command       { return plotResource.command(a) }
func inventoryCmd(a *app) *cobra.Command   { return inventoryResource.command(a) }
