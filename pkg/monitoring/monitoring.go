// Package monitoring joins independently fetched collections into the
// derived views operators look at: work per plot, stock against demand and
// open tasks per supervisor. Joins are linear scans over full snapshots.
package monitoring

import (
	"sort"

	"farmdesk/entities"
)

type PlotStatus struct {
	Plot        entities.Plot
	ActiveTasks []entities.Task
}

// FieldReport is the field monitoring view. Unmatched holds active tasks
// whose plot number names no known plot; they are reported, not rejected.
type FieldReport struct {
	Plots     []PlotStatus
	Unmatched []entities.Task
}

// FieldStatus attaches each active task to the plot whose plot_number
// equals the task's plot exactly. Every plot appears, in input order.
func FieldStatus(plots []entities.Plot, tasks []entities.Task) FieldReport {
	out := FieldReport{Plots: make([]PlotStatus, len(plots))}
	for i, p := range plots {
		out.Plots[i] = PlotStatus{Plot: p, ActiveTasks: []entities.Task{}}
	}
	for _, t := range tasks {
		if !t.Status.Active() {
			continue
		}
		matched := false
		for i := range out.Plots {
			if out.Plots[i].Plot.PlotNumber == t.Plot {
				out.Plots[i].ActiveTasks = append(out.Plots[i].ActiveTasks, t)
				matched = true
				break
			}
		}
		if !matched {
			out.Unmatched = append(out.Unmatched, t)
		}
	}
	return out
}

// Busy reports whether any plot has active work.
func (r FieldReport) Busy() bool {
	for _, p := range r.Plots {
		if len(p.ActiveTasks) > 0 {
			return true
		}
	}
	return false
}

type Shortage struct {
	Task      entities.Task
	Item      entities.InventoryItem
	Required  float64
	Available float64
}

func (s Shortage) Missing() float64 { return s.Required - s.Available }

// StockReport is the tasks-and-stock view.
type StockReport struct {
	Shortages []Shortage
	LowStock  []entities.InventoryItem
	// DanglingItems are active tasks pointing at an inventory id that does
	// not exist.
	DanglingItems []entities.Task
}

// StockCheck compares each active task's required quantity with the stock
// of its linked item. Demand is per task; concurrent tasks on the same
// item are not summed.
func StockCheck(tasks []entities.Task, items []entities.InventoryItem) StockReport {
	var out StockReport
	for _, it := range items {
		if it.LowStock() {
			out.LowStock = append(out.LowStock, it)
		}
	}
	for _, t := range tasks {
		if !t.Status.Active() || t.InventoryItemID == nil {
			continue
		}
		item, ok := findItem(items, *t.InventoryItemID)
		if !ok {
			out.DanglingItems = append(out.DanglingItems, t)
			continue
		}
		if t.RequiredQuantity == nil {
			continue
		}
		if *t.RequiredQuantity > item.Stock {
			out.Shortages = append(out.Shortages, Shortage{
				Task:      t,
				Item:      item,
				Required:  *t.RequiredQuantity,
				Available: item.Stock,
			})
		}
	}
	return out
}

func findItem(items []entities.InventoryItem, id uint) (entities.InventoryItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return entities.InventoryItem{}, false
}

type Load struct {
	Supervisor entities.Supervisor
	Pending    int
	InProgress int
}

func (l Load) Open() int { return l.Pending + l.InProgress }

// SupervisorLoad counts open tasks per supervisor, busiest first. Ties keep
// the input order.
func SupervisorLoad(sups []entities.Supervisor, tasks []entities.Task) []Load {
	out := make([]Load, len(sups))
	for i, s := range sups {
		out[i] = Load{Supervisor: s}
	}
	for _, t := range tasks {
		for i := range out {
			if out[i].Supervisor.ID != t.SupervisorID {
				continue
			}
			switch t.Status {
			case entities.StatusPending:
				out[i].Pending++
			case entities.StatusInProgress:
				out[i].InProgress++
			}
			break
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Open() > out[b].Open() })
	return out
}
