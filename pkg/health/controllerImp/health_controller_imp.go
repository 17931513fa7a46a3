package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmdesk/entities"
)

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Report is the /health body. Counts is nil when the database is down.
type Report struct {
	OK        bool             `json:"ok"`
	UptimeSec int              `json:"uptime_sec"`
	Database  check            `json:"database"`
	Uploads   check            `json:"uploads"`
	Counts    map[string]int64 `json:"counts,omitempty"`
	Time      string           `json:"time"`
}

type HealthCtrl struct {
	db      *gorm.DB
	started time.Time
	uploads bool
}

func NewHealthCtrl(db *gorm.DB, uploadsEnabled bool) *HealthCtrl {
	return &HealthCtrl{db: db, started: time.Now(), uploads: uploadsEnabled}
}

// Health pings the database and counts each collection. Disabled uploads
// are reported but do not fail the check.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	r := Report{
		UptimeSec: int(time.Since(h.started).Seconds()),
		Uploads:   check{OK: h.uploads},
		Time:      time.Now().Format(time.RFC3339),
	}
	if !h.uploads {
		r.Uploads.Err = "not configured"
	}

	r.Database = h.ping(ctx)
	if r.Database.OK {
		counts, err := h.count(ctx)
		if err != nil {
			r.Database = check{Err: "count: " + err.Error()}
		} else {
			r.Counts = counts
		}
	}
	r.OK = r.Database.OK

	status := http.StatusOK
	if !r.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, r)
}

func (h *HealthCtrl) ping(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "no database"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) count(ctx context.Context) (map[string]int64, error) {
	models := map[string]any{
		"tasks":       &entities.Task{},
		"supervisors": &entities.Supervisor{},
		"plots":       &entities.Plot{},
		"inventory":   &entities.InventoryItem{},
	}
	out := make(map[string]int64, len(models))
	for name, m := range models {
		var n int64
		if err := h.db.WithContext(ctx).Model(m).Count(&n).Error; err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, nil
}
