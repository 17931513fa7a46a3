package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TaskStatus is the closed set of task states. Incoming values are
// normalised when decoded, so comparisons downstream use the constants.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

var statusAliases = map[string]TaskStatus{
	"pending":     StatusPending,
	"todo":        StatusPending,
	"in progress": StatusInProgress,
	"in_progress": StatusInProgress,
	"in-progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"completed":   StatusCompleted,
	"complete":    StatusCompleted,
	"done":        StatusCompleted,
}

// ParseTaskStatus maps any accepted spelling onto a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if st, ok := statusAliases[key]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether a task in this state still needs work.
func (s TaskStatus) Active() bool { return s == StatusPending || s == StatusInProgress }

func (s *TaskStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("task status: %w", err)
	}
	if raw == "" {
		*s = ""
		return nil
	}
	st, err := ParseTaskStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}
