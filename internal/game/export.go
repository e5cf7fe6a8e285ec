package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileExporter appends every generated or rerolled roster to a text file.
type FileExporter struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewFileExporter(path string) *FileExporter {
	return &FileExporter{path: path, now: time.Now}
}

func (e *FileExporter) Record(code string, s State, a Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.OpenFile(e.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(FormatRoster(code, s, a, e.now())); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}

// FormatRoster renders the export block for one action.
func FormatRoster(code string, s State, a Action, at time.Time) string {
	var sb strings.Builder
	n := s.Config.TeamSize
	sb.WriteString(fmt.Sprintf("Session %s - %dv%d, %d champs/summoner", code, n, n, s.Config.ChampsPerPlayer))
	if s.Config.ExcludeUnkillables {
		sb.WriteString(", unkillables excluded")
	}
	sb.WriteString("\n")
	if a.Type == ActionReroll {
		sb.WriteString(fmt.Sprintf("Reroll for %s at %s\n", s.Name(a.Slot), at.Format("2006-01-02 15:04:05")))
	} else {
		sb.WriteString(fmt.Sprintf("Generated at %s\n", at.Format("2006-01-02 15:04:05")))
	}
	sb.WriteString(strings.Repeat("-", 40) + "\n")

	if a.Type == ActionReroll {
		champs := s.Assignments[a.Slot].Champions
		sb.WriteString(fmt.Sprintf("- %s: %s\n", s.Name(a.Slot), strings.Join(champs, ", ")))
	} else {
		for _, team := range s.View().Teams {
			sb.WriteString(team.Label + ":\n")
			for _, slot := range team.Slots {
				sb.WriteString(fmt.Sprintf("- %s: %s\n", slot.Name, strings.Join(slot.Champions, ", ")))
			}
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
