package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mrlokans/lending-library/internal/entities"
)

// Exporter writes audit events to JSON files in Dir.
type Exporter struct {
	Dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir}
}

// Export saves events to a file named after a fresh UUID and returns the
// full path.
func (e *Exporter) Export(events []entities.AuditEvent) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	if events == nil {
		events = []entities.AuditEvent{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit events: %w", err)
	}

	path := filepath.Join(e.Dir, uuid.NewString()+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audit export: %w", err)
	}
	return path, nil
}
