package interfaces

import (
	"context"

	"github.com/ternarybob/lineage/internal/models"
)

// ImportService runs the GEDCOM import pipeline over one file and
// returns its statistics report. Per-record failures accumulate in the
// report; only structural failures (unreadable file, no parseable
// records) surface as the returned error.
type ImportService interface {
	Import(ctx context.Context, path string) (*models.ImportStats, error)
	Phase() models.ImportPhase
}
