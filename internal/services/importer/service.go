// Package importer implements the GEDCOM import pipeline: tag-tree
// traversal, entity extraction, cross-reference resolution and
// relationship synthesis.
package importer

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/lineage/internal/gedcom"
	"github.com/ternarybob/lineage/internal/interfaces"
	"github.com/ternarybob/lineage/internal/models"
)

// Service implements ImportService. It owns the cross-reference maps
// for the duration of one import call; they are never shared outside it,
// so two services importing different files cannot cross-contaminate.
type Service struct {
	storage interfaces.StorageManager
	logger  arbor.ILogger

	phase models.ImportPhase

	// GEDCOM cross-reference id -> internal id, write-once-per-key.
	// Fully populated over all INDI records before any FAM record is
	// processed; family relationship synthesis depends on that.
	idMap    map[string]string
	mediaMap map[string]string

	// family cross-reference ids actually seen in the file
	familyXRefs map[string]bool

	stats *models.ImportStats
}

// NewService creates a new import service
func NewService(storage interfaces.StorageManager, logger arbor.ILogger) interfaces.ImportService {
	return &Service{
		storage: storage,
		logger:  logger,
		phase:   models.ImportPhaseNotStarted,
	}
}

// Phase returns the current import phase.
func (s *Service) Phase() models.ImportPhase {
	return s.phase
}

// Import runs the full pipeline over one GEDCOM file. Phases run
// strictly in sequence; per-record failures are absorbed into the
// returned statistics and only structural failures abort the import.
func (s *Service) Import(ctx context.Context, path string) (*models.ImportStats, error) {
	s.stats = &models.ImportStats{Errors: []string{}}
	s.idMap = make(map[string]string)
	s.mediaMap = make(map[string]string)
	s.familyXRefs = make(map[string]bool)

	s.setPhase(models.ImportPhaseParsingFile)
	records, err := gedcom.ParseFile(path)
	if err != nil {
		s.setPhase(models.ImportPhaseFailed)
		return nil, err
	}

	s.setPhase(models.ImportPhaseExtractingMedia)
	s.extractMediaObjects(records)

	s.setPhase(models.ImportPhaseExtractingIndividuals)
	s.extractIndividuals(records)

	s.setPhase(models.ImportPhaseExtractingFamilies)
	s.extractFamilies(records)

	s.setPhase(models.ImportPhaseVerifyingReferences)
	s.verifyFamilyReferences()

	s.setPhase(models.ImportPhaseLinkingMedia)
	s.linkMediaObjects(records)

	s.setPhase(models.ImportPhaseComplete)

	s.logger.Info().
		Str("file", path).
		Int("individuals", s.stats.Individuals).
		Int("families", s.stats.Families).
		Int("events", s.stats.Events).
		Int("media", s.stats.Media).
		Int("errors", len(s.stats.Errors)).
		Int("warnings", len(s.stats.Warnings)).
		Msg("GEDCOM import complete")

	return s.stats, nil
}

// extractMediaObjects handles top-level OBJE records, populating the
// media cross-reference map for the linking phase.
func (s *Service) extractMediaObjects(records []*gedcom.Node) {
	for _, rec := range records {
		if rec.Tag != "OBJE" || rec.XRefID == "" {
			continue
		}
		media, err := s.extractMediaObject(rec)
		if err != nil {
			s.stats.AddError(fmt.Sprintf("failed to import media object %s: %v", rec.XRefID, err))
			continue
		}
		s.mediaMap[rec.XRefID] = media.ID
		s.stats.Media++
	}
}

// extractIndividuals builds the complete xref -> internal id map. A
// single malformed individual is recorded and skipped; it never aborts
// the batch.
func (s *Service) extractIndividuals(records []*gedcom.Node) {
	for _, rec := range records {
		if rec.Tag != "INDI" {
			continue
		}
		person, err := s.extractPerson(rec)
		if err != nil {
			s.stats.AddError(fmt.Sprintf("failed to import individual %s: %v", rec.XRefID, err))
			continue
		}
		s.idMap[rec.XRefID] = person.ID
		s.stats.Individuals++
		s.stats.Events += s.extractEventsForPerson(rec, person.ID)
	}
}

// extractFamilies runs after the individual pass so every forward and
// backward pointer can resolve through the completed id map.
func (s *Service) extractFamilies(records []*gedcom.Node) {
	// Record every family xref first; the reference verifier checks
	// against families seen in the file, including ones whose
	// processing later fails.
	for _, rec := range records {
		if rec.Tag == "FAM" && rec.XRefID != "" {
			s.familyXRefs[rec.XRefID] = true
		}
	}

	for _, rec := range records {
		if rec.Tag != "FAM" {
			continue
		}
		if err := s.processFamily(rec); err != nil {
			s.stats.AddError(fmt.Sprintf("failed to import family %s: %v", rec.XRefID, err))
			continue
		}
		s.stats.Families++
	}
}

func (s *Service) setPhase(phase models.ImportPhase) {
	s.phase = phase
	s.logger.Debug().Str("phase", string(phase)).Msg("Import phase changed")
}
