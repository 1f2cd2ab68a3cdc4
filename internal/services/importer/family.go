package importer

import (
	"fmt"
	"strings"

	"github.com/ternarybob/lineage/internal/common"
	"github.com/ternarybob/lineage/internal/gedcom"
	"github.com/ternarybob/lineage/internal/models"
)

// processFamily derives relationships and marriage/divorce events from
// one FAM record. Absence of a husband or wife is valid (single-parent
// or unknown-parent families); unresolved child pointers are warned and
// skipped; each individual save failure is logged and does not stop the
// remaining relationships of the same family.
func (s *Service) processFamily(fam *gedcom.Node) error {
	if fam == nil {
		return fmt.Errorf("family record is nil")
	}

	husbandID, husbandOK := s.resolve(fam.ChildValue("HUSB"))
	wifeID, wifeOK := s.resolve(fam.ChildValue("WIFE"))
	marriage := fam.FirstChildWithTag("MARR")

	if husbandOK && wifeOK {
		// The spouse relationship and the marriage event are distinct
		// records serving different read paths (relationship graph vs
		// chronological timeline); both are produced when marriage data
		// exists.
		rel := &models.Relationship{
			ID:        common.NewRelationshipID(),
			Type:      models.RelationshipSpouse,
			PersonIDs: []string{husbandID, wifeID},
		}
		if marriage != nil {
			rel.Date = gedcom.NormalizeDate(marriage.ChildValue("DATE"))
			rel.Notes = collectNotes(marriage)
		}
		s.saveRelationship(fam, rel)

		if marriage != nil {
			s.saveFamilyEvent(fam, s.buildFamilyEvent(marriage, models.EventTypeMarriage, "Marriage", husbandID, wifeID))
		}
		if divorce := fam.FirstChildWithTag("DIV"); divorce != nil {
			s.saveFamilyEvent(fam, s.buildFamilyEvent(divorce, models.EventTypeDivorce, "Divorce", husbandID, wifeID))
		}
	}

	var parentIDs []string
	if husbandOK {
		parentIDs = append(parentIDs, husbandID)
	}
	if wifeOK {
		parentIDs = append(parentIDs, wifeID)
	}

	var childIDs []string
	for _, chil := range fam.ChildrenWithTag("CHIL") {
		childID, ok := s.resolve(chil.Value)
		if !ok {
			s.stats.AddWarning(fmt.Sprintf("family %s references unknown child %s", fam.XRefID, strings.TrimSpace(chil.Value)))
			continue
		}
		childIDs = append(childIDs, childID)
	}

	for _, childID := range childIDs {
		for _, parentID := range parentIDs {
			rel := &models.Relationship{
				ID:        common.NewRelationshipID(),
				Type:      models.RelationshipParentChild,
				PersonIDs: []string{parentID, childID},
			}
			s.saveRelationship(fam, rel)
		}
	}

	// Siblings are never explicit in GEDCOM; they are synthesized
	// pairwise from shared-family membership. Children linked to only
	// one parent of the family are still treated as full siblings.
	for i := 0; i < len(childIDs); i++ {
		for j := i + 1; j < len(childIDs); j++ {
			rel := &models.Relationship{
				ID:        common.NewRelationshipID(),
				Type:      models.RelationshipSibling,
				PersonIDs: []string{childIDs[i], childIDs[j]},
			}
			s.saveRelationship(fam, rel)
		}
	}

	return nil
}

// resolve maps a GEDCOM pointer value to an internal person id.
func (s *Service) resolve(xref string) (string, bool) {
	id, ok := s.idMap[strings.TrimSpace(xref)]
	return id, ok
}

func (s *Service) saveRelationship(fam *gedcom.Node, rel *models.Relationship) {
	if err := s.storage.RelationshipStorage().SaveRelationship(rel); err != nil {
		s.logger.Warn().Err(err).
			Str("family", fam.XRefID).
			Str("type", string(rel.Type)).
			Msg("Failed to save relationship, skipping")
	}
}

func (s *Service) saveFamilyEvent(fam *gedcom.Node, event *models.Event) {
	if err := s.storage.EventStorage().SaveEvent(event); err != nil {
		s.logger.Warn().Err(err).
			Str("family", fam.XRefID).
			Str("type", string(event.Type)).
			Msg("Failed to save family event, skipping")
		return
	}
	s.stats.Events++
}

func (s *Service) buildFamilyEvent(node *gedcom.Node, eventType models.EventType, title, husbandID, wifeID string) *models.Event {
	return &models.Event{
		ID:        common.NewEventID(),
		PersonIDs: []string{husbandID, wifeID},
		Type:      eventType,
		Title:     title,
		Date:      models.EventDate{Start: gedcom.NormalizeDate(node.ChildValue("DATE"))},
		Location:  models.EventLocation{Place: node.ChildValue("PLAC")},
		Notes:     collectNotes(node),
		Sources:   extractSources(node),
	}
}
