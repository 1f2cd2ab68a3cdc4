package importer

import (
	"fmt"
	"strings"

	"github.com/ternarybob/lineage/internal/common"
	"github.com/ternarybob/lineage/internal/gedcom"
	"github.com/ternarybob/lineage/internal/models"
)

// eventMapping binds a GEDCOM individual event tag to an event type and
// a human-readable title.
type eventMapping struct {
	Tag   string
	Type  models.EventType
	Title string
}

// individualEventTags is the fixed table of GEDCOM tags that produce an
// event per occurrence. Order matters only for the resulting event
// creation sequence.
var individualEventTags = []eventMapping{
	{"BIRT", models.EventTypeBirth, "Birth"},
	{"DEAT", models.EventTypeDeath, "Death"},
	{"BURI", models.EventTypeBurial, "Burial"},
	{"CREM", models.EventTypeCremation, "Cremation"},
	{"ADOP", models.EventTypeAdoption, "Adoption"},
	{"BAPM", models.EventTypeBaptism, "Baptism"},
	{"BAPL", models.EventTypeBaptism, "LDS Baptism"},
	{"CHR", models.EventTypeChristening, "Christening"},
	{"CHRA", models.EventTypeChristening, "Adult Christening"},
	{"CONF", models.EventTypeConfirmation, "Confirmation"},
	{"CONL", models.EventTypeConfirmation, "LDS Confirmation"},
	{"FCOM", models.EventTypeReligious, "First Communion"},
	{"ORDN", models.EventTypeOrdination, "Ordination"},
	{"BARM", models.EventTypeReligious, "Bar Mitzvah"},
	{"BASM", models.EventTypeReligious, "Bas Mitzvah"},
	{"BLES", models.EventTypeReligious, "Blessing"},
	{"NATU", models.EventTypeNaturalization, "Naturalization"},
	{"EMIG", models.EventTypeEmigration, "Emigration"},
	{"IMMI", models.EventTypeImmigration, "Immigration"},
	{"CENS", models.EventTypeCensus, "Census"},
	{"PROB", models.EventTypeProbate, "Probate"},
	{"WILL", models.EventTypeWill, "Will"},
	{"GRAD", models.EventTypeGraduation, "Graduation"},
	{"RETI", models.EventTypeRetirement, "Retirement"},
	{"OCCU", models.EventTypeWork, "Occupation"},
	{"EDUC", models.EventTypeEducation, "Education"},
	{"RESI", models.EventTypeResidence, "Residence"},
	{"MILI", models.EventTypeMilitary, "Military Service"},
	{"TRAV", models.EventTypeTravel, "Travel"},
	{"EVEN", models.EventTypeCustom, "Event"},
}

// extractPerson builds and persists a Person from an INDI record. The
// caller records the cross-reference mapping from the returned person.
func (s *Service) extractPerson(node *gedcom.Node) (*models.Person, error) {
	if node.XRefID == "" {
		return nil, fmt.Errorf("individual record has no cross-reference id")
	}

	person := &models.Person{
		ID:           common.NewPersonID(),
		SourceID:     node.XRefID,
		Gender:       models.GenderUnknown,
		CustomFields: make(map[string][]string),
	}

	for _, nameNode := range node.ChildrenWithTag("NAME") {
		person.Names = append(person.Names, splitName(nameNode.Value))
	}

	if sex := node.FirstChildWithTag("SEX"); sex != nil {
		switch strings.ToUpper(strings.TrimSpace(sex.Value)) {
		case "M":
			person.Gender = models.GenderMale
		case "F":
			person.Gender = models.GenderFemale
		case "O":
			person.Gender = models.GenderOther
		}
	}

	// Only the first BIRT/DEAT is used; later ones (e.g. from merged
	// duplicate sources) are ignored.
	person.Birth = extractLifeEvent(node.FirstChildWithTag("BIRT"))
	person.Death = extractLifeEvent(node.FirstChildWithTag("DEAT"))

	person.Notes = collectNotes(node)

	if email := strings.TrimSpace(node.ChildValue("EMAIL")); email != "" {
		person.CustomFields["email"] = []string{email}
	}
	if sources := extractSources(node); len(sources) > 0 {
		person.CustomFields["sources"] = sources
	}

	// Raw family back-references, kept only for reference verification.
	for _, famc := range node.ChildrenWithTag("FAMC") {
		person.CustomFields["childInFamilies"] = append(person.CustomFields["childInFamilies"], strings.TrimSpace(famc.Value))
	}
	for _, fams := range node.ChildrenWithTag("FAMS") {
		person.CustomFields["spouseInFamilies"] = append(person.CustomFields["spouseInFamilies"], strings.TrimSpace(fams.Value))
	}

	if err := s.storage.PersonStorage().SavePerson(person); err != nil {
		return nil, err
	}
	return person, nil
}

// extractEventsForPerson emits one event per matching child node of the
// fixed event tag table, plus a residence event from a standalone ADDR
// and a contact event from an EMAIL. Each save failure is logged and
// skipped; it never fails the person. Returns the number of events
// created.
func (s *Service) extractEventsForPerson(node *gedcom.Node, personID string) int {
	created := 0

	for _, mapping := range individualEventTags {
		for _, evNode := range node.ChildrenWithTag(mapping.Tag) {
			event := s.buildIndividualEvent(evNode, mapping, personID)
			if err := s.storage.EventStorage().SaveEvent(event); err != nil {
				s.logger.Warn().Err(err).
					Str("person_id", personID).
					Str("tag", mapping.Tag).
					Msg("Failed to save event, skipping")
				continue
			}
			created++
		}
	}

	// A standalone ADDR with no RESI still describes a residence.
	if addr := node.FirstChildWithTag("ADDR"); addr != nil && !node.HasChild("RESI") {
		place := addr.Value
		for _, cont := range addr.ChildrenWithTag("CONT") {
			place += ", " + cont.Value
		}
		event := &models.Event{
			ID:        common.NewEventID(),
			PersonIDs: []string{personID},
			Type:      models.EventTypeResidence,
			Title:     "Residence",
			Location:  models.EventLocation{Place: place},
		}
		if err := s.storage.EventStorage().SaveEvent(event); err != nil {
			s.logger.Warn().Err(err).Str("person_id", personID).Msg("Failed to save residence event from ADDR, skipping")
		} else {
			created++
		}
	}

	if email := strings.TrimSpace(node.ChildValue("EMAIL")); email != "" {
		event := &models.Event{
			ID:          common.NewEventID(),
			PersonIDs:   []string{personID},
			Type:        models.EventTypeCustom,
			Title:       "Contact Information",
			Description: email,
		}
		if err := s.storage.EventStorage().SaveEvent(event); err != nil {
			s.logger.Warn().Err(err).Str("person_id", personID).Msg("Failed to save contact event, skipping")
		} else {
			created++
		}
	}

	return created
}

func (s *Service) buildIndividualEvent(node *gedcom.Node, mapping eventMapping, personID string) *models.Event {
	return &models.Event{
		ID:          common.NewEventID(),
		PersonIDs:   []string{personID},
		Type:        mapping.Type,
		Title:       mapping.Title,
		Description: strings.TrimSpace(node.Value),
		Date:        models.EventDate{Start: gedcom.NormalizeDate(node.ChildValue("DATE"))},
		Location:    models.EventLocation{Place: node.ChildValue("PLAC")},
		Notes:       collectNotes(node),
		Sources:     extractSources(node),
	}
}

// splitName splits a GEDCOM NAME value on the /surname/ delimiter
// convention: text before the first slash is the given name, text
// between the slashes the surname. Without a delimiter, the whole value
// is the given name.
func splitName(raw string) models.PersonName {
	idx := strings.Index(raw, "/")
	if idx < 0 {
		return models.PersonName{Given: strings.TrimSpace(raw)}
	}

	given := strings.TrimSpace(raw[:idx])
	rest := raw[idx+1:]
	if end := strings.Index(rest, "/"); end >= 0 {
		rest = rest[:end]
	}
	return models.PersonName{
		Given:   given,
		Surname: strings.TrimSpace(rest),
	}
}

// collectNotes concatenates all NOTE children, with each CONT
// continuation appended on a new line.
func collectNotes(node *gedcom.Node) string {
	var parts []string
	for _, note := range node.ChildrenWithTag("NOTE") {
		text := note.Value
		for _, cont := range note.ChildrenWithTag("CONT") {
			text += "\n" + cont.Value
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n")
}

// extractSources renders each SOUR child as "<id> (<page>)" when a PAGE
// sub-node exists, plain "<id>" otherwise.
func extractSources(node *gedcom.Node) []string {
	var sources []string
	for _, sour := range node.ChildrenWithTag("SOUR") {
		cite := strings.TrimSpace(sour.Value)
		if cite == "" {
			continue
		}
		if page := strings.TrimSpace(sour.ChildValue("PAGE")); page != "" {
			cite = fmt.Sprintf("%s (%s)", cite, page)
		}
		sources = append(sources, cite)
	}
	return sources
}

func extractLifeEvent(node *gedcom.Node) *models.LifeEvent {
	if node == nil {
		return nil
	}
	return &models.LifeEvent{
		Date:  gedcom.NormalizeDate(node.ChildValue("DATE")),
		Place: node.ChildValue("PLAC"),
		Notes: collectNotes(node),
	}
}
