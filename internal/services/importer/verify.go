package importer

import (
	"fmt"
	"strings"

	"github.com/ternarybob/lineage/internal/models"
)

// verifyFamilyReferences cross-checks the FAMC/FAMS back-references
// recorded on each imported person against the set of families actually
// seen in the file. Dangling references produce warnings only; persons
// are never mutated and the import never fails here.
func (s *Service) verifyFamilyReferences() {
	for xref, personID := range s.idMap {
		person, err := s.storage.PersonStorage().GetPerson(personID)
		if err != nil {
			s.logger.Warn().Err(err).Str("person_id", personID).Msg("Failed to load person for reference verification, skipping")
			continue
		}

		display := displayName(person, xref)
		for _, famXRef := range person.CustomFields["childInFamilies"] {
			if !s.familyXRefs[famXRef] {
				s.stats.AddWarning(fmt.Sprintf("person %s (%s) references unknown family %s as child", display, xref, famXRef))
			}
		}
		for _, famXRef := range person.CustomFields["spouseInFamilies"] {
			if !s.familyXRefs[famXRef] {
				s.stats.AddWarning(fmt.Sprintf("person %s (%s) references unknown family %s as spouse", display, xref, famXRef))
			}
		}
	}
}

func displayName(person *models.Person, fallback string) string {
	name := person.PrimaryName()
	display := strings.TrimSpace(name.Given + " " + name.Surname)
	if display == "" {
		return fallback
	}
	return display
}
