package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ternarybob/lineage/internal/common"
	"github.com/ternarybob/lineage/internal/gedcom"
	"github.com/ternarybob/lineage/internal/models"
)

// extractMediaObject builds and persists a Media record from a
// top-level OBJE record.
func (s *Service) extractMediaObject(node *gedcom.Node) (*models.Media, error) {
	media := s.buildMedia(node)
	media.SourceID = node.XRefID
	if err := s.storage.MediaStorage().SaveMedia(media); err != nil {
		return nil, err
	}
	return media, nil
}

// linkMediaObjects attaches media to persons. Real-world exports mix two
// conventions within the same file: OBJE children that point at a
// top-level media record, and inline OBJE children carrying their own
// FILE/FORM detail. Both are handled; links are bidirectional and
// idempotent via set semantics.
func (s *Service) linkMediaObjects(records []*gedcom.Node) {
	for _, rec := range records {
		if rec.Tag != "INDI" || rec.XRefID == "" {
			continue
		}
		personID, ok := s.idMap[rec.XRefID]
		if !ok {
			continue
		}
		objects := rec.ChildrenWithTag("OBJE")
		if len(objects) == 0 {
			continue
		}

		person, err := s.storage.PersonStorage().GetPerson(personID)
		if err != nil {
			s.logger.Warn().Err(err).Str("person_id", personID).Msg("Failed to load person for media linking, skipping")
			continue
		}

		changed := false
		for _, obje := range objects {
			ref := strings.TrimSpace(obje.Value)
			if strings.HasPrefix(ref, "@") {
				if s.linkReferencedMedia(rec.XRefID, personID, person, ref) {
					changed = true
				}
				continue
			}

			// Inline OBJE scoped to this one person.
			media := s.buildMedia(obje)
			media.PersonIDs = []string{personID}
			if err := s.storage.MediaStorage().SaveMedia(media); err != nil {
				s.logger.Warn().Err(err).Str("person_id", personID).Msg("Failed to save inline media object, skipping")
				continue
			}
			s.stats.Media++
			person.AddMedia(media.ID)
			changed = true
		}

		if changed {
			if err := s.storage.PersonStorage().SavePerson(person); err != nil {
				s.logger.Warn().Err(err).Str("person_id", personID).Msg("Failed to save person media links")
			}
		}
	}
}

// linkReferencedMedia resolves a pointer to a previously extracted
// top-level media record and links both directions. Returns true when
// the person gained a media id.
func (s *Service) linkReferencedMedia(personXRef, personID string, person *models.Person, ref string) bool {
	mediaID, ok := s.mediaMap[ref]
	if !ok {
		s.stats.AddWarning(fmt.Sprintf("individual %s references unknown media object %s", personXRef, ref))
		return false
	}

	media, err := s.storage.MediaStorage().GetMedia(mediaID)
	if err != nil {
		s.logger.Warn().Err(err).Str("media_id", mediaID).Msg("Failed to load referenced media, skipping")
		return false
	}
	if !media.HasPerson(personID) {
		media.AddPerson(personID)
		if err := s.storage.MediaStorage().SaveMedia(media); err != nil {
			s.logger.Warn().Err(err).Str("media_id", mediaID).Msg("Failed to save media back-reference")
		}
	}

	if person.HasMedia(mediaID) {
		return false
	}
	person.AddMedia(mediaID)
	return true
}

// buildMedia reads FILE/FORM/TITL detail from an OBJE node. GEDCOM 5.5.1
// nests FORM and TITL under FILE; older exports put them directly under
// OBJE. Both layouts are read.
func (s *Service) buildMedia(node *gedcom.Node) *models.Media {
	file := node.ChildValue("FILE")
	form := node.ChildValue("FORM")
	title := node.ChildValue("TITL")
	if fileNode := node.FirstChildWithTag("FILE"); fileNode != nil {
		if form == "" {
			form = fileNode.ChildValue("FORM")
		}
		if title == "" {
			title = fileNode.ChildValue("TITL")
		}
	}

	originalName := ""
	if file != "" {
		originalName = filepath.Base(file)
	}

	return &models.Media{
		ID:    common.NewMediaID(),
		Type:  mediaTypeForFile(file, form),
		Title: title,
		File: models.MediaFile{
			Path:         file,
			OriginalName: originalName,
			MimeType:     mimeTypeForForm(form),
		},
		Notes: collectNotes(node),
	}
}

var (
	photoExtensions = map[string]bool{"jpg": true, "jpeg": true, "png": true, "gif": true, "bmp": true, "tif": true, "tiff": true, "webp": true}
	audioExtensions = map[string]bool{"mp3": true, "wav": true, "ogg": true, "flac": true, "m4a": true}
	videoExtensions = map[string]bool{"mp4": true, "mov": true, "avi": true, "mkv": true, "wmv": true, "webm": true}
)

// mediaTypeForFile infers the media type from the file extension,
// falling back to the declared format/MIME type, defaulting to Document.
func mediaTypeForFile(path, form string) models.MediaType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if t, ok := typeForToken(ext); ok {
		return t
	}

	declared := strings.ToLower(strings.TrimSpace(form))
	if i := strings.Index(declared, "/"); i >= 0 {
		switch declared[:i] {
		case "image":
			return models.MediaTypePhoto
		case "audio":
			return models.MediaTypeAudio
		case "video":
			return models.MediaTypeVideo
		}
		return models.MediaTypeDocument
	}
	if t, ok := typeForToken(declared); ok {
		return t
	}
	return models.MediaTypeDocument
}

func typeForToken(token string) (models.MediaType, bool) {
	switch {
	case photoExtensions[token]:
		return models.MediaTypePhoto, true
	case audioExtensions[token]:
		return models.MediaTypeAudio, true
	case videoExtensions[token]:
		return models.MediaTypeVideo, true
	}
	return "", false
}

// mimeTypeForForm passes through a declared MIME type; bare format
// tokens (e.g. "jpeg") are not guessed into MIME types.
func mimeTypeForForm(form string) string {
	form = strings.TrimSpace(form)
	if strings.Contains(form, "/") {
		return form
	}
	return ""
}
