package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/lineage/internal/common"
	"github.com/ternarybob/lineage/internal/gedcom"
	"github.com/ternarybob/lineage/internal/models"
)

func savedPerson(t *testing.T, svc *Service, xref string) *models.Person {
	t.Helper()
	person := &models.Person{
		ID:       common.NewPersonID(),
		SourceID: xref,
		Names:    []models.PersonName{{Given: "Test", Surname: "Person"}},
		Gender:   models.GenderUnknown,
	}
	require.NoError(t, svc.storage.PersonStorage().SavePerson(person))
	svc.idMap[xref] = person.ID
	return person
}

func TestLinkInlineMediaObject(t *testing.T) {
	svc := newTestService(t)
	person := savedPerson(t, svc, "@I1@")

	records := []*gedcom.Node{
		{Tag: "INDI", XRefID: "@I1@", Children: []*gedcom.Node{
			{Tag: "OBJE", Children: []*gedcom.Node{
				{Tag: "FILE", Value: "photo.jpg"},
			}},
		}},
	}
	svc.linkMediaObjects(records)

	loaded, err := svc.storage.PersonStorage().GetPerson(person.ID)
	require.NoError(t, err)
	require.Len(t, loaded.MediaIDs, 1)

	media, err := svc.storage.MediaStorage().GetMedia(loaded.MediaIDs[0])
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypePhoto, media.Type)
	assert.Equal(t, "photo.jpg", media.File.Path)
	assert.Equal(t, []string{person.ID}, media.PersonIDs)
	assert.Equal(t, 1, svc.stats.Media)
}

func TestLinkReferencedMediaObject(t *testing.T) {
	svc := newTestService(t)
	person := savedPerson(t, svc, "@I1@")

	obje := &gedcom.Node{Tag: "OBJE", XRefID: "@M1@", Children: []*gedcom.Node{
		{Tag: "FILE", Value: "letter.pdf"},
		{Tag: "TITL", Value: "Old letter"},
	}}
	media, err := svc.extractMediaObject(obje)
	require.NoError(t, err)
	svc.mediaMap["@M1@"] = media.ID

	records := []*gedcom.Node{
		{Tag: "INDI", XRefID: "@I1@", Children: []*gedcom.Node{
			{Tag: "OBJE", Value: "@M1@"},
		}},
	}
	svc.linkMediaObjects(records)

	// Link is bidirectional.
	loaded, err := svc.storage.PersonStorage().GetPerson(person.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{media.ID}, loaded.MediaIDs)

	linked, err := svc.storage.MediaStorage().GetMedia(media.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{person.ID}, linked.PersonIDs)
	assert.Equal(t, models.MediaTypeDocument, linked.Type)
	assert.Equal(t, "Old letter", linked.Title)

	// Linking again is idempotent via set semantics.
	svc.linkMediaObjects(records)
	reloaded, err := svc.storage.PersonStorage().GetPerson(person.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.MediaIDs, 1)
}

func TestLinkUnknownMediaReferenceWarns(t *testing.T) {
	svc := newTestService(t)
	person := savedPerson(t, svc, "@I1@")

	records := []*gedcom.Node{
		{Tag: "INDI", XRefID: "@I1@", Children: []*gedcom.Node{
			{Tag: "OBJE", Value: "@M404@"},
		}},
	}
	svc.linkMediaObjects(records)

	require.Len(t, svc.stats.Warnings, 1)
	assert.Contains(t, svc.stats.Warnings[0], "@M404@")

	loaded, err := svc.storage.PersonStorage().GetPerson(person.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.MediaIDs)
}

func TestMediaTypeForFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		form string
		want models.MediaType
	}{
		{"jpg extension", "photo.jpg", "", models.MediaTypePhoto},
		{"uppercase extension", "PHOTO.JPG", "", models.MediaTypePhoto},
		{"audio extension", "interview.mp3", "", models.MediaTypeAudio},
		{"video extension", "wedding.mp4", "", models.MediaTypeVideo},
		{"pdf defaults to document", "letter.pdf", "", models.MediaTypeDocument},
		{"no extension with mime", "scan0001", "image/png", models.MediaTypePhoto},
		{"no extension with form token", "scan0001", "jpeg", models.MediaTypePhoto},
		{"unknown mime", "file.bin", "application/octet-stream", models.MediaTypeDocument},
		{"nothing known", "", "", models.MediaTypeDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mediaTypeForFile(tt.path, tt.form))
		})
	}
}

func TestBuildMediaReadsNestedForm(t *testing.T) {
	svc := newTestService(t)

	// GEDCOM 5.5.1 layout: FORM and TITL nested under FILE.
	node := &gedcom.Node{Tag: "OBJE", Children: []*gedcom.Node{
		{Tag: "FILE", Value: "portrait", Children: []*gedcom.Node{
			{Tag: "FORM", Value: "image/jpeg"},
			{Tag: "TITL", Value: "Portrait of John"},
		}},
	}}

	media := svc.buildMedia(node)
	assert.Equal(t, models.MediaTypePhoto, media.Type)
	assert.Equal(t, "Portrait of John", media.Title)
	assert.Equal(t, "image/jpeg", media.File.MimeType)
	assert.Equal(t, "portrait", media.File.OriginalName)
}
