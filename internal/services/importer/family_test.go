package importer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/lineage/internal/gedcom"
	"github.com/ternarybob/lineage/internal/models"
)

func familyNode(children ...*gedcom.Node) *gedcom.Node {
	return &gedcom.Node{Tag: "FAM", XRefID: "@F1@", Children: children}
}

func TestProcessFamilySpouseAndMarriage(t *testing.T) {
	svc := newTestService(t)
	svc.idMap["@I1@"] = "person_husband"
	svc.idMap["@I2@"] = "person_wife"

	fam := familyNode(
		&gedcom.Node{Tag: "HUSB", Value: "@I1@"},
		&gedcom.Node{Tag: "WIFE", Value: "@I2@"},
		&gedcom.Node{Tag: "MARR", Children: []*gedcom.Node{
			{Tag: "DATE", Value: "12 JUN 1950"},
			{Tag: "PLAC", Value: "Boston"},
		}},
	)
	require.NoError(t, svc.processFamily(fam))

	// Exactly one spouse relationship and one marriage event, both
	// referencing husband and wife.
	rels, err := svc.storage.RelationshipStorage().ListRelationshipsByPerson("person_husband", models.RelationshipSpouse)
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.ElementsMatch(t, []string{"person_husband", "person_wife"}, rels[0].PersonIDs)
	require.NotNil(t, rels[0].Date)
	assert.Equal(t, "1950-06-12", rels[0].Date.Format("2006-01-02"))

	events, err := svc.storage.EventStorage().ListEventsByPerson("person_wife")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypeMarriage, events[0].Type)
	assert.Equal(t, "Boston", events[0].Location.Place)
	assert.ElementsMatch(t, []string{"person_husband", "person_wife"}, events[0].PersonIDs)
	assert.Equal(t, 1, svc.stats.Events)
}

func TestProcessFamilyWithoutMarriageNode(t *testing.T) {
	svc := newTestService(t)
	svc.idMap["@I1@"] = "person_husband"
	svc.idMap["@I2@"] = "person_wife"

	fam := familyNode(
		&gedcom.Node{Tag: "HUSB", Value: "@I1@"},
		&gedcom.Node{Tag: "WIFE", Value: "@I2@"},
	)
	require.NoError(t, svc.processFamily(fam))

	// Spouse relationship without a date, and no marriage event.
	rels, err := svc.storage.RelationshipStorage().ListRelationshipsByPerson("person_husband", models.RelationshipSpouse)
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.Nil(t, rels[0].Date)

	events, err := svc.storage.EventStorage().ListEventsByPerson("person_husband")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestProcessFamilySiblingsPairwise(t *testing.T) {
	svc := newTestService(t)

	var children []*gedcom.Node
	for i := 1; i <= 4; i++ {
		xref := fmt.Sprintf("@I%d@", i)
		svc.idMap[xref] = fmt.Sprintf("person_%d", i)
		children = append(children, &gedcom.Node{Tag: "CHIL", Value: xref})
	}
	require.NoError(t, svc.processFamily(familyNode(children...)))

	// n(n-1)/2 sibling relationships for n children.
	count, err := svc.storage.RelationshipStorage().CountRelationships()
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	rels, err := svc.storage.RelationshipStorage().ListRelationshipsByPerson("person_1", models.RelationshipSibling)
	require.NoError(t, err)
	assert.Len(t, rels, 3)
}

func TestProcessFamilySingleResolvableParent(t *testing.T) {
	svc := newTestService(t)
	svc.idMap["@I2@"] = "person_wife"
	svc.idMap["@I3@"] = "person_child1"
	svc.idMap["@I4@"] = "person_child2"

	fam := familyNode(
		&gedcom.Node{Tag: "HUSB", Value: "@I1@"}, // unresolved
		&gedcom.Node{Tag: "WIFE", Value: "@I2@"},
		&gedcom.Node{Tag: "CHIL", Value: "@I3@"},
		&gedcom.Node{Tag: "CHIL", Value: "@I4@"},
	)
	require.NoError(t, svc.processFamily(fam))

	// Two parent-child relationships through the wife, none through the
	// unresolved husband, no spouse relationship.
	parentRels, err := svc.storage.RelationshipStorage().ListRelationshipsByPerson("person_wife", models.RelationshipParentChild)
	require.NoError(t, err)
	assert.Len(t, parentRels, 2)
	for _, rel := range parentRels {
		assert.Equal(t, "person_wife", rel.PersonIDs[0], "parent comes first by convention")
	}

	spouseRels, err := svc.storage.RelationshipStorage().ListRelationshipsByPerson("person_wife", models.RelationshipSpouse)
	require.NoError(t, err)
	assert.Empty(t, spouseRels)

	siblingRels, err := svc.storage.RelationshipStorage().ListRelationshipsByPerson("person_child1", models.RelationshipSibling)
	require.NoError(t, err)
	assert.Len(t, siblingRels, 1)
}

func TestProcessFamilyUnresolvedChildWarns(t *testing.T) {
	svc := newTestService(t)
	svc.idMap["@I1@"] = "person_husband"
	svc.idMap["@I2@"] = "person_wife"
	svc.idMap["@I3@"] = "person_child"

	fam := familyNode(
		&gedcom.Node{Tag: "HUSB", Value: "@I1@"},
		&gedcom.Node{Tag: "WIFE", Value: "@I2@"},
		&gedcom.Node{Tag: "CHIL", Value: "@I3@"},
		&gedcom.Node{Tag: "CHIL", Value: "@I99@"}, // dangling pointer
	)
	require.NoError(t, svc.processFamily(fam))

	require.Len(t, svc.stats.Warnings, 1)
	assert.Contains(t, svc.stats.Warnings[0], "@I99@")

	// The resolved child still got both parent relationships.
	parentRels, err := svc.storage.RelationshipStorage().ListRelationshipsByPerson("person_child", models.RelationshipParentChild)
	require.NoError(t, err)
	assert.Len(t, parentRels, 2)
}

func TestProcessFamilyDivorceEvent(t *testing.T) {
	svc := newTestService(t)
	svc.idMap["@I1@"] = "person_husband"
	svc.idMap["@I2@"] = "person_wife"

	fam := familyNode(
		&gedcom.Node{Tag: "HUSB", Value: "@I1@"},
		&gedcom.Node{Tag: "WIFE", Value: "@I2@"},
		&gedcom.Node{Tag: "MARR", Children: []*gedcom.Node{{Tag: "DATE", Value: "1950"}}},
		&gedcom.Node{Tag: "DIV", Children: []*gedcom.Node{{Tag: "DATE", Value: "1960"}}},
	)
	require.NoError(t, svc.processFamily(fam))

	events, err := svc.storage.EventStorage().ListEventsByPerson("person_husband")
	require.NoError(t, err)
	require.Len(t, events, 2)

	types := []models.EventType{events[0].Type, events[1].Type}
	assert.ElementsMatch(t, []models.EventType{models.EventTypeMarriage, models.EventTypeDivorce}, types)
}
