package gedcom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsTree(t *testing.T) {
	input := strings.Join([]string{
		"0 HEAD",
		"1 SOUR Test",
		"0 @I1@ INDI",
		"1 NAME John /Smith/",
		"1 BIRT",
		"2 DATE 2 MAR 1925",
		"2 PLAC Boston, Massachusetts",
		"0 TRLR",
	}, "\n")

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "HEAD", records[0].Tag)
	assert.Equal(t, "Test", records[0].ChildValue("SOUR"))

	indi := records[1]
	assert.Equal(t, "INDI", indi.Tag)
	assert.Equal(t, "@I1@", indi.XRefID)
	assert.Equal(t, "John /Smith/", indi.ChildValue("NAME"))

	birt := indi.FirstChildWithTag("BIRT")
	require.NotNil(t, birt)
	assert.Equal(t, "2 MAR 1925", birt.ChildValue("DATE"))
	assert.Equal(t, "Boston, Massachusetts", birt.ChildValue("PLAC"))

	assert.Equal(t, "TRLR", records[2].Tag)
}

func TestParseTolerantOfRealWorldInput(t *testing.T) {
	// CRLF endings, blank lines, a malformed line, and a level that
	// skips a step.
	input := "0 @I1@ INDI\r\n" +
		"\r\n" +
		"garbage line\r\n" +
		"1 NAME Mary /Jones/\r\n" +
		"3 DATE 1900\r\n" +
		"0 TRLR\r\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	indi := records[0]
	name := indi.FirstChildWithTag("NAME")
	require.NotNil(t, name)
	// Over-deep level clamps to the deepest known parent.
	assert.Equal(t, "1900", name.ChildValue("DATE"))
}

func TestParseMergesConcIntoValue(t *testing.T) {
	input := strings.Join([]string{
		"0 @I1@ INDI",
		"1 NOTE A very long note that was spl",
		"2 CONC it across lines",
		"2 CONT and continued on a new line",
	}, "\n")

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	note := records[0].FirstChildWithTag("NOTE")
	require.NotNil(t, note)
	assert.Equal(t, "A very long note that was split across lines", note.Value)

	// CONT stays as a child so note assembly can restore the line break.
	require.Len(t, note.ChildrenWithTag("CONT"), 1)
	assert.Equal(t, "and continued on a new line", note.ChildValue("CONT"))
}

func TestParseEmptyInputFails(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("not a gedcom file\nat all"))
	assert.Error(t, err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/path/family.ged")
	assert.Error(t, err)
}

func TestNodeAccessors(t *testing.T) {
	node := &Node{
		Tag: "INDI",
		Children: []*Node{
			{Tag: "NAME", Value: "first"},
			{Tag: "NAME", Value: "second"},
			{Tag: "SEX", Value: "F"},
		},
	}

	assert.Equal(t, "first", node.ChildValue("NAME"))
	assert.Len(t, node.ChildrenWithTag("NAME"), 2)
	assert.True(t, node.HasChild("SEX"))
	assert.False(t, node.HasChild("BIRT"))
	assert.Nil(t, node.FirstChildWithTag("BIRT"))
	assert.Equal(t, "", node.ChildValue("BIRT"))
}
