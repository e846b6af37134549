package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type searchRow struct {
	id     string
	fields SearchFields
}

func (r searchRow) SearchFields() SearchFields { return r.fields }

func searchIDs(rows []searchRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}
	return out
}

var recordingRows = []searchRow{
	{"carmen", SearchFields{"title": {"Carmen Jones"}, "theatre": {"Royal Opera House", "London"}, "artist": {"Dorothy Dandridge"}}},
	{"phantom", SearchFields{"title": {"The Phantom of the Opera"}, "theatre": {"Her Majesty's Theatre", "London"}, "artist": {"Michael Crawford", "Sarah Brightman"}}},
	{"hamilton", SearchFields{"title": {"Hamilton"}, "theatre": {"Richard Rodgers Theatre", "New York"}, "artist": nil}},
	{"royal", SearchFields{"title": {"Royal Wedding"}, "theatre": {"Palace Theatre", "Manchester"}, "artist": {"Fred Astaire"}}},
}

func TestFilterRecords_EmptyQueryReturnsInput(t *testing.T) {
	assert.Equal(t, recordingRows, FilterRecords(recordingRows, "", ScopeAll))
	assert.Equal(t, recordingRows, FilterRecords(recordingRows, "   ", "title"))
}

func TestFilterRecords_CaseInsensitive(t *testing.T) {
	for _, q := range []string{"CARMEN", "carmen", "CaRmEn"} {
		assert.Equal(t, []string{"carmen"}, searchIDs(FilterRecords(recordingRows, q, ScopeAll)), q)
	}
}

func TestFilterRecords_ScopeRestrictsFields(t *testing.T) {
	assert.Equal(t, []string{"carmen"}, searchIDs(FilterRecords(recordingRows, "royal", "theatre")))
	assert.Equal(t, []string{"royal"}, searchIDs(FilterRecords(recordingRows, "royal", "title")))
	assert.Equal(t, []string{"carmen", "royal"}, searchIDs(FilterRecords(recordingRows, "royal", ScopeAll)))
}

func TestFilterRecords_ListFieldsMatchAnyElement(t *testing.T) {
	assert.Equal(t, []string{"phantom"}, searchIDs(FilterRecords(recordingRows, "brightman", "artist")))
}

func TestFilterRecords_UnknownScopeMatchesNothing(t *testing.T) {
	assert.Empty(t, FilterRecords(recordingRows, "london", "composer"))
}

func TestMatchesQuery_SubstringOnly(t *testing.T) {
	fields := SearchFields{"name": {"Andrew Lloyd Webber"}}

	assert.True(t, MatchesQuery(fields, "lloyd web", ScopeAll))
	assert.False(t, MatchesQuery(fields, "webber lloyd", ScopeAll))
}

func TestFoldCase_Unicode(t *testing.T) {
	assert.Equal(t, FoldCase("STRASSE"), FoldCase("straße"))
	assert.True(t, MatchesQuery(SearchFields{"title": {"Les Misérables"}}, "MISÉRABLES", "title"))
}
