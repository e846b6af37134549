package catalogue_models

import (
	"testing"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_util"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecording_RoleIDsPrefersIDArrays(t *testing.T) {
	legacy := primitive.NewObjectID()
	current := primitive.NewObjectID().Hex()

	r := &Recording{
		ArtistIDs:  []string{current},
		ArtistRefs: []domain.DocumentRef{domain.NewDocumentRef(domain.CollectionPeople, legacy)},
	}

	assert.Equal(t, []string{current}, r.RoleIDs(RoleArtist))
}

func TestRecording_RoleIDsFallsBackToLegacyRefs(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	r := &Recording{
		ComposerRefs: []domain.DocumentRef{
			domain.NewDocumentRef(domain.CollectionPeople, a),
			domain.NewDocumentRef(domain.CollectionPeople, b),
		},
	}

	assert.Equal(t, []string{a.Hex(), b.Hex()}, r.RoleIDs(RoleComposer))
	assert.Equal(t, []string{}, r.RoleIDs(RoleLyricist))
}

func TestRecording_EmptyIDArrayWinsOverRefs(t *testing.T) {
	r := &Recording{
		LyricistIDs:  []string{},
		LyricistRefs: []domain.DocumentRef{domain.NewDocumentRef(domain.CollectionPeople, primitive.NewObjectID())},
	}

	assert.Empty(t, r.RoleIDs(RoleLyricist))
}

func TestRecording_RolesOf(t *testing.T) {
	person := primitive.NewObjectID()
	r := &Recording{
		ArtistIDs:    []string{person.Hex()},
		LyricistRefs: []domain.DocumentRef{domain.NewDocumentRef(domain.CollectionPeople, person)},
		ComposerIDs:  []string{primitive.NewObjectID().Hex()},
	}

	assert.Equal(t, []PersonRole{RoleArtist, RoleLyricist}, r.RolesOf(person.Hex()))
	assert.Nil(t, r.RolesOf(primitive.NewObjectID().Hex()))
}

func TestRecording_TheatreKey(t *testing.T) {
	oid := primitive.NewObjectID()
	ref := domain.NewDocumentRef(domain.CollectionTheatres, oid)

	assert.Equal(t, "abc", (&Recording{TheatreID: "abc", TheatreRef: &ref}).TheatreKey())
	assert.Equal(t, oid.Hex(), (&Recording{TheatreRef: &ref}).TheatreKey())
	assert.Equal(t, "", (&Recording{}).TheatreKey())
}

func TestRecording_LegacyDocumentDecodes(t *testing.T) {
	person := primitive.NewObjectID()
	theatre := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{
		"title":        "Cats",
		"release_year": 1981,
		"theatre_ref":  bson.M{"$ref": domain.CollectionTheatres, "$id": theatre},
		"artist_refs":  bson.A{bson.M{"$ref": domain.CollectionPeople, "$id": person}},
	})
	assert.NoError(t, err)

	var r Recording
	assert.NoError(t, bson.Unmarshal(raw, &r))

	assert.Equal(t, theatre.Hex(), r.TheatreKey())
	assert.Equal(t, []string{person.Hex()}, r.RoleIDs(RoleArtist))
	assert.Equal(t, "1981", r.DisplayDate())
}

func TestRecording_SearchAndSortFields(t *testing.T) {
	date := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)
	r := &Recording{
		Title:         "Carmen Jones",
		TheatreName:   "Royal Opera House",
		City:          "London",
		ArtistNames:   []string{"Dorothy Dandridge"},
		RecordingDate: &date,
	}

	assert.True(t, domain_util.MatchesQuery(r.SearchFields(), "royal", "theatre"))
	assert.True(t, domain_util.MatchesQuery(r.SearchFields(), "london", "theatre"))
	assert.False(t, domain_util.MatchesQuery(r.SearchFields(), "royal", "title"))
	assert.Equal(t, &date, r.FieldValue("recordingDate"))
	assert.Nil(t, r.FieldValue("unknown"))
	assert.Equal(t, "10 April 2023", r.DisplayDate())
}

func TestParsePersonRole(t *testing.T) {
	role, ok := ParsePersonRole("composer")
	assert.True(t, ok)
	assert.Equal(t, RoleComposer, role)

	_, ok = ParsePersonRole("director")
	assert.False(t, ok)
}
