package usecase_catalogue

import (
	"context"
	"testing"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC)

func newDenormalizer() (*RecordingDenormalizer, *mocks.PersonRepository, *mocks.TheatreRepository) {
	people := new(mocks.PersonRepository)
	theatres := new(mocks.TheatreRepository)
	d := NewRecordingDenormalizer(people, theatres)
	d.now = func() time.Time { return fixedNow }
	return d, people, theatres
}

func strPtr(s string) *string { return &s }

func TestRoleFields_WritesIDsRefsAndArtistNames(t *testing.T) {
	d, people, _ := newDenormalizer()
	known := &catalogue_models.Person{ID: primitive.NewObjectID(), Name: "Patti LuPone"}
	dangling := primitive.NewObjectID()

	people.On("GetByIDs", mock.Anything, []primitive.ObjectID{known.ID, dangling}).
		Return([]*catalogue_models.Person{known}, nil)

	fields, err := d.RoleFields(context.Background(), catalogue_models.RoleArtist,
		[]string{known.ID.Hex(), dangling.Hex(), known.ID.Hex()})
	require.NoError(t, err)

	assert.Equal(t, []string{known.ID.Hex(), dangling.Hex()}, fields["artist_ids"])
	assert.Equal(t, []domain.DocumentRef{
		domain.NewDocumentRef(domain.CollectionPeople, known.ID),
		domain.NewDocumentRef(domain.CollectionPeople, dangling),
	}, fields["artist_refs"])
	assert.Equal(t, []string{"Patti LuPone"}, fields["artist_names"])
	people.AssertExpectations(t)
}

func TestRoleFields_ComposersHaveNoNameSnapshot(t *testing.T) {
	d, people, _ := newDenormalizer()
	id := primitive.NewObjectID()

	fields, err := d.RoleFields(context.Background(), catalogue_models.RoleComposer, []string{id.Hex()})
	require.NoError(t, err)

	assert.Equal(t, []string{id.Hex()}, fields["composer_ids"])
	assert.NotContains(t, fields, "artist_names")
	people.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestRoleFields_InvalidIDIsValidationError(t *testing.T) {
	d, _, _ := newDenormalizer()

	_, err := d.RoleFields(context.Background(), catalogue_models.RoleLyricist, []string{"nope"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTheatreFields(t *testing.T) {
	d, _, theatres := newDenormalizer()
	theatre := &catalogue_models.Theatre{ID: primitive.NewObjectID(), Name: "Royal Opera House", City: "London"}
	unknown := primitive.NewObjectID()
	theatres.On("GetByID", mock.Anything, theatre.ID).Return(theatre, nil)
	theatres.On("GetByID", mock.Anything, unknown).Return(nil, domain.ErrNotFound)

	fields, err := d.TheatreFields(context.Background(), theatre.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, theatre.ID.Hex(), fields["theatre_id"])
	assert.Equal(t, "Royal Opera House", fields["theatre_name"])
	assert.Equal(t, "London", fields["city"])
	assert.Equal(t, domain.NewDocumentRef(domain.CollectionTheatres, theatre.ID), fields["theatre_ref"])

	_, err = d.TheatreFields(context.Background(), unknown.Hex())
	assert.ErrorIs(t, err, domain.ErrValidation)

	cleared, err := d.TheatreFields(context.Background(), "  ")
	require.NoError(t, err)
	assert.Equal(t, "", cleared["theatre_id"])
	assert.Equal(t, primitive.Null{}, cleared["theatre_ref"])
}

func TestBuildFields_DateRules(t *testing.T) {
	d, _, _ := newDenormalizer()

	fields, err := d.BuildFields(context.Background(), &catalogue_models.RecordingInput{
		Title: "  Evita ", DatePrecision: "year", DateInput: "1978",
	}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "Evita", fields["title"])
	assert.Equal(t, "year", fields["date_precision"])
	assert.Equal(t, 1978, fields["release_year"])
	assert.Equal(t, time.Date(1978, 1, 1, 0, 0, 0, 0, time.UTC), fields["recording_date"])

	fields, err = d.BuildFields(context.Background(), &catalogue_models.RecordingInput{Title: "Evita"}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "full", fields["date_precision"])
	assert.Equal(t, 2025, fields["release_year"])
	assert.Equal(t, fixedNow, fields["recording_date"])

	fields, err = d.BuildFields(context.Background(), &catalogue_models.RecordingInput{Title: "Evita"}, false, nil)
	require.NoError(t, err)
	assert.NotContains(t, fields, "recording_date")
	assert.NotContains(t, fields, "artist_ids")
	assert.NotContains(t, fields, "theatre_id")
}

func TestBuildFields_PartialDateUpdateKeepsStoredValues(t *testing.T) {
	d, _, _ := newDenormalizer()
	opening := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)
	storedFull := &catalogue_models.Recording{Title: "Cats", RecordingDate: &opening, ReleaseYear: 2023, DatePrecision: "full"}
	jan1 := time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)
	storedYear := &catalogue_models.Recording{Title: "Cats", RecordingDate: &jan1, ReleaseYear: 1995, DatePrecision: "year"}

	tests := []struct {
		name      string
		input     catalogue_models.RecordingInput
		stored    *catalogue_models.Recording
		precision string
		date      interface{}
		year      interface{}
	}{
		{
			name:      "full to year truncates the stored date",
			input:     catalogue_models.RecordingInput{Title: "Cats", DatePrecision: "year"},
			stored:    storedFull,
			precision: "year",
			date:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			year:      2023,
		},
		{
			name:      "year to full keeps January 1st",
			input:     catalogue_models.RecordingInput{Title: "Cats", DatePrecision: "full"},
			stored:    storedYear,
			precision: "full",
			date:      jan1,
			year:      1995,
		},
		{
			name:      "date alone uses the stored precision",
			input:     catalogue_models.RecordingInput{Title: "Cats", DateInput: "1981"},
			stored:    storedYear,
			precision: "year",
			date:      time.Date(1981, 1, 1, 0, 0, 0, 0, time.UTC),
			year:      1981,
		},
		{
			name:      "precision alone without a stored date",
			input:     catalogue_models.RecordingInput{Title: "Cats", DatePrecision: "year"},
			stored:    &catalogue_models.Recording{Title: "Cats", ReleaseYear: 1981},
			precision: "year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := d.BuildFields(context.Background(), &tt.input, false, tt.stored)
			require.NoError(t, err)
			assert.Equal(t, tt.precision, fields["date_precision"])
			if tt.date == nil {
				assert.NotContains(t, fields, "recording_date")
				assert.NotContains(t, fields, "release_year")
				return
			}
			assert.Equal(t, tt.date, fields["recording_date"])
			assert.Equal(t, tt.year, fields["release_year"])
		})
	}
}

func TestDetail_OmitsDanglingReferences(t *testing.T) {
	d, people, theatres := newDenormalizer()
	artist := &catalogue_models.Person{ID: primitive.NewObjectID(), Name: "Elaine Paige"}
	gone := primitive.NewObjectID()
	theatreID := primitive.NewObjectID()
	date := time.Date(1978, 6, 21, 0, 0, 0, 0, time.UTC)

	rec := &catalogue_models.Recording{
		ID:            primitive.NewObjectID(),
		Title:         "Evita",
		RecordingDate: &date,
		ReleaseYear:   1978,
		TheatreID:     theatreID.Hex(),
		ArtistIDs:     []string{gone.Hex(), artist.ID.Hex()},
	}
	theatres.On("GetByID", mock.Anything, theatreID).Return(nil, domain.ErrNotFound)
	people.On("GetByIDs", mock.Anything, []primitive.ObjectID{gone, artist.ID}).
		Return([]*catalogue_models.Person{artist}, nil)

	detail, err := d.Detail(context.Background(), rec)
	require.NoError(t, err)

	assert.Nil(t, detail.Theatre)
	assert.Equal(t, []*catalogue_models.Person{artist}, detail.Artists)
	assert.Empty(t, detail.Composers)
	assert.Empty(t, detail.Lyricists)
	assert.Equal(t, "21 June 1978", detail.DisplayDate)
	assert.Equal(t, "1978-06-21", detail.DateInput)
}
