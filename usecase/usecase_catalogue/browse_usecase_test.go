package usecase_catalogue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func browseRecordings() []*catalogue_models.Recording {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	return []*catalogue_models.Recording{
		{Title: "Carmen Jones", TheatreName: "Royal Opera House", City: "London", DateAdded: day(2)},
		{Title: "Oklahoma!", TheatreName: "St James Theatre", City: "New York", DateAdded: day(5)},
		{Title: "Annie", TheatreName: "Royal Alexandra", City: "Toronto", DateAdded: day(1)},
		{Title: "Matilda", TheatreName: "Cambridge Theatre", City: "London", ArtistNames: []string{"Bertie Carvel"}, DateAdded: day(4)},
	}
}

func titles(recs []*catalogue_models.Recording) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func newBrowse(recs []*catalogue_models.Recording) (*BrowseUsecase, *mocks.RecordingUsecase) {
	recordings := new(mocks.RecordingUsecase)
	recordings.On("List", mock.Anything).Return(recs, nil)
	return NewBrowseUsecase(recordings, new(mocks.PersonUsecase), new(mocks.TheatreUsecase), new(mocks.UserUsecase), 0), recordings
}

func TestBrowseRecordings_DefaultsToNewestFirst(t *testing.T) {
	uc, _ := newBrowse(browseRecordings())

	view, err := uc.Recordings(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Oklahoma!", "Matilda", "Carmen Jones", "Annie"}, titles(view.Items))
	assert.Equal(t, 1, view.TotalPages)
}

func TestBrowseRecordings_TitleAscending(t *testing.T) {
	uc, _ := newBrowse(browseRecordings())

	view, err := uc.Recordings(context.Background(), &catalogue_models.ViewQuery{Sort: "title", Order: "ASC"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Annie", "Carmen Jones", "Matilda", "Oklahoma!"}, titles(view.Items))
}

func TestBrowseRecordings_TheatreScopeFilter(t *testing.T) {
	uc, _ := newBrowse(browseRecordings())

	view, err := uc.Recordings(context.Background(), &catalogue_models.ViewQuery{Search: "royal", Scope: "theatre", Sort: "title"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Annie", "Carmen Jones"}, titles(view.Items))

	view, err = uc.Recordings(context.Background(), &catalogue_models.ViewQuery{Search: "CARVEL", Scope: "artist"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Matilda"}, titles(view.Items))
}

func TestBrowseRecordings_RejectsUnknownSortOrScope(t *testing.T) {
	uc, _ := newBrowse(browseRecordings())

	for _, q := range []*catalogue_models.ViewQuery{
		{Sort: "composer"},
		{Order: "sideways"},
		{Scope: "lyricist"},
	} {
		_, err := uc.Recordings(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", q)
	}
}

func TestBrowseRecordings_PageClampsToLast(t *testing.T) {
	recs := make([]*catalogue_models.Recording, 0, 30)
	for i := 0; i < 30; i++ {
		recs = append(recs, &catalogue_models.Recording{Title: fmt.Sprintf("Show %02d", i)})
	}
	uc, _ := newBrowse(recs)

	view, err := uc.Recordings(context.Background(), &catalogue_models.ViewQuery{Sort: "title", Page: 7})
	require.NoError(t, err)

	assert.Equal(t, 2, view.TotalPages)
	assert.Equal(t, 2, view.CurrentPage)
	assert.Equal(t, []string{"Show 25", "Show 26", "Show 27", "Show 28", "Show 29"}, titles(view.Items))
}

func TestBrowseRecordings_PropagatesListError(t *testing.T) {
	recordings := new(mocks.RecordingUsecase)
	recordings.On("List", mock.Anything).Return(nil, domain.ErrNotFound)
	uc := NewBrowseUsecase(recordings, nil, nil, nil, 10)

	_, err := uc.Recordings(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBrowsePeopleAndTheatres_SortByNameByDefault(t *testing.T) {
	people := new(mocks.PersonUsecase)
	people.On("List", mock.Anything).Return([]*catalogue_models.Person{
		{Name: "stephen Sondheim"}, {Name: "Alan Menken"}, {Name: "Jason Robert Brown"},
	}, nil)
	theatres := new(mocks.TheatreUsecase)
	theatres.On("List", mock.Anything).Return([]*catalogue_models.Theatre{
		{Name: "Palladium", City: "London"}, {Name: "Gershwin", City: "New York"},
	}, nil)
	uc := NewBrowseUsecase(nil, people, theatres, nil, 2)

	pv, err := uc.People(context.Background(), &catalogue_models.ViewQuery{})
	require.NoError(t, err)
	require.Len(t, pv.Items, 2)
	assert.Equal(t, "Alan Menken", pv.Items[0].Name)
	assert.Equal(t, "Jason Robert Brown", pv.Items[1].Name)
	assert.Equal(t, 2, pv.TotalPages)

	tv, err := uc.Theatres(context.Background(), &catalogue_models.ViewQuery{Search: "york", Scope: "city"})
	require.NoError(t, err)
	require.Len(t, tv.Items, 1)
	assert.Equal(t, "Gershwin", tv.Items[0].Name)
}

func TestBrowseUsers_FilterByRole(t *testing.T) {
	users := new(mocks.UserUsecase)
	users.On("List", mock.Anything).Return([]*catalogue_models.UserData{
		{Email: "zoe@example.com", Role: catalogue_models.UserRoleAdmin},
		{Email: "amy@example.com", Role: catalogue_models.UserRoleEditor},
		{Email: "bob@example.com", Role: catalogue_models.UserRoleAdmin},
	}, nil)
	uc := NewBrowseUsecase(nil, nil, nil, users, 0)

	view, err := uc.Users(context.Background(), &catalogue_models.ViewQuery{Search: "admin", Scope: "role"})
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "bob@example.com", view.Items[0].Email)
	assert.Equal(t, "zoe@example.com", view.Items[1].Email)
}
