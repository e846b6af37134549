package mocks

import (
	"context"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/domain_util"
	"github.com/stretchr/testify/mock"
)

type TheatreUsecase struct {
	mock.Mock
}

func (m *TheatreUsecase) List(ctx context.Context) ([]*catalogue_models.Theatre, error) {
	args := m.Called(ctx)
	var out []*catalogue_models.Theatre
	if v := args.Get(0); v != nil {
		out = v.([]*catalogue_models.Theatre)
	}
	return out, args.Error(1)
}

func (m *TheatreUsecase) Get(ctx context.Context, id string) (*catalogue_models.Theatre, error) {
	args := m.Called(ctx, id)
	var out *catalogue_models.Theatre
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Theatre)
	}
	return out, args.Error(1)
}

func (m *TheatreUsecase) Create(ctx context.Context, input *catalogue_models.TheatreInput) (*catalogue_models.Theatre, error) {
	args := m.Called(ctx, input)
	var out *catalogue_models.Theatre
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Theatre)
	}
	return out, args.Error(1)
}

func (m *TheatreUsecase) Update(ctx context.Context, id string, input *catalogue_models.TheatreInput) (*catalogue_models.Theatre, error) {
	args := m.Called(ctx, id, input)
	var out *catalogue_models.Theatre
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Theatre)
	}
	return out, args.Error(1)
}

func (m *TheatreUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PersonUsecase struct {
	mock.Mock
}

func (m *PersonUsecase) List(ctx context.Context) ([]*catalogue_models.Person, error) {
	args := m.Called(ctx)
	var out []*catalogue_models.Person
	if v := args.Get(0); v != nil {
		out = v.([]*catalogue_models.Person)
	}
	return out, args.Error(1)
}

func (m *PersonUsecase) Get(ctx context.Context, id string) (*catalogue_models.Person, error) {
	args := m.Called(ctx, id)
	var out *catalogue_models.Person
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Person)
	}
	return out, args.Error(1)
}

func (m *PersonUsecase) Create(ctx context.Context, input *catalogue_models.PersonInput) (*catalogue_models.Person, error) {
	args := m.Called(ctx, input)
	var out *catalogue_models.Person
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Person)
	}
	return out, args.Error(1)
}

func (m *PersonUsecase) Update(ctx context.Context, id string, input *catalogue_models.PersonInput) (*catalogue_models.Person, error) {
	args := m.Called(ctx, id, input)
	var out *catalogue_models.Person
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Person)
	}
	return out, args.Error(1)
}

func (m *PersonUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type RecordingUsecase struct {
	mock.Mock
}

func (m *RecordingUsecase) List(ctx context.Context) ([]*catalogue_models.Recording, error) {
	args := m.Called(ctx)
	var out []*catalogue_models.Recording
	if v := args.Get(0); v != nil {
		out = v.([]*catalogue_models.Recording)
	}
	return out, args.Error(1)
}

func (m *RecordingUsecase) Get(ctx context.Context, id string) (*catalogue_models.Recording, error) {
	args := m.Called(ctx, id)
	var out *catalogue_models.Recording
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Recording)
	}
	return out, args.Error(1)
}

func (m *RecordingUsecase) Detail(ctx context.Context, id string) (*catalogue_models.RecordingDetail, error) {
	args := m.Called(ctx, id)
	var out *catalogue_models.RecordingDetail
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.RecordingDetail)
	}
	return out, args.Error(1)
}

func (m *RecordingUsecase) Create(ctx context.Context, input *catalogue_models.RecordingInput) (*catalogue_models.Recording, error) {
	args := m.Called(ctx, input)
	var out *catalogue_models.Recording
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Recording)
	}
	return out, args.Error(1)
}

func (m *RecordingUsecase) Update(ctx context.Context, id string, input *catalogue_models.RecordingInput) (*catalogue_models.Recording, error) {
	args := m.Called(ctx, id, input)
	var out *catalogue_models.Recording
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Recording)
	}
	return out, args.Error(1)
}

func (m *RecordingUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RecordingUsecase) AttachNewPerson(
	ctx context.Context,
	recordingID string,
	role catalogue_models.PersonRole,
	input *catalogue_models.PersonInput,
) (*catalogue_models.Recording, *catalogue_models.Person, error) {
	args := m.Called(ctx, recordingID, role, input)
	var rec *catalogue_models.Recording
	if v := args.Get(0); v != nil {
		rec = v.(*catalogue_models.Recording)
	}
	var person *catalogue_models.Person
	if v := args.Get(1); v != nil {
		person = v.(*catalogue_models.Person)
	}
	return rec, person, args.Error(2)
}

func (m *RecordingUsecase) ListByPerson(ctx context.Context, personID string) ([]catalogue_models.PersonRecording, error) {
	args := m.Called(ctx, personID)
	var out []catalogue_models.PersonRecording
	if v := args.Get(0); v != nil {
		out = v.([]catalogue_models.PersonRecording)
	}
	return out, args.Error(1)
}

func (m *RecordingUsecase) Feed(ctx context.Context, cursor string, limit int) (*domain.Page[*catalogue_models.Recording], error) {
	args := m.Called(ctx, cursor, limit)
	var out *domain.Page[*catalogue_models.Recording]
	if v := args.Get(0); v != nil {
		out = v.(*domain.Page[*catalogue_models.Recording])
	}
	return out, args.Error(1)
}

type BrowseUsecase struct {
	mock.Mock
}

func (m *BrowseUsecase) Recordings(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Recording], error) {
	args := m.Called(ctx, q)
	var out *domain_util.PageView[*catalogue_models.Recording]
	if v := args.Get(0); v != nil {
		out = v.(*domain_util.PageView[*catalogue_models.Recording])
	}
	return out, args.Error(1)
}

func (m *BrowseUsecase) People(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Person], error) {
	args := m.Called(ctx, q)
	var out *domain_util.PageView[*catalogue_models.Person]
	if v := args.Get(0); v != nil {
		out = v.(*domain_util.PageView[*catalogue_models.Person])
	}
	return out, args.Error(1)
}

func (m *BrowseUsecase) Theatres(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Theatre], error) {
	args := m.Called(ctx, q)
	var out *domain_util.PageView[*catalogue_models.Theatre]
	if v := args.Get(0); v != nil {
		out = v.(*domain_util.PageView[*catalogue_models.Theatre])
	}
	return out, args.Error(1)
}

func (m *BrowseUsecase) Users(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.UserData], error) {
	args := m.Called(ctx, q)
	var out *domain_util.PageView[*catalogue_models.UserData]
	if v := args.Get(0); v != nil {
		out = v.(*domain_util.PageView[*catalogue_models.UserData])
	}
	return out, args.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) List(ctx context.Context) ([]*catalogue_models.UserData, error) {
	args := m.Called(ctx)
	var out []*catalogue_models.UserData
	if v := args.Get(0); v != nil {
		out = v.([]*catalogue_models.UserData)
	}
	return out, args.Error(1)
}

func (m *UserUsecase) Create(ctx context.Context, input *catalogue_models.UserInput) (*catalogue_models.UserData, error) {
	args := m.Called(ctx, input)
	var out *catalogue_models.UserData
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.UserData)
	}
	return out, args.Error(1)
}

func (m *UserUsecase) UpdateRole(ctx context.Context, id string, input *catalogue_models.UserRoleInput) (*catalogue_models.UserData, error) {
	args := m.Called(ctx, id, input)
	var out *catalogue_models.UserData
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.UserData)
	}
	return out, args.Error(1)
}

func (m *UserUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Resolve(ctx context.Context, uid, email, displayName string) (*catalogue_models.Principal, error) {
	args := m.Called(ctx, uid, email, displayName)
	var out *catalogue_models.Principal
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Principal)
	}
	return out, args.Error(1)
}

type UploadUsecase struct {
	mock.Mock
}

func (m *UploadUsecase) UploadImages(ctx context.Context, batchID, recordingID, path string, files []catalogue_models.UploadFile) (*catalogue_models.UploadBatch, error) {
	args := m.Called(ctx, batchID, recordingID, path, files)
	var out *catalogue_models.UploadBatch
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.UploadBatch)
	}
	return out, args.Error(1)
}

func (m *UploadUsecase) Progress(batchID string) (*catalogue_models.UploadProgress, error) {
	args := m.Called(batchID)
	var out *catalogue_models.UploadProgress
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.UploadProgress)
	}
	return out, args.Error(1)
}

func (m *UploadUsecase) DeleteImage(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *UploadUsecase) OpenImage(ctx context.Context, path string) (*catalogue_models.Blob, error) {
	args := m.Called(ctx, path)
	var out *catalogue_models.Blob
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Blob)
	}
	return out, args.Error(1)
}
