package catalogue_interface

import (
	"context"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecordingRepository interface {
	domain.BaseRepository[catalogue_models.Recording]
	// GetByPerson 任一角色（ID 数组或旧版引用）包含该人员的录音
	GetByPerson(ctx context.Context, personID primitive.ObjectID) ([]*catalogue_models.Recording, error)
}

type RecordingUsecase interface {
	List(ctx context.Context) ([]*catalogue_models.Recording, error)
	Get(ctx context.Context, id string) (*catalogue_models.Recording, error)
	Detail(ctx context.Context, id string) (*catalogue_models.RecordingDetail, error)
	Create(ctx context.Context, input *catalogue_models.RecordingInput) (*catalogue_models.Recording, error)
	Update(ctx context.Context, id string, input *catalogue_models.RecordingInput) (*catalogue_models.Recording, error)
	Delete(ctx context.Context, id string) error

	// AttachNewPerson 先创建人员再挂到录音的某个角色上；两步不是原子的
	AttachNewPerson(ctx context.Context, recordingID string, role catalogue_models.PersonRole, input *catalogue_models.PersonInput) (*catalogue_models.Recording, *catalogue_models.Person, error)

	ListByPerson(ctx context.Context, personID string) ([]catalogue_models.PersonRecording, error)
	Feed(ctx context.Context, cursor string, limit int) (*domain.Page[*catalogue_models.Recording], error)
}
