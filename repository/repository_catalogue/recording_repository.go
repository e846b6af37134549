package repository_catalogue

import (
	"context"
	"fmt"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/mongo"
	"github.com/stagearchive/catalogue/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingRepository struct {
	*repository.BaseMongoRepository[catalogue_models.Recording]
}

func NewRecordingRepository(db mongo.Database) catalogue_interface.RecordingRepository {
	return &recordingRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[catalogue_models.Recording](db, domain.CollectionRecordings, "title"),
	}
}

// PersonFilter 任一角色包含该人员：新 ID 数组与旧引用数组都要匹配
func PersonFilter(personID primitive.ObjectID) bson.M {
	hex := personID.Hex()
	return bson.M{"$or": bson.A{
		bson.M{"artist_ids": hex},
		bson.M{"composer_ids": hex},
		bson.M{"lyricist_ids": hex},
		bson.M{"artist_refs.$id": personID},
		bson.M{"composer_refs.$id": personID},
		bson.M{"lyricist_refs.$id": personID},
	}}
}

func (r *recordingRepository) GetByPerson(ctx context.Context, personID primitive.ObjectID) ([]*catalogue_models.Recording, error) {
	if personID.IsZero() {
		return nil, fmt.Errorf("%w: person id cannot be empty", domain.ErrInvalidID)
	}
	return r.GetByFilter(ctx, PersonFilter(personID))
}
