package repository_catalogue

import (
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/mongo"
	"github.com/stagearchive/catalogue/repository"
)

type theatreRepository struct {
	*repository.BaseMongoRepository[catalogue_models.Theatre]
}

func NewTheatreRepository(db mongo.Database) catalogue_interface.TheatreRepository {
	return &theatreRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[catalogue_models.Theatre](db, domain.CollectionTheatres, "name"),
	}
}
