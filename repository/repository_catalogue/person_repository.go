package repository_catalogue

import (
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/mongo"
	"github.com/stagearchive/catalogue/repository"
)

type personRepository struct {
	*repository.BaseMongoRepository[catalogue_models.Person]
}

func NewPersonRepository(db mongo.Database) catalogue_interface.PersonRepository {
	return &personRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[catalogue_models.Person](db, domain.CollectionPeople, "name"),
	}
}
