package catalogue_models

import (
	"time"

	"github.com/stagearchive/catalogue/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Theatre struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	City        string             `bson:"city" json:"city"`
	Country     string             `bson:"country" json:"country"`
	DateAdded   time.Time          `bson:"date_added" json:"dateAdded"`
	DateUpdated time.Time          `bson:"date_updated" json:"dateUpdated"`
}

// TheatreInput 新建/编辑剧院表单，三个字段均必填
type TheatreInput struct {
	Name    string `json:"name" validate:"required,notblank"`
	City    string `json:"city" validate:"required,notblank"`
	Country string `json:"country" validate:"required,notblank"`
}

var TheatreSortFields = []string{"name", "city", "country", "dateAdded", "dateUpdated"}

func (t *Theatre) FieldValue(field string) any {
	switch field {
	case "name":
		return t.Name
	case "city":
		return t.City
	case "country":
		return t.Country
	case "dateAdded":
		return t.DateAdded
	case "dateUpdated":
		return t.DateUpdated
	}
	return nil
}

func (t *Theatre) SearchFields() domain_util.SearchFields {
	return domain_util.SearchFields{
		"name":    {t.Name},
		"city":    {t.City},
		"country": {t.Country},
	}
}
