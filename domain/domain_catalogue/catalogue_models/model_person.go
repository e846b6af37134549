package catalogue_models

import (
	"time"

	"github.com/stagearchive/catalogue/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonRole 人员角色由引用它的录音关系决定，人员文档本身不存角色
type PersonRole string

const (
	RoleArtist   PersonRole = "artist"
	RoleComposer PersonRole = "composer"
	RoleLyricist PersonRole = "lyricist"
)

var PersonRoles = []PersonRole{RoleArtist, RoleComposer, RoleLyricist}

func ParsePersonRole(s string) (PersonRole, bool) {
	for _, r := range PersonRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

type Person struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Info        string             `bson:"info,omitempty" json:"info,omitempty"`
	DateAdded   time.Time          `bson:"date_added" json:"dateAdded"`
	DateUpdated time.Time          `bson:"date_updated" json:"dateUpdated"`
}

type PersonInput struct {
	Name string  `json:"name" validate:"required,notblank"`
	Info *string `json:"info,omitempty"`
}

var PersonSortFields = []string{"name", "dateAdded", "dateUpdated"}

func (p *Person) FieldValue(field string) any {
	switch field {
	case "name":
		return p.Name
	case "info":
		return p.Info
	case "dateAdded":
		return p.DateAdded
	case "dateUpdated":
		return p.DateUpdated
	}
	return nil
}

func (p *Person) SearchFields() domain_util.SearchFields {
	return domain_util.SearchFields{
		"name": {p.Name},
		"info": {p.Info},
	}
}

// PersonRecording 人员详情页中的一条参与记录
type PersonRecording struct {
	Recording *Recording   `json:"recording"`
	Roles     []PersonRole `json:"roles"`
}
