package catalogue_models

import (
	"time"

	"github.com/stagearchive/catalogue/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserRoleViewer = "viewer"
	UserRoleEditor = "editor"
	UserRoleAdmin  = "admin"
)

// UserData 以邮箱为查找键的角色记录；没有对应文档的身份视为未认证
type UserData struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Role        string             `bson:"role" json:"role"`
	DateAdded   time.Time          `bson:"date_added" json:"dateAdded"`
	DateUpdated time.Time          `bson:"date_updated" json:"dateUpdated"`
}

type UserInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=viewer editor admin"`
}

type UserRoleInput struct {
	Role string `json:"role" validate:"required,oneof=viewer editor admin"`
}

// Principal 身份提供方签发的已签名主体，附加存储中查到的角色
type Principal struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role"`
}

var UserSortFields = []string{"email", "role", "dateAdded"}

func (u *UserData) FieldValue(field string) any {
	switch field {
	case "email":
		return u.Email
	case "role":
		return u.Role
	case "dateAdded":
		return u.DateAdded
	}
	return nil
}

func (u *UserData) SearchFields() domain_util.SearchFields {
	return domain_util.SearchFields{
		"email": {u.Email},
		"role":  {u.Role},
	}
}
