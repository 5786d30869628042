package dbschema

import (
	"abled.ai/abled-api-gateway/app/domain/user"
	"abled.ai/abled-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

type User struct {
	BaseModel
	PublicID     string `gorm:"uniqueIndex"`
	Role         string `gorm:"index"`
	Name         string
	Email        string `gorm:"uniqueIndex:idx_user_email,where:email <> ''"`
	PasswordHash string
	StudentType  string `gorm:"index"`
	School       string
	Class        string
	Enabled      bool
}

func NewSchemaUser(u *user.User) *User {
	return &User{
		BaseModel: BaseModel{
			ID: u.ID,
		},
		PublicID:     u.PublicID,
		Role:         string(u.Role),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		StudentType:  u.StudentType,
		School:       u.School,
		Class:        u.Class,
		Enabled:      u.Enabled,
	}
}

func (u *User) EtoD() *user.User {
	return &user.User{
		ID:           u.ID,
		PublicID:     u.PublicID,
		Role:         user.Role(u.Role),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		StudentType:  u.StudentType,
		School:       u.School,
		Class:        u.Class,
		Enabled:      u.Enabled,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
