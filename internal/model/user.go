package model

// swagger:model User
type User struct {
	BaseModel
	Username   string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email      string `gorm:"size:100;not null" json:"email"`
	Password   string `gorm:"size:100;not null" json:"-"`
	ProfilePic string `gorm:"size:255" json:"profilepic"`
}

func (User) TableName() string {
	return "users"
}
