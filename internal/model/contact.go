package model

// 联系表单留言
// swagger:model Contact
type Contact struct {
	BaseModel
	Email    string `gorm:"size:100;not null" json:"email"`
	Subject  string `gorm:"size:200" json:"subject"`
	Message  string `gorm:"type:text;not null" json:"message"`
	Username string `gorm:"size:100" json:"username"`
}

func (Contact) TableName() string {
	return "contact"
}
