package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

// 用户名到内部数字ID的解析，所有写操作的第一步
func (r *UserRepository) ResolveID(username string) (uint, error) {
	var user model.User
	err := r.DB.Select("id").Where("username = ?", username).First(&user).Error
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// 按列更新，用于单字段修改（用户名、邮箱、密码、头像）
func (r *UserRepository) UpdateColumn(id uint, column string, value interface{}) (int64, error) {
	res := r.DB.Model(&model.User{}).Where("id = ?", id).Update(column, value)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&model.User{}, id).Error
}
