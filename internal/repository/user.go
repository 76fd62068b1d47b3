package repository

import (
	"github.com/consite-dev/consite-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	GetUserByEmailOrGoogleID(email, googleID string) (user.User, error)
	ListUsers(q user.ListUsersQuery) ([]user.User, int64, error)
	ListWorkers() ([]user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmailOrGoogleID(email, googleID string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ? OR google_id = ?", email, googleID).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ListUsers(q user.ListUsersQuery) ([]user.User, int64, error) {
	var users []user.User
	var total int64

	query := r.db.Model(&user.User{})
	if q.Role != "" {
		query = query.Where("role = ?", q.Role)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(q.Limit).Find(&users).Error
	return users, total, err
}

func (r *DBUserRepo) ListWorkers() ([]user.User, error) {
	var workers []user.User
	err := r.db.Where("role = ?", user.RoleWorker).Find(&workers).Error
	return workers, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
