package repository

import (
	"github.com/consite-dev/consite-go/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	FindProjectByID(id uint) (*project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) FindProjectByID(id uint) (*project.Project, error) {
	var p project.Project
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
