package repository

import (
	"github.com/consite-dev/consite-go/internal/domain/blueprint"
	"gorm.io/gorm"
)

type BlueprintRepo interface {
	CreateBlueprint(b *blueprint.Blueprint) error
	ListBlueprints(projectID *uint) ([]blueprint.Blueprint, error)
	WithTx(tx *gorm.DB) BlueprintRepo
}

type DBBlueprintRepo struct {
	db *gorm.DB
}

func NewBlueprintRepo(db *gorm.DB) *DBBlueprintRepo {
	return &DBBlueprintRepo{db: db}
}

func (r *DBBlueprintRepo) CreateBlueprint(b *blueprint.Blueprint) error {
	return r.db.Create(b).Error
}

func (r *DBBlueprintRepo) ListBlueprints(projectID *uint) ([]blueprint.Blueprint, error) {
	var blueprints []blueprint.Blueprint
	query := r.db.Preload("UploadedBy").Preload("Project")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	err := query.Order("created_at desc").Find(&blueprints).Error
	return blueprints, err
}

func (r *DBBlueprintRepo) WithTx(tx *gorm.DB) BlueprintRepo {
	if tx == nil {
		return r
	}
	return &DBBlueprintRepo{db: tx}
}
