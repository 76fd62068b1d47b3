package repository

import (
	"github.com/consite-dev/consite-go/internal/domain/task"
	"gorm.io/gorm"
)

type TaskRepo interface {
	CreateTask(t *task.Task) error
	FindTaskByID(id uint) (*task.Task, error)
	ListTasks(scope *task.Scope) ([]task.Task, error)
	ListTasksByAssignee(userID uint) ([]task.Task, error)
	ListTasksByAssignees(userIDs []uint) ([]task.Task, error)
	SaveTask(t *task.Task) error
	WithTx(tx *gorm.DB) TaskRepo
}

type DBTaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *DBTaskRepo {
	return &DBTaskRepo{db: db}
}

func (r *DBTaskRepo) CreateTask(t *task.Task) error {
	return r.db.Create(t).Error
}

func (r *DBTaskRepo) FindTaskByID(id uint) (*task.Task, error) {
	var t task.Task
	err := r.db.Preload("AssignedTo").Preload("AssignedBy").Preload("Project").First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *DBTaskRepo) ListTasks(scope *task.Scope) ([]task.Task, error) {
	var tasks []task.Task
	query := r.db.Preload("AssignedTo").Preload("AssignedBy").Preload("Project")
	if scope != nil {
		query = query.Where(scope.Column+" = ?", scope.UserID)
	}
	err := query.Order("due_date asc").Find(&tasks).Error
	return tasks, err
}

func (r *DBTaskRepo) ListTasksByAssignee(userID uint) ([]task.Task, error) {
	var tasks []task.Task
	err := r.db.Where("assigned_to_id = ?", userID).
		Preload("AssignedBy").Preload("Project").
		Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *DBTaskRepo) ListTasksByAssignees(userIDs []uint) ([]task.Task, error) {
	var tasks []task.Task
	if len(userIDs) == 0 {
		return tasks, nil
	}
	err := r.db.Where("assigned_to_id IN ?", userIDs).
		Preload("AssignedTo").
		Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *DBTaskRepo) SaveTask(t *task.Task) error {
	return r.db.Save(t).Error
}

func (r *DBTaskRepo) WithTx(tx *gorm.DB) TaskRepo {
	if tx == nil {
		return r
	}
	return &DBTaskRepo{db: tx}
}
