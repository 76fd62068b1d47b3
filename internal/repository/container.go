package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Task         TaskRepo
	Invoice      InvoiceRepo
	Blueprint    BlueprintRepo
	Notification NotificationRepo
	Project      ProjectRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Task:         NewTaskRepo(db),
		Invoice:      NewInvoiceRepo(db),
		Blueprint:    NewBlueprintRepo(db),
		Notification: NewNotificationRepo(db),
		Project:      NewProjectRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Task:         r.Task.WithTx(tx),
		Invoice:      r.Invoice.WithTx(tx),
		Blueprint:    r.Blueprint.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Project:      r.Project.WithTx(tx),
		db:           tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
