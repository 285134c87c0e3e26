package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "todolist-api.com/todolist-api/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Save inserts the task when its id is zero, letting the store assign one,
// and overwrites the full row otherwise.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.ID == 0 {
		if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
			return nil, err
		}
		return task, nil
	}

	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// FindByID returns (nil, nil) when no row has the id; the error is
// reserved for storage failure.
func (r *TaskRepository) FindByID(ctx context.Context, id int32) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ExistsByID(ctx context.Context, id int32) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error
	return tasks, err
}

// DeleteByID is a no-op on an absent id; existence is the caller's concern.
func (r *TaskRepository) DeleteByID(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}

// Transaction runs fn against a tx-bound repository. The transaction
// commits when fn returns nil and rolls back otherwise.
func (r *TaskRepository) Transaction(ctx context.Context, fn func(*TaskRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TaskRepository{db: tx})
	})
}
