package services

import (
	"context"

	apperrors "todolist-api.com/todolist-api/internal/errors"
	model "todolist-api.com/todolist-api/internal/models"
	repository "todolist-api.com/todolist-api/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) SaveTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	var saved *model.Task
	err := s.repo.Transaction(ctx, func(r *repository.TaskRepository) error {
		var err error
		saved, err = r.Save(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.FindAll(ctx)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int32) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateTask replaces every mutable field of the stored task with the
// value from details, empty or not. The id of details is ignored.
func (s *TaskService) UpdateTask(ctx context.Context, id int32, details *model.Task) (*model.Task, error) {
	var updated *model.Task
	err := s.repo.Transaction(ctx, func(r *repository.TaskRepository) error {
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperrors.ErrTaskNotFound
		}

		existing.Title = details.Title
		existing.Status = details.Status
		existing.Description = details.Description
		existing.Deadline = details.Deadline

		updated, err = r.Save(ctx, existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int32) error {
	return s.repo.Transaction(ctx, func(r *repository.TaskRepository) error {
		exists, err := r.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrTaskNotFound
		}
		return r.DeleteByID(ctx, id)
	})
}
