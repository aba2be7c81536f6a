package store

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"todoapi/models"
)

// TaskInput carries the caller-writable task fields. A nil field means
// "not supplied", which matters for partial updates. The owner is not
// part of the input and cannot be set by a caller.
type TaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// TaskFilter narrows List results.
type TaskFilter struct {
	Completed *bool
	Priority  *models.Priority
}

// taskFields is the validatable projection of TaskInput. Priority and
// due date stay raw strings until they pass format checks.
type taskFields struct {
	Title    string  `validate:"required,max=255"`
	Priority *string `validate:"omitnil,oneof=Low Medium High"`
	DueDate  *string `validate:"omitnil,datetime=2006-01-02"`
}

// TaskStore provides CRUD over tasks. Every method takes the owning
// user's id explicitly; there is no ambient principal.
type TaskStore struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db, validate: validator.New()}
}

// Create persists a new task owned by userID. Unsupplied optional fields
// take their defaults (empty description, not completed, Low priority,
// no due date). A zero userID is rejected so ownerless tasks cannot
// exist, whichever path constructs them.
func (s *TaskStore) Create(userID uint, in TaskInput) (*models.Task, error) {
	if userID == 0 {
		return nil, errors.New("task owner is required")
	}

	task := models.Task{UserID: userID}
	if err := s.apply(&task, in, false); err != nil {
		return nil, err
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

// List returns the user's tasks, newest first. The id tiebreak keeps the
// order deterministic when created_at timestamps collide.
func (s *TaskStore) List(userID uint, filter TaskFilter) ([]models.Task, error) {
	q := s.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}

	tasks := make([]models.Task, 0)
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the task only if it exists and is owned by userID.
func (s *TaskStore) Get(userID, id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("user_id = ?", userID).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

// Update mutates the task under the same ownership rule as Get. A partial
// update touches only the supplied fields; a full update requires a title
// and resets omitted optional fields to their defaults.
func (s *TaskStore) Update(userID, id uint, in TaskInput, partial bool) (*models.Task, error) {
	task, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(task, in, partial); err != nil {
		return nil, err
	}

	if err := s.db.Save(task).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes the task under the same ownership rule as Get.
func (s *TaskStore) Delete(userID, id uint) error {
	res := s.db.Where("user_id = ?", userID).Delete(&models.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// apply validates the input against the task's would-be state and then
// copies it onto the task.
func (s *TaskStore) apply(task *models.Task, in TaskInput, partial bool) error {
	f := taskFields{Priority: in.Priority, DueDate: in.DueDate}
	if in.Title != nil {
		f.Title = *in.Title
	} else if partial {
		f.Title = task.Title
	}
	if verr := s.checkFields(f); verr != nil {
		return verr
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	} else if !partial {
		task.Description = ""
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	} else if !partial {
		task.Completed = false
	}
	if in.Priority != nil {
		p, err := models.ParsePriority(*in.Priority)
		if err != nil {
			return fmt.Errorf("apply priority: %w", err)
		}
		task.Priority = p
	} else if !partial {
		task.Priority = models.PriorityLow
	}
	if in.DueDate != nil {
		d, err := models.ParseDate(*in.DueDate)
		if err != nil {
			return fmt.Errorf("apply due date: %w", err)
		}
		task.DueDate = &d
	} else if !partial {
		task.DueDate = nil
	}
	return nil
}

func (s *TaskStore) checkFields(f taskFields) *ValidationError {
	err := s.validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: map[string]string{"": err.Error()}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Title":
			if fe.Tag() == "max" {
				fields["title"] = "Ensure this field has no more than 255 characters."
			} else {
				fields["title"] = "This field is required."
			}
		case "Priority":
			fields["priority"] = "Must be one of: Low, Medium, High."
		case "DueDate":
			fields["due_date"] = "Date has wrong format. Use YYYY-MM-DD."
		}
	}
	return &ValidationError{Fields: fields}
}
