package validation

// TaskValidator checks task inputs before they reach the store
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName requires a name with at least one non-space character
func (tv *TaskValidator) ValidateTaskName(name string) error {
	if !tv.validator.IsNonEmptyString(name) {
		return required("task_name")
	}
	return nil
}

// ValidateDate accepts an empty date or one in the exact domain.DateLayout form
func (tv *TaskValidator) ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if !tv.validator.IsWellFormedDate(date) {
		return malformed("task_date", date, "expected YYYY-MM-DD HH:MM:SS")
	}
	if !tv.validator.IsValidCalendarDate(date) {
		return outOfRange("task_date", date, "not a valid calendar date and time")
	}
	return nil
}

// ValidatePosition requires a 1-based task position
func (tv *TaskValidator) ValidatePosition(position int) error {
	if !tv.validator.IsValidPosition(position) {
		return outOfRange("position", position, "must be a positive integer")
	}
	return nil
}
