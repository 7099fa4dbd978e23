package services

import (
	"context"
	"time"

	"task-tracker/internal/logging"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	taskService TaskService
	clock       Clock
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(taskService TaskService, clock Clock) ReportingService {
	if clock == nil {
		clock = time.Now
	}
	return &reportingServiceImpl{
		taskService: taskService,
		clock:       clock,
	}
}

// Report counts all tasks, the done ones, and the late ones among those not done.
func (r *reportingServiceImpl) Report(ctx context.Context) (*Report, error) {
	now := r.clock()
	report := &Report{}

	for task, err := range r.taskService.Tasks(ctx) {
		if err != nil {
			return nil, err
		}
		report.Total++
		if task.Done {
			report.Done++
			continue
		}
		if task.IsLate(now) {
			report.Late++
		}
	}
	report.Pending = report.Total - report.Done

	logging.Debug("built report", "total", report.Total, "done", report.Done, "late", report.Late)
	return report, nil
}
