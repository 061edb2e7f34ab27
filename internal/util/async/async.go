package async

import (
	"context"
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// Task is a named operation.
type Task struct {
	Name string
	Func func(context.Context) error
}

// Run starts all tasks at once and waits for them. Failures are returned as
// an aggregate in task order, each prefixed with the task name.
func Run(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	errs := make([]error, len(tasks))
	done := make(chan struct{}, len(tasks))
	for i, task := range tasks {
		go func() {
			defer func() { done <- struct{}{} }()
			if err := task.Func(ctx); err != nil {
				errs[i] = fmt.Errorf("%s: %w", task.Name, err)
			}
		}()
	}
	for range tasks {
		<-done
	}

	return utilerrors.NewAggregate(errs)
}
