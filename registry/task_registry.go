/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// TaskFunc runs one unit of work from plain structured input, the shape an
// orchestration engine passes across its caller boundary.
type TaskFunc func(ctx context.Context, input map[string]any) (any, error)

// Task is a named, registrable unit of work.
type Task struct {
	Name        string
	Description string
	Run         TaskFunc
}

var (
	mu    sync.RWMutex
	tasks = make(map[string]Task)
)

// Register stores the task under its name.
func Register(t Task) error {
	if t.Name == "" {
		return fmt.Errorf("task has no name")
	}
	if t.Run == nil {
		return fmt.Errorf("task %q has no run function", t.Name)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := tasks[t.Name]; exists {
		return fmt.Errorf("task with name %q already registered", t.Name)
	}
	tasks[t.Name] = t
	return nil
}

// Get retrieves the task registered under the given name.
func Get(name string) (Task, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, exists := tasks[name]
	if !exists {
		return Task{}, fmt.Errorf("task with name %q not found", name)
	}
	return t, nil
}

// Unregister removes the task registered under the given name.
func Unregister(name string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := tasks[name]; !exists {
		return fmt.Errorf("task with name %q not found", name)
	}
	delete(tasks, name)
	return nil
}

// List returns all registered task names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
