// Package tasks holds the in-memory to-do list. State lives for the process
// lifetime only.
package tasks

import (
	"errors"
	"sync"
)

// ErrNotFound is returned for unknown task ids.
var ErrNotFound = errors.New("tasks: task not found")

// Task is a single to-do item. Description is optional and omitted from JSON
// when it was never set.
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Completed   bool    `json:"completed"`
	Description *string `json:"description,omitempty"`
}

// Update carries partial changes; nil fields are left untouched.
type Update struct {
	Title       *string
	Completed   *bool
	Description *string
}

// Store keeps tasks in creation order with monotonically assigned ids.
type Store struct {
	mu     sync.RWMutex
	nextID int
	items  []Task
}

// NewStore creates an empty task store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// List returns all tasks in creation order.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Task, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, nil
		}
	}
	return Task{}, ErrNotFound
}

// Create appends a new task and assigns the next id.
func (s *Store) Create(title string, completed bool, description *string) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := Task{
		ID:          s.nextID,
		Title:       title,
		Completed:   completed,
		Description: description,
	}
	s.nextID++
	s.items = append(s.items, t)
	return t
}

// Apply updates the fields present in upd and returns the result.
func (s *Store) Apply(id int, upd Update) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if upd.Title != nil {
			s.items[i].Title = *upd.Title
		}
		if upd.Completed != nil {
			s.items[i].Completed = *upd.Completed
		}
		if upd.Description != nil {
			s.items[i].Description = upd.Description
		}
		return s.items[i], nil
	}
	return Task{}, ErrNotFound
}

// Delete removes the task with the given id.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
