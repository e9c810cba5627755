package repository

import (
	"context"
	"sync"

	"interior-planner/internal/planner/models"

	"github.com/google/uuid"
)

// ============================================================
// Memory Store
// ============================================================

// MemoryStore держит проекты в памяти процесса.
// Мьютекс защищает только саму map; поля проекта, полученного через Get,
// изменяются вызывающим кодом без синхронизации.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]*models.Project
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects: make(map[string]*models.Project),
	}
}

func (s *MemoryStore) Create(_ context.Context, name string) (*models.Project, error) {
	project := models.NewProject(uuid.NewString(), name)

	s.mu.Lock()
	s.projects[project.ID] = project
	s.mu.Unlock()

	return project, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *MemoryStore) Save(_ context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[project.ID]; !ok {
		return ErrNotFound
	}
	s.projects[project.ID] = project
	return nil
}
