package repository

import (
	"fmt"

	"github.com/sb-infra/sbinfra-backend/internal/projects/domain"
	"github.com/sb-infra/sbinfra-backend/internal/projects/utils"
	"github.com/sb-infra/sbinfra-backend/internal/storage/jsonfile"
)

const collection = "projects"

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	store *jsonfile.Store
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(store *jsonfile.Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// List returns all projects in insertion order.
func (r *ProjectRepository) List() ([]domain.Project, error) {
	return jsonfile.Load[domain.Project](r.store, collection)
}

// GetByID returns the project with the given id.
func (r *ProjectRepository) GetByID(id string) (*domain.Project, error) {
	projects, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create assigns the project a fresh id and appends it to the
// collection. An id collision within the same millisecond is retried
// with a salted id.
func (r *ProjectRepository) Create(p domain.Project) (*domain.Project, error) {
	var created *domain.Project
	err := jsonfile.Update(r.store, collection, func(projects []domain.Project) ([]domain.Project, error) {
		for i := 0; i < 5; i++ {
			id, err := utils.NewProjectID(i > 0)
			if err != nil {
				return nil, err
			}
			if idTaken(projects, id) {
				continue
			}
			p.ID = id
			created = &p
			return append(projects, p), nil
		}
		return nil, fmt.Errorf("failed to generate unique project id")
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Modify runs fn against the project with the given id and persists
// the result. Returns the modified project, or ErrNotFound.
func (r *ProjectRepository) Modify(id string, fn func(*domain.Project)) (*domain.Project, error) {
	var modified *domain.Project
	err := jsonfile.Update(r.store, collection, func(projects []domain.Project) ([]domain.Project, error) {
		for i := range projects {
			if projects[i].ID == id {
				fn(&projects[i])
				modified = &projects[i]
				return projects, nil
			}
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return modified, nil
}

// Delete removes the project with the given id and returns it, or
// ErrNotFound when the id does not exist.
func (r *ProjectRepository) Delete(id string) (*domain.Project, error) {
	var removed *domain.Project
	err := jsonfile.Update(r.store, collection, func(projects []domain.Project) ([]domain.Project, error) {
		for i := range projects {
			if projects[i].ID == id {
				p := projects[i]
				removed = &p
				return append(projects[:i], projects[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func idTaken(projects []domain.Project, id string) bool {
	for i := range projects {
		if projects[i].ID == id {
			return true
		}
	}
	return false
}
