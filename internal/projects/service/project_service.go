package service

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/sb-infra/sbinfra-backend/internal/projects/domain"
	"github.com/sb-infra/sbinfra-backend/internal/projects/repository"
	"github.com/sb-infra/sbinfra-backend/internal/uploads"
)

// CreateInput carries the fields for a new project. Image, when set,
// takes precedence over ImageURL.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
	Location    string
	Year        string
	Category    string
	Image       *multipart.FileHeader
}

// UpdateInput carries a partial update. Nil fields keep their prior
// values; a non-nil Image replaces the stored image.
type UpdateInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	Location    *string
	Year        *string
	Category    *string
	Image       *multipart.FileHeader
}

// ProjectService handles project catalog business logic.
type ProjectService struct {
	repo   *repository.ProjectRepository
	images *uploads.Store
}

// NewProjectService creates a new project service.
func NewProjectService(repo *repository.ProjectRepository, images *uploads.Store) *ProjectService {
	return &ProjectService{repo: repo, images: images}
}

// List returns all projects in insertion order.
func (s *ProjectService) List() ([]domain.Project, error) {
	return s.repo.List()
}

// GetByID returns one project, or domain.ErrNotFound.
func (s *ProjectService) GetByID(id string) (*domain.Project, error) {
	return s.repo.GetByID(id)
}

// Create validates the input, resolves the image (uploaded file wins
// over an external URL) and appends the project to the catalog.
func (s *ProjectService) Create(in CreateInput) (*domain.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, &domain.ValidationError{Field: "description", Reason: "required"}
	}

	imageURL := ""
	if in.Image != nil {
		saved, err := s.images.Save(in.Image)
		if err != nil {
			return nil, err
		}
		imageURL = saved
	} else if in.ImageURL != "" {
		imageURL = strings.TrimSpace(in.ImageURL)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	p := domain.Project{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    imageURL,
		Location:    strings.TrimSpace(in.Location),
		Year:        strings.TrimSpace(in.Year),
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(p)
	if err != nil {
		if in.Image != nil && imageURL != "" {
			// The upload landed on disk but the record did not; drop it.
			if delErr := s.images.Delete(imageURL); delErr != nil {
				log.Printf("Could not remove stranded upload %s: %v", imageURL, delErr)
			}
		}
		return nil, err
	}
	return created, nil
}

// Update applies a partial update: only non-nil fields change. A new
// uploaded image replaces the stored one, deleting the old file when it
// was store-managed; an external imageUrl is set verbatim (trimmed).
func (s *ProjectService) Update(id string, in UpdateInput) (*domain.Project, error) {
	newImage := ""
	if in.Image != nil {
		saved, err := s.images.Save(in.Image)
		if err != nil {
			return nil, err
		}
		newImage = saved
	}

	updated, err := s.repo.Modify(id, func(p *domain.Project) {
		if in.Title != nil {
			p.Title = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			p.Description = strings.TrimSpace(*in.Description)
		}
		if newImage != "" {
			if s.images.Managed(p.ImageURL) {
				if err := s.images.Delete(p.ImageURL); err != nil {
					log.Printf("Could not delete old image %s: %v", p.ImageURL, err)
				}
			}
			p.ImageURL = newImage
		} else if in.ImageURL != nil {
			p.ImageURL = strings.TrimSpace(*in.ImageURL)
		}
		if in.Location != nil {
			p.Location = strings.TrimSpace(*in.Location)
		}
		if in.Year != nil {
			p.Year = strings.TrimSpace(*in.Year)
		}
		if in.Category != nil {
			p.Category = strings.TrimSpace(*in.Category)
		}
		p.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	})
	if err != nil {
		if newImage != "" {
			if delErr := s.images.Delete(newImage); delErr != nil {
				log.Printf("Could not remove stranded upload %s: %v", newImage, delErr)
			}
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the project and, when its image was store-managed,
// the image file along with it.
func (s *ProjectService) Delete(id string) error {
	removed, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if s.images.Managed(removed.ImageURL) {
		if err := s.images.Delete(removed.ImageURL); err != nil {
			log.Printf("Could not delete image for project %s: %v", id, err)
		}
	}
	return nil
}

// ReferencedImages returns the set of store-managed image paths still
// referenced by the catalog. Used by the orphan sweep.
func (s *ProjectService) ReferencedImages() (map[string]bool, error) {
	projects, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	refs := make(map[string]bool, len(projects))
	for i := range projects {
		if s.images.Managed(projects[i].ImageURL) {
			refs[projects[i].ImageURL] = true
		}
	}
	return refs, nil
}

// IsImageRejected reports whether err is an upload policy rejection
// (wrong content type or oversized file) rather than an I/O failure.
func IsImageRejected(err error) bool {
	return errors.Is(err, uploads.ErrNotImage) || errors.Is(err, uploads.ErrTooLarge)
}
