package application

import (
	"github.com/consite-dev/consite-go/internal/domain/blueprint"
	"github.com/consite-dev/consite-go/internal/repository"
)

type BlueprintService struct {
	Repos *repository.Repos
}

func NewBlueprintService(repos *repository.Repos) *BlueprintService {
	return &BlueprintService{Repos: repos}
}

func (s *BlueprintService) ListBlueprints(projectID *uint) ([]blueprint.Blueprint, error) {
	return s.Repos.Blueprint.ListBlueprints(projectID)
}

// Upload registers a blueprint document. Status is force-set to Approved;
// there is no review workflow even though the enum keeps Draft and Archived.
func (s *BlueprintService) Upload(callerID uint, input blueprint.UploadBlueprintInput) (*blueprint.Blueprint, error) {
	version := input.Version
	if version == "" {
		version = "1.0"
	}

	b := blueprint.Blueprint{
		Title:        input.Title,
		ProjectID:    input.ProjectID,
		UploadedByID: callerID,
		Version:      version,
		ImageURL:     input.ImageURL,
		Status:       blueprint.StatusApproved,
		Notes:        input.Notes,
	}
	if err := s.Repos.Blueprint.CreateBlueprint(&b); err != nil {
		return nil, err
	}
	return &b, nil
}
