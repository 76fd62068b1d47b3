package application

import (
	"testing"

	"github.com/consite-dev/consite-go/internal/domain/blueprint"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupBlueprintServiceMocks(t *testing.T) (*BlueprintService, *mock.MockBlueprintRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockBlueprint := mock.NewMockBlueprintRepo(ctrl)
	repos := &repository.Repos{
		Blueprint: mockBlueprint,
	}
	svc := NewBlueprintService(repos)
	return svc, mockBlueprint
}

// --------------------- Upload ---------------------
func TestUploadBlueprint_DefaultsVersionAndForcesApproved(t *testing.T) {
	svc, mockBlueprint := setupBlueprintServiceMocks(t)

	mockBlueprint.EXPECT().CreateBlueprint(gomock.Any()).Return(nil)

	b, err := svc.Upload(3, blueprint.UploadBlueprintInput{
		Title:     "Floor plan L2",
		ProjectID: 1,
		ImageURL:  "https://img/plan.pdf",
	})
	assert.NoError(t, err)
	assert.Equal(t, "1.0", b.Version)
	assert.Equal(t, blueprint.StatusApproved, b.Status)
	assert.Equal(t, uint(3), b.UploadedByID)
}

func TestUploadBlueprint_KeepsExplicitVersion(t *testing.T) {
	svc, mockBlueprint := setupBlueprintServiceMocks(t)

	mockBlueprint.EXPECT().CreateBlueprint(gomock.Any()).Return(nil)

	b, err := svc.Upload(3, blueprint.UploadBlueprintInput{
		Title:     "Floor plan L2",
		ProjectID: 1,
		ImageURL:  "https://img/plan.pdf",
		Version:   "2.3",
	})
	assert.NoError(t, err)
	assert.Equal(t, "2.3", b.Version)
}

// --------------------- ListBlueprints ---------------------
func TestListBlueprints_PassesProjectFilter(t *testing.T) {
	svc, mockBlueprint := setupBlueprintServiceMocks(t)

	projectID := uint(1)
	mockBlueprint.EXPECT().ListBlueprints(&projectID).Return([]blueprint.Blueprint{{ID: 1}}, nil)

	blueprints, err := svc.ListBlueprints(&projectID)
	assert.NoError(t, err)
	assert.Len(t, blueprints, 1)
}
