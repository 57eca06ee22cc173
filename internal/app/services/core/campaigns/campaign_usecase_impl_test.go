package campaigns

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockHealthCampaignRepository struct {
	mock.Mock
}

func (m *MockHealthCampaignRepository) InsertOne(ctx context.Context, campaign *models.HealthCampaign) (string, error) {
	args := m.Called(ctx, campaign)
	return args.String(0), args.Error(1)
}

func (m *MockHealthCampaignRepository) FindAll(ctx context.Context) ([]models.HealthCampaign, error) {
	args := m.Called(ctx)
	campaigns, _ := args.Get(0).([]models.HealthCampaign)
	return campaigns, args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, folder string) (string, error) {
	args := m.Called(ctx, file, fileHeader, folder)
	return args.String(0), args.Error(1)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Storage: config.Storage{UploadMaxSizeInMegabyte: 1},
	}
}

func newCampaignRequest() *requests.CreateHealthCampaign {
	return &requests.CreateHealthCampaign{
		Title:            "Free Eye Checkup",
		Description:      "Screening for all ages",
		Date:             "2024-05-01",
		StartTime:        "09:00",
		EndTime:          "17:00",
		Organizer:        "City Hospital",
		OrganizerContact: "9876543210",
		Attendees:        120,
		Address:          "MG Road",
	}
}

func TestHealthCampaignUsecase_CreateCampaign(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("Stores Campaign With Uploaded Image", func(t *testing.T) {
		repository := new(MockHealthCampaignRepository)
		storage := new(MockStorage)
		usecase := NewHealthCampaignUsecase(repository, storage, testInternalConfig(), logger)

		request := newCampaignRequest()
		request.Image = &requests.Upload{Header: &multipart.FileHeader{Filename: "poster.png", Size: 1024}}

		storage.On("UploadFile", mock.Anything, mock.Anything, request.Image.Header, constvars.UploadFolderHealthCampaigns).
			Return("/uploads/health_campaigns/1714550400000-1a2b3c4d.png", nil).Once()
		repository.On("InsertOne", mock.Anything, mock.MatchedBy(func(c *models.HealthCampaign) bool {
			return c.Image != nil && *c.Image == "/uploads/health_campaigns/1714550400000-1a2b3c4d.png"
		})).Return("65f1c2a9e4b0a1b2c3d4e5f6", nil).Once()

		campaign, err := usecase.CreateCampaign(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "Free Eye Checkup", campaign.Title)
		assert.Equal(t, 120, campaign.Attendees)
		assert.Equal(t, "65f1c2a9e4b0a1b2c3d4e5f6", campaign.ID.Hex())
		repository.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("Image Is Optional", func(t *testing.T) {
		repository := new(MockHealthCampaignRepository)
		storage := new(MockStorage)
		usecase := NewHealthCampaignUsecase(repository, storage, testInternalConfig(), logger)

		repository.On("InsertOne", mock.Anything, mock.MatchedBy(func(c *models.HealthCampaign) bool {
			return c.Image == nil
		})).Return("65f1c2a9e4b0a1b2c3d4e5f6", nil).Once()

		campaign, err := usecase.CreateCampaign(ctx, newCampaignRequest())

		require.NoError(t, err)
		assert.Nil(t, campaign.Image)
		storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Title Is Rejected", func(t *testing.T) {
		repository := new(MockHealthCampaignRepository)
		usecase := NewHealthCampaignUsecase(repository, new(MockStorage), testInternalConfig(), logger)

		request := newCampaignRequest()
		request.Title = ""

		_, err := usecase.CreateCampaign(ctx, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "title is required", customErr.ClientMessage)
		repository.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
	})

	t.Run("Wrong Image Type Is Rejected Before Upload", func(t *testing.T) {
		repository := new(MockHealthCampaignRepository)
		storage := new(MockStorage)
		usecase := NewHealthCampaignUsecase(repository, storage, testInternalConfig(), logger)

		request := newCampaignRequest()
		request.Image = &requests.Upload{Header: &multipart.FileHeader{Filename: "poster.exe", Size: 10}}

		_, err := usecase.CreateCampaign(ctx, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidUploadFormat, customErr.ClientMessage)
		storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Oversized Image Is Rejected", func(t *testing.T) {
		storage := new(MockStorage)
		usecase := NewHealthCampaignUsecase(new(MockHealthCampaignRepository), storage, testInternalConfig(), logger)

		request := newCampaignRequest()
		request.Image = &requests.Upload{Header: &multipart.FileHeader{Filename: "poster.jpg", Size: 2 * 1024 * 1024}}

		_, err := usecase.CreateCampaign(ctx, request)

		assert.Error(t, err)
		storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload Failure Skips Insert", func(t *testing.T) {
		repository := new(MockHealthCampaignRepository)
		storage := new(MockStorage)
		usecase := NewHealthCampaignUsecase(repository, storage, testInternalConfig(), logger)

		request := newCampaignRequest()
		request.Image = &requests.Upload{Header: &multipart.FileHeader{Filename: "poster.jpg", Size: 10}}
		storage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", exceptions.ErrStorageWriteFile(errors.New("disk full"), constvars.UploadFolderHealthCampaigns)).Once()

		_, err := usecase.CreateCampaign(ctx, request)

		assert.Error(t, err)
		repository.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		repository := new(MockHealthCampaignRepository)
		usecase := NewHealthCampaignUsecase(repository, new(MockStorage), testInternalConfig(), logger)
		repository.On("InsertOne", mock.Anything, mock.Anything).
			Return("", exceptions.ErrMongoDBInsertDocument(errors.New("connection refused"))).Once()

		campaign, err := usecase.CreateCampaign(ctx, newCampaignRequest())

		assert.Nil(t, campaign)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestHealthCampaignUsecase_FindAll(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Empty Collection Yields Empty Slice", func(t *testing.T) {
		repository := new(MockHealthCampaignRepository)
		usecase := NewHealthCampaignUsecase(repository, new(MockStorage), testInternalConfig(), logger)
		repository.On("FindAll", mock.Anything).Return(nil, nil).Once()

		campaigns, err := usecase.FindAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, campaigns)
		assert.Empty(t, campaigns)
	})

	t.Run("Returns Stored Campaigns", func(t *testing.T) {
		repository := new(MockHealthCampaignRepository)
		usecase := NewHealthCampaignUsecase(repository, new(MockStorage), testInternalConfig(), logger)
		stored := []models.HealthCampaign{{Title: "Blood Donation"}, {Title: "Polio Drive"}}
		repository.On("FindAll", mock.Anything).Return(stored, nil).Once()

		campaigns, err := usecase.FindAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stored, campaigns)
	})
}
