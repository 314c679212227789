package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/core/services"
	"github.com/invoiceflow/backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockClientRepository
	mockActivity *MockActivitySvc
	service      portssvc.ClientSvcFacade

	userID string
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.mockActivity = new(MockActivitySvc)
	suite.service = services.NewClientService(suite.mockRepo, suite.mockActivity)
	suite.userID = uuid.NewString()
}

func (suite *ClientServiceTestSuite) TestCreateClient_DefaultsToActive() {
	ctx := context.Background()
	req := dto.SaveClientRequest{Name: "Acme Corp", Email: "billing@acme.test"}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == req.Name && c.UserID == suite.userID && c.Status == domain.ClientActive
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityClient, "Client Acme Corp created", mock.Anything).Once()

	client, err := suite.service.CreateClient(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ClientActive, client.Status)
	suite.NotEmpty(client.ClientID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_ReplacesFields() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{
		ClientID: clientID,
		UserID:   suite.userID,
		Name:     "Acme Corp",
		Email:    "billing@acme.test",
		Phone:    "+33 1 11 11 11 11",
		Status:   domain.ClientActive,
	}
	req := dto.SaveClientRequest{Name: "Acme Corp SARL", Email: "accounts@acme.test", Status: "Inactive"}

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		// Replace semantics: the omitted phone is cleared, not preserved.
		return c.Name == "Acme Corp SARL" && c.Phone == "" && c.Status == domain.ClientInactive
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityClient, mock.AnythingOfType("string"), mock.Anything).Once()

	client, err := suite.service.UpdateClient(ctx, clientID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("Acme Corp SARL", client.Name)
	suite.Equal(domain.ClientInactive, client.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClientByID_ForeignClientNotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, clientID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_RecordsActivity() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{ClientID: clientID, UserID: suite.userID, Name: "Acme Corp", Status: domain.ClientActive}

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.userID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteClient", ctx, clientID, suite.userID).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityClient, "Client Acme Corp deleted", mock.Anything).Once()

	err := suite.service.DeleteClient(ctx, clientID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDeleteClient_NotFoundSkipsDelete() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteClient(ctx, clientID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteClient", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
