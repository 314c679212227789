package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/dto"
	"github.com/invoiceflow/backend/internal/handlers"
	"github.com/invoiceflow/backend/internal/platform/config"
	"github.com/invoiceflow/backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, userID string, req dto.SaveClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) GetClientByID(ctx context.Context, clientID, userID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, clientID, userID string, req dto.SaveClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, clientID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(ctx context.Context, clientID, userID string) error {
	args := m.Called(ctx, clientID, userID)
	return args.Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) CreateQuote(ctx context.Context, userID string, req dto.CreateQuoteRequest) (*domain.Quote, []domain.QuoteItem, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Quote), args.Get(1).([]domain.QuoteItem), args.Error(2)
}
func (m *MockQuoteService) GetQuoteByID(ctx context.Context, quoteID, userID string) (*domain.Quote, []domain.QuoteItem, error) {
	args := m.Called(ctx, quoteID, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Quote), args.Get(1).([]domain.QuoteItem), args.Error(2)
}
func (m *MockQuoteService) ListQuotes(ctx context.Context, userID string) ([]domain.Quote, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteService) UpdateQuoteStatus(ctx context.Context, quoteID, userID string, status domain.QuoteStatus) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ConvertToInvoice(ctx context.Context, quoteID, userID string) (*domain.Invoice, []domain.InvoiceItem, error) {
	args := m.Called(ctx, quoteID, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Invoice), args.Get(1).([]domain.InvoiceItem), args.Error(2)
}

var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

// --- Test Suite ---
type ClientHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockClientService *MockClientService
	mockQuoteService  *MockQuoteService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ClientHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "invoiceflow-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockClientService = new(MockClientService)
	suite.mockQuoteService = new(MockQuoteService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skips swagger registration
	}
	services := &portssvc.ServiceContainer{
		Client: suite.mockClientService,
		Quote:  suite.mockQuoteService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, &utils.PosthogClientWrapper{})
}

func (suite *ClientHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	userID := uuid.NewString()
	req := dto.SaveClientRequest{Name: "Acme SARL", Email: "billing@acme.example"}

	created := &domain.Client{
		ClientID: uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Status:   domain.ClientActive,
	}
	suite.mockClientService.On("CreateClient",
		mock.Anything,
		userID,
		mock.MatchedBy(func(r dto.SaveClientRequest) bool {
			return r.Name == req.Name && r.Email == req.Email
		}),
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/clients", userID, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ClientID, resp.ClientID)
	suite.Equal("Active", resp.Status)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_MissingName() {
	userID := uuid.NewString()
	w := suite.doRequest(http.MethodPost, "/api/v1/clients", userID, map[string]string{"email": "x@y.example"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "CreateClient")
}

func (suite *ClientHandlerTestSuite) TestCreateClient_Unauthenticated() {
	w := suite.doRequest(http.MethodPost, "/api/v1/clients", "", dto.SaveClientRequest{Name: "Acme", Email: "a@b.example"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "CreateClient")
}

func (suite *ClientHandlerTestSuite) TestGetClient_NotFound() {
	userID := uuid.NewString()
	clientID := uuid.NewString()
	suite.mockClientService.On("GetClientByID", mock.Anything, clientID, userID).
		Return(nil, fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/clients/"+clientID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestListClients_Success() {
	userID := uuid.NewString()
	clients := []domain.Client{
		{ClientID: uuid.NewString(), UserID: userID, Name: "One", Email: "one@x.example", Status: domain.ClientActive},
		{ClientID: uuid.NewString(), UserID: userID, Name: "Two", Email: "two@x.example", Status: domain.ClientInactive},
	}
	suite.mockClientService.On("ListClients", mock.Anything, userID).Return(clients, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/clients", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(clients[0].ClientID, resp[0].ClientID)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestDeleteClient_NoContent() {
	userID := uuid.NewString()
	clientID := uuid.NewString()
	suite.mockClientService.On("DeleteClient", mock.Anything, clientID, userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/clients/"+clientID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestConvertQuote_Created() {
	userID := uuid.NewString()
	quoteID := uuid.NewString()
	invoice := &domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV007",
		UserID:        userID,
		QuoteID:       &quoteID,
		Amount:        decimal.NewFromInt(500),
		TaxAmount:     decimal.NewFromInt(100),
		Status:        domain.InvoiceDraft,
	}
	items := []domain.InvoiceItem{{
		ItemID:      uuid.NewString(),
		InvoiceID:   invoice.InvoiceID,
		Description: "Consulting",
		Quantity:    decimal.NewFromInt(5),
		Price:       decimal.NewFromInt(100),
		TaxRate:     decimal.NewFromInt(20),
		Total:       decimal.NewFromInt(500),
	}}
	suite.mockQuoteService.On("ConvertToInvoice", mock.Anything, quoteID, userID).
		Return(invoice, items, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/quotes/"+quoteID+"/convert", userID, nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INV007", resp.InvoiceNumber)
	suite.Require().NotNil(resp.QuoteID)
	suite.Equal(quoteID, *resp.QuoteID)
	suite.Len(resp.Items, 1)
	suite.mockQuoteService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestConvertQuote_AlreadyConverted() {
	userID := uuid.NewString()
	quoteID := uuid.NewString()
	suite.mockQuoteService.On("ConvertToInvoice", mock.Anything, quoteID, userID).
		Return(nil, nil, fmt.Errorf("quote DEV002 has already been converted: %w", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/quotes/"+quoteID+"/convert", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockQuoteService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestClientHandler(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
