package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/core/services"
	"github.com/invoiceflow/backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockClientRepo  *MockClientRepository
	mockActivity    *MockActivitySvc
	service         portssvc.InvoiceSvcFacade

	userID string
	client *domain.Client
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockActivity = new(MockActivitySvc)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockClientRepo, suite.mockActivity)

	suite.userID = uuid.NewString()
	suite.client = &domain.Client{
		ClientID: uuid.NewString(),
		UserID:   suite.userID,
		Name:     "Acme Corp",
		Email:    "billing@acme.test",
		Status:   domain.ClientActive,
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ComputesTotals() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID: suite.client.ClientID,
		Items: []dto.DocumentItemRequest{
			{Description: "Design work", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(50)},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID, suite.userID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("CreateInvoiceWithItems", ctx, mock.AnythingOfType("*domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).
		Run(func(args mock.Arguments) {
			inv := args.Get(1).(*domain.Invoice)
			inv.InvoiceNumber = "INV001"
		}).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityInvoice, "Invoice INV001 created for Acme Corp", mock.Anything).Once()

	invoice, items, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal("INV001", invoice.InvoiceNumber)
	suite.Equal(domain.InvoiceDraft, invoice.Status)
	suite.True(invoice.Amount.Equal(decimal.NewFromInt(250)), "amount was %s", invoice.Amount)
	suite.True(invoice.TaxAmount.Equal(decimal.NewFromInt(50)), "tax was %s", invoice.TaxAmount)
	suite.Len(items, 2)
	// Default tax rate applies when none was submitted.
	suite.True(items[0].TaxRate.Equal(decimal.NewFromInt(20)))
	suite.True(items[0].Total.Equal(decimal.NewFromInt(200)))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DiscountReducesAmountAndTax() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID: suite.client.ClientID,
		Discount: decimal.NewFromInt(10),
		Items: []dto.DocumentItemRequest{
			{Description: "Design work", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(50)},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID, suite.userID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("CreateInvoiceWithItems", ctx, mock.AnythingOfType("*domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityInvoice, mock.AnythingOfType("string"), mock.Anything).Once()

	invoice, _, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(invoice.Amount.Equal(decimal.NewFromInt(225)), "amount was %s", invoice.Amount)
	suite.True(invoice.TaxAmount.Equal(decimal.NewFromInt(45)), "tax was %s", invoice.TaxAmount)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreateInvoiceRequest{ClientID: clientID}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, items, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "CreateInvoiceWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NegativeQuantityRejected() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID: suite.client.ClientID,
		Items: []dto.DocumentItemRequest{
			{Description: "Refund line", Quantity: decimal.NewFromInt(-1), Price: decimal.NewFromInt(50)},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID, suite.userID).Return(suite.client, nil).Once()

	_, _, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "CreateInvoiceWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DiscountOutOfRange() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID: suite.client.ClientID,
		Discount: decimal.NewFromInt(150),
		Items: []dto.DocumentItemRequest{
			{Description: "Design work", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID, suite.userID).Return(suite.client, nil).Once()

	_, _, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ZeroItems() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{ClientID: suite.client.ClientID}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID, suite.userID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("CreateInvoiceWithItems", ctx, mock.AnythingOfType("*domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityInvoice, mock.AnythingOfType("string"), mock.Anything).Once()

	invoice, items, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(invoice.Amount.IsZero())
	suite.True(invoice.TaxAmount.IsZero())
	suite.Empty(items)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_LoadsItems() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	expected := &domain.Invoice{InvoiceID: invoiceID, UserID: suite.userID, InvoiceNumber: "INV002"}
	expectedItems := []domain.InvoiceItem{{ItemID: uuid.NewString(), InvoiceID: invoiceID}}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID, suite.userID).Return(expected, nil).Once()
	suite.mockInvoiceRepo.On("FindItemsByInvoiceID", ctx, invoiceID).Return(expectedItems, nil).Once()

	invoice, items, err := suite.service.GetInvoiceByID(ctx, invoiceID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(expected, invoice)
	suite.Equal(expectedItems, items)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, items, err := suite.service.GetInvoiceByID(ctx, invoiceID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{InvoiceID: invoiceID, UserID: suite.userID, InvoiceNumber: "INV003", Status: domain.InvoiceSent}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID, suite.userID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, invoiceID, suite.userID, domain.InvoicePaid, mock.AnythingOfType("time.Time"), suite.userID).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityInvoice, "Invoice INV003 marked Paid", mock.Anything).Once()

	invoice, err := suite.service.UpdateInvoiceStatus(ctx, invoiceID, suite.userID, domain.InvoicePaid)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, invoice.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_UnknownStatus() {
	ctx := context.Background()

	invoice, err := suite.service.UpdateInvoiceStatus(ctx, uuid.NewString(), suite.userID, domain.InvoiceStatus("Archived"))

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.userID).Return(nil, expectedErr).Once()

	invoices, err := suite.service.ListInvoices(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(invoices)
	suite.ErrorIs(err, expectedErr)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_AuditTimestampsSet() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID: suite.client.ClientID,
		Items: []dto.DocumentItemRequest{
			{Description: "Consulting", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(500)},
		},
	}

	before := time.Now().UTC()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID, suite.userID).Return(suite.client, nil).Once()
	suite.mockInvoiceRepo.On("CreateInvoiceWithItems", ctx, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.CreatedBy == suite.userID && !inv.CreatedAt.Before(before)
	}), mock.AnythingOfType("[]domain.InvoiceItem")).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityInvoice, mock.AnythingOfType("string"), mock.Anything).Once()

	_, _, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
