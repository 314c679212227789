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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type QuoteServiceTestSuite struct {
	suite.Suite
	mockQuoteRepo  *MockQuoteRepository
	mockClientRepo *MockClientRepository
	mockActivity   *MockActivitySvc
	service        portssvc.QuoteSvcFacade

	userID string
	client *domain.Client
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockQuoteRepo = new(MockQuoteRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockActivity = new(MockActivitySvc)
	suite.service = services.NewQuoteService(suite.mockQuoteRepo, suite.mockClientRepo, suite.mockActivity)

	suite.userID = uuid.NewString()
	suite.client = &domain.Client{
		ClientID: uuid.NewString(),
		UserID:   suite.userID,
		Name:     "Globex",
		Email:    "accounts@globex.test",
		Status:   domain.ClientActive,
	}
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_ComputesTotals() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{
		ClientID: suite.client.ClientID,
		Items: []dto.DocumentItemRequest{
			{Description: "Audit", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)},
			{Description: "Follow-up", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(50)},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID, suite.userID).Return(suite.client, nil).Once()
	suite.mockQuoteRepo.On("CreateQuoteWithItems", ctx, mock.AnythingOfType("*domain.Quote"), mock.AnythingOfType("[]domain.QuoteItem")).
		Run(func(args mock.Arguments) {
			q := args.Get(1).(*domain.Quote)
			q.QuoteNumber = "DEV001"
		}).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityQuote, "Quote DEV001 created for Globex", mock.Anything).Once()

	quote, items, err := suite.service.CreateQuote(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("DEV001", quote.QuoteNumber)
	suite.Equal(domain.QuoteDraft, quote.Status)
	suite.True(quote.Amount.Equal(decimal.NewFromInt(250)), "amount was %s", quote.Amount)
	suite.True(quote.TaxAmount.Equal(decimal.NewFromInt(50)), "tax was %s", quote.TaxAmount)
	suite.Len(items, 2)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_CopiesTotalsAndItems() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	productID := uuid.NewString()
	quote := &domain.Quote{
		QuoteID:     quoteID,
		QuoteNumber: "DEV007",
		UserID:      suite.userID,
		ClientID:    &suite.client.ClientID,
		Amount:      decimal.NewFromInt(225),
		TaxAmount:   decimal.NewFromInt(45),
		Discount:    decimal.NewFromInt(10),
		Status:      domain.QuoteSent,
		Description: "Spring campaign",
	}
	quoteItems := []domain.QuoteItem{
		{
			ItemID:      uuid.NewString(),
			QuoteID:     quoteID,
			ProductID:   &productID,
			Description: "Design work",
			Quantity:    decimal.NewFromInt(2),
			Price:       decimal.NewFromInt(100),
			TaxRate:     decimal.NewFromInt(20),
			Total:       decimal.NewFromInt(200),
		},
		{
			ItemID:      uuid.NewString(),
			QuoteID:     quoteID,
			Description: "Hosting",
			Quantity:    decimal.NewFromInt(1),
			Price:       decimal.NewFromInt(50),
			TaxRate:     decimal.NewFromInt(20),
			Total:       decimal.NewFromInt(50),
		},
	}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID, suite.userID).Return(quote, nil).Once()
	suite.mockQuoteRepo.On("FindItemsByQuoteID", ctx, quoteID).Return(quoteItems, nil).Once()
	suite.mockQuoteRepo.On("ConvertQuote", ctx,
		mock.MatchedBy(func(q domain.Quote) bool { return q.QuoteID == quoteID && q.Status == domain.QuoteAccepted }),
		mock.AnythingOfType("*domain.Invoice"),
		mock.AnythingOfType("[]domain.InvoiceItem"),
	).Run(func(args mock.Arguments) {
		inv := args.Get(2).(*domain.Invoice)
		inv.InvoiceNumber = "INV010"
	}).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityInvoice, "Quote DEV007 converted to invoice INV010", mock.Anything).Once()

	invoice, items, err := suite.service.ConvertToInvoice(ctx, quoteID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	// Totals come from the quote, not from a recomputation.
	suite.True(invoice.Amount.Equal(quote.Amount))
	suite.True(invoice.TaxAmount.Equal(quote.TaxAmount))
	suite.True(invoice.Discount.Equal(quote.Discount))
	suite.Equal(domain.InvoiceDraft, invoice.Status)
	suite.Require().NotNil(invoice.QuoteID)
	suite.Equal(quoteID, *invoice.QuoteID)
	suite.Equal(suite.client.ClientID, *invoice.ClientID)

	suite.Require().Len(items, 2)
	suite.Equal("Design work", items[0].Description)
	suite.Equal(&productID, items[0].ProductID)
	suite.True(items[0].Total.Equal(decimal.NewFromInt(200)))
	// Copied items get fresh identities on the invoice.
	suite.NotEqual(quoteItems[0].ItemID, items[0].ItemID)
	suite.Equal(invoice.InvoiceID, items[0].InvoiceID)

	suite.mockQuoteRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_AlreadyAccepted() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	quote := &domain.Quote{
		QuoteID:     quoteID,
		QuoteNumber: "DEV008",
		UserID:      suite.userID,
		Status:      domain.QuoteAccepted,
	}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID, suite.userID).Return(quote, nil).Once()

	invoice, items, err := suite.service.ConvertToInvoice(ctx, quoteID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "ConvertQuote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_QuoteNotFound() {
	ctx := context.Background()
	quoteID := uuid.NewString()

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, items, err := suite.service.ConvertToInvoice(ctx, quoteID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *QuoteServiceTestSuite) TestUpdateQuoteStatus_Success() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := &domain.Quote{QuoteID: quoteID, UserID: suite.userID, QuoteNumber: "DEV009", Status: domain.QuoteDraft}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID, suite.userID).Return(existing, nil).Once()
	suite.mockQuoteRepo.On("UpdateQuoteStatus", ctx, quoteID, suite.userID, domain.QuoteSent, mock.AnythingOfType("time.Time"), suite.userID).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityQuote, "Quote DEV009 marked Sent", mock.Anything).Once()

	quote, err := suite.service.UpdateQuoteStatus(ctx, quoteID, suite.userID, domain.QuoteSent)

	suite.Require().NoError(err)
	suite.Equal(domain.QuoteSent, quote.Status)
}

func (suite *QuoteServiceTestSuite) TestUpdateQuoteStatus_UnknownStatus() {
	ctx := context.Background()

	quote, err := suite.service.UpdateQuoteStatus(ctx, uuid.NewString(), suite.userID, domain.QuoteStatus("Paid"))

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreateQuoteRequest{ClientID: clientID}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	quote, items, err := suite.service.CreateQuote(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestQuoteService(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
