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

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockProductRepository
	mockActivity *MockActivitySvc
	service      portssvc.ProductSvcFacade

	userID string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.mockActivity = new(MockActivitySvc)
	suite.service = services.NewProductService(suite.mockRepo, suite.mockActivity)
	suite.userID = uuid.NewString()
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DefaultsUnit() {
	ctx := context.Background()
	req := dto.SaveProductRequest{Name: "Consulting hour", Price: decimal.NewFromInt(90), IsService: true}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Unit == "unit" && p.IsService && p.UserID == suite.userID
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityProduct, "Product Consulting hour created", mock.Anything).Once()

	product, err := suite.service.CreateProduct(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("unit", product.Unit)
	suite.NotEmpty(product.ProductID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_KeepsExplicitUnit() {
	ctx := context.Background()
	req := dto.SaveProductRequest{Name: "Cable", Price: decimal.NewFromInt(5), Unit: "meter"}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Unit == "meter"
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityProduct, mock.AnythingOfType("string"), mock.Anything).Once()

	product, err := suite.service.CreateProduct(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("meter", product.Unit)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePriceRejected() {
	ctx := context.Background()
	req := dto.SaveProductRequest{Name: "Broken", Price: decimal.NewFromInt(-1)}

	_, err := suite.service.CreateProduct(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct")
}

func (suite *ProductServiceTestSuite) TestGetProductByID_NotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockRepo.On("FindProductByID", ctx, productID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetProductByID(ctx, productID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_RecordsActivity() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := &domain.Product{
		ProductID: productID,
		UserID:    suite.userID,
		Name:      "Cable",
		Price:     decimal.NewFromInt(5),
		Unit:      "meter",
	}

	suite.mockRepo.On("FindProductByID", ctx, productID, suite.userID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteProduct", ctx, productID, suite.userID).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, suite.userID, domain.ActivityProduct, "Product Cable deleted", mock.Anything).Once()

	err := suite.service.DeleteProduct(ctx, productID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
