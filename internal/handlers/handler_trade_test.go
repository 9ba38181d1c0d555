package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/core/domain"
	portssvc "github.com/openvtt/shopledger/internal/core/ports/services"
	"github.com/openvtt/shopledger/internal/dto"
	"github.com/openvtt/shopledger/internal/handlers"
)

// --- Test Suite ---
type TradeHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockTradeService *MockTradeService
}

func (suite *TradeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockTradeService = new(MockTradeService)

	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Ledger:  new(MockLedgerService),
		Pricing: new(MockPricingService),
		Trade:   suite.mockTradeService,
	})
}

func (suite *TradeHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TradeHandlerTestSuite) TestPurchase_Success() {
	req := dto.PurchaseRequest{
		CustomerID:         "cust-1",
		ListedCost:         2,
		ListedDenomination: domain.Gold,
		Category:           domain.CategoryOrdinary,
		Quantity:           1,
	}
	expected := &dto.TradeResult{
		TransactionID:     uuid.NewString(),
		AmountInBaseUnits: 200,
		AmountBreakdown:   map[domain.Denomination]int64{domain.Gold: 2},
	}

	suite.mockTradeService.On("Purchase", mock.Anything, req).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/trades/purchase", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TradeResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal(int64(200), resp.AmountInBaseUnits)
	suite.mockTradeService.AssertExpectations(suite.T())
}

// The denom binding tag rejects symbols outside the denomination table before
// the service is reached.
func (suite *TradeHandlerTestSuite) TestPurchase_UnknownDenominationFailsBinding() {
	w := suite.postJSON("/api/v1/trades/purchase", gin.H{
		"customerID":         "cust-1",
		"listedCost":         2,
		"listedDenomination": "zz",
		"quantity":           1,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTradeService.AssertNotCalled(suite.T(), "Purchase")
}

func (suite *TradeHandlerTestSuite) TestPurchase_MissingQuantityFailsBinding() {
	w := suite.postJSON("/api/v1/trades/purchase", gin.H{
		"customerID":         "cust-1",
		"listedCost":         2,
		"listedDenomination": "gp",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTradeService.AssertNotCalled(suite.T(), "Purchase")
}

func (suite *TradeHandlerTestSuite) TestPurchase_InsufficientFunds() {
	suite.mockTradeService.On("Purchase", mock.Anything, mock.AnythingOfType("dto.PurchaseRequest")).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	w := suite.postJSON("/api/v1/trades/purchase", dto.PurchaseRequest{
		CustomerID:         "cust-1",
		ListedCost:         100,
		ListedDenomination: domain.Platinum,
		Quantity:           1,
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockTradeService.AssertExpectations(suite.T())
}

func (suite *TradeHandlerTestSuite) TestSell_Success() {
	req := dto.SellRequest{
		CustomerID:         "cust-1",
		ListedCost:         1,
		ListedDenomination: domain.Gold,
		Category:           domain.CategoryMagic,
		Quantity:           1,
	}
	expected := &dto.TradeResult{
		TransactionID:     uuid.NewString(),
		AmountInBaseUnits: -50,
		AmountBreakdown:   map[domain.Denomination]int64{domain.Electrum: 1},
	}

	suite.mockTradeService.On("Sell", mock.Anything, req).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/trades/sell", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TradeResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(-50), resp.AmountInBaseUnits)
	suite.mockTradeService.AssertExpectations(suite.T())
}

func (suite *TradeHandlerTestSuite) TestSell_NotBuyingRejected() {
	suite.mockTradeService.On("Sell", mock.Anything, mock.AnythingOfType("dto.SellRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.postJSON("/api/v1/trades/sell", dto.SellRequest{
		CustomerID:         "cust-1",
		ListedCost:         1,
		ListedDenomination: domain.Gold,
		Quantity:           1,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTradeService.AssertExpectations(suite.T())
}

func (suite *TradeHandlerTestSuite) TestRepair_Success() {
	req := dto.RepairRequest{
		CustomerID:   "cust-1",
		Material:     "metal",
		DamagePoints: 2,
	}
	expected := &dto.TradeResult{
		TransactionID:     uuid.NewString(),
		AmountInBaseUnits: 150,
		AmountBreakdown:   map[domain.Denomination]int64{domain.Gold: 1, domain.Electrum: 1},
	}

	suite.mockTradeService.On("Repair", mock.Anything, req).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/trades/repair", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTradeService.AssertExpectations(suite.T())
}

func (suite *TradeHandlerTestSuite) TestUseService_Success() {
	req := dto.UseServiceRequest{
		CustomerID:      "cust-1",
		CostInBaseUnits: 25,
		ServiceName:     "stabling",
	}
	expected := &dto.TradeResult{
		TransactionID:     uuid.NewString(),
		AmountInBaseUnits: 25,
		AmountBreakdown:   map[domain.Denomination]int64{domain.Silver: 2, domain.Copper: 5},
	}

	suite.mockTradeService.On("UseService", mock.Anything, req).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/trades/service", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTradeService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTradeHandler(t *testing.T) {
	suite.Run(t, new(TradeHandlerTestSuite))
}
