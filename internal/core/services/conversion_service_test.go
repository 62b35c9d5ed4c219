package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/curex-labs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/curex-labs/currency_exchange_app/internal/core/ports/services"
	"github.com/curex-labs/currency_exchange_app/internal/core/services"
	"github.com/curex-labs/currency_exchange_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock Rate Facade ---
type MockRateSvc struct {
	mock.Mock
}

func (m *MockRateSvc) CurrentRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	args := m.Called(ctx, base, target)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateSvc) SupportedCurrencies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRateSvc) MonthlySeries(ctx context.Context, base, target string) (domain.RateSeries, error) {
	args := m.Called(ctx, base, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateSeries), args.Error(1)
}

func (m *MockRateSvc) Convert(ctx context.Context, base, target string, amount any) (*domain.Conversion, error) {
	args := m.Called(ctx, base, target, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockRateSvc) Trend(series domain.RateSeries) domain.Trend {
	args := m.Called(series)
	return args.Get(0).(domain.Trend)
}

// --- Mock Record Repository ---
type MockConversionRecordRepository struct {
	mock.Mock
}

func (m *MockConversionRecordRepository) SaveRecord(ctx context.Context, record models.ConversionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockConversionRecordRepository) FindRecordsByUserID(ctx context.Context, userID string) ([]models.ConversionRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ConversionRecord), args.Error(1)
}

func (m *MockConversionRecordRepository) DeleteRecord(ctx context.Context, recordID, userID string) error {
	args := m.Called(ctx, recordID, userID)
	return args.Error(0)
}

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockRates *MockRateSvc
	mockRepo  *MockConversionRecordRepository
	service   portssvc.ConversionRecordSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockRates = new(MockRateSvc)
	suite.mockRepo = new(MockConversionRecordRepository)
	suite.service = services.NewConversionService(suite.mockRates, suite.mockRepo)
}

func sampleConversion() *domain.Conversion {
	return &domain.Conversion{
		Base:   "EUR",
		Target: "USD",
		Amount: decimal.NewFromInt(100),
		Rate:   decimal.RequireFromString("1.0842"),
		Result: decimal.RequireFromString("108.42"),
	}
}

// --- ConvertAndRecord ---

func (suite *ConversionServiceTestSuite) TestConvertAndRecord_AuthenticatedPersists() {
	ctx := context.Background()
	amount := json.Number("100")

	suite.mockRates.On("Convert", ctx, "EUR", "USD", amount).Return(sampleConversion(), nil).Once()
	suite.mockRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r models.ConversionRecord) bool {
		return r.UserID == "u-1" &&
			r.RecordID != "" &&
			r.BaseCurrency == "EUR" &&
			r.TargetCurrency == "USD" &&
			r.Amount == "100" &&
			r.Rate == "1.0842" &&
			r.Result == "108.42"
	})).Return(nil).Once()

	record, err := suite.service.ConvertAndRecord(ctx, "u-1", "EUR", "USD", amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal("108.42", record.Result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvertAndRecord_AnonymousNotPersisted() {
	ctx := context.Background()
	amount := json.Number("100")

	suite.mockRates.On("Convert", ctx, "EUR", "USD", amount).Return(sampleConversion(), nil).Once()

	record, err := suite.service.ConvertAndRecord(ctx, "", "EUR", "USD", amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal("108.42", record.Result)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvertAndRecord_ConversionError() {
	ctx := context.Background()
	amount := json.Number("100")
	expectedErr := assert.AnError

	suite.mockRates.On("Convert", ctx, "EUR", "XXX", amount).Return(nil, expectedErr).Once()

	record, err := suite.service.ConvertAndRecord(ctx, "u-1", "EUR", "XXX", amount)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvertAndRecord_SaveError() {
	ctx := context.Background()
	amount := json.Number("100")
	expectedErr := assert.AnError

	suite.mockRates.On("Convert", ctx, "EUR", "USD", amount).Return(sampleConversion(), nil).Once()
	suite.mockRepo.On("SaveRecord", ctx, mock.AnythingOfType("models.ConversionRecord")).Return(expectedErr).Once()

	record, err := suite.service.ConvertAndRecord(ctx, "u-1", "EUR", "USD", amount)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, expectedErr)
}

// --- ListRecords ---

func (suite *ConversionServiceTestSuite) TestListRecords_Success() {
	ctx := context.Background()
	records := []models.ConversionRecord{
		{RecordID: "r-2", UserID: "u-1"},
		{RecordID: "r-1", UserID: "u-1"},
	}

	suite.mockRepo.On("FindRecordsByUserID", ctx, "u-1").Return(records, nil).Once()

	got, err := suite.service.ListRecords(ctx, "u-1")

	suite.Require().NoError(err)
	suite.Equal(records, got)
}

func (suite *ConversionServiceTestSuite) TestListRecords_EmptyHistoryIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("FindRecordsByUserID", ctx, "u-1").Return(nil, nil).Once()

	got, err := suite.service.ListRecords(ctx, "u-1")

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

// --- DeleteRecord ---

func (suite *ConversionServiceTestSuite) TestDeleteRecord_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteRecord", ctx, "r-1", "u-1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteRecord(ctx, "r-1", "u-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestDeleteRecord_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteRecord", ctx, "r-1", "u-1").Return(expectedErr).Once()

	err := suite.service.DeleteRecord(ctx, "r-1", "u-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestConversionService(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
