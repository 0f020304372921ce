package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence/postgres"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence/testhelpers"
)

type RepositoriesTestSuite struct {
	suite.Suite
	testDB        *testhelpers.TestDatabase
	payments      *postgres.PaymentRepository
	transactions  *postgres.TransactionRepository
	refunds       *postgres.RefundRepository
	users         *postgres.UserRepository
	notifications *postgres.NotificationRepository
}

func TestRepositoriesSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed repository tests in short mode")
	}
	suite.Run(t, new(RepositoriesTestSuite))
}

func (suite *RepositoriesTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.payments = postgres.NewPaymentRepository(suite.testDB.DB.Pool)
	suite.transactions = postgres.NewTransactionRepository(suite.testDB.DB.Pool)
	suite.refunds = postgres.NewRefundRepository(suite.testDB.DB.Pool)
	suite.users = postgres.NewUserRepository(suite.testDB.DB.Pool)
	suite.notifications = postgres.NewNotificationRepository(suite.testDB.DB.Pool)
}

func (suite *RepositoriesTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *RepositoriesTestSuite) TearDownTest() {
	suite.testDB.CleanTables(suite.T())
}

func (suite *RepositoriesTestSuite) Test_Payment_RoundTrip() {
	ctx := context.Background()

	payment := &domain.Payment{
		Amount:        decimal.RequireFromString("5000.00"),
		Status:        domain.StatusAprobado,
		PaidAt:        time.Now().UTC().Truncate(time.Millisecond),
		OrderID:       uuid.New(),
		UserID:        uuid.New(),
		TransactionID: uuid.New(),
	}

	saved, err := suite.payments.Save(ctx, payment)
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, saved.ID)

	found, err := suite.payments.FindByID(ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Equal(saved.ID, found.ID)
	suite.True(found.Amount.Equal(payment.Amount))
	suite.Equal(payment.Status, found.Status)
	suite.Equal(payment.OrderID, found.OrderID)
	suite.Equal(payment.UserID, found.UserID)
	suite.Equal(payment.TransactionID, found.TransactionID)
	suite.WithinDuration(payment.PaidAt, found.PaidAt, time.Second)
}

func (suite *RepositoriesTestSuite) Test_Payment_SaveIsUpsert() {
	ctx := context.Background()

	saved, err := suite.payments.Save(ctx, &domain.Payment{
		Amount:        decimal.NewFromInt(100),
		Status:        domain.StatusProcesando,
		PaidAt:        time.Now(),
		OrderID:       uuid.New(),
		UserID:        uuid.New(),
		TransactionID: uuid.New(),
	})
	suite.Require().NoError(err)

	saved.Status = domain.StatusRechazado
	_, err = suite.payments.Save(ctx, saved)
	suite.Require().NoError(err)

	found, err := suite.payments.FindByID(ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusRechazado, found.Status)

	all, err := suite.payments.FindAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *RepositoriesTestSuite) Test_Payment_FindByID_Missing() {
	_, err := suite.payments.FindByID(context.Background(), uuid.New())

	suite.Require().Error(err)
	suite.True(domain.IsNotFound(err))
}

func (suite *RepositoriesTestSuite) Test_Payment_FindAll_EmptyIsNonNil() {
	all, err := suite.payments.FindAll(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(all)
	suite.Empty(all)
}

func (suite *RepositoriesTestSuite) Test_Payment_DeleteByID_UnknownIsNoop() {
	suite.NoError(suite.payments.DeleteByID(context.Background(), uuid.New()))
}

func (suite *RepositoriesTestSuite) Test_Transaction_RoundTrip_NullableFields() {
	ctx := context.Background()

	// shape produced by the gateway status query: no amount, no back-reference
	saved, err := suite.transactions.Save(ctx, &domain.Transaction{
		Status:       domain.StatusAprobado,
		Provider:     domain.ProviderWebpayPlus,
		TransactedAt: time.Now(),
	})
	suite.Require().NoError(err)

	found, err := suite.transactions.FindByID(ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Nil(found.PaymentID)
	suite.Nil(found.ErrorDetail)
	suite.Equal(domain.ProviderWebpayPlus, found.Provider)
}

func (suite *RepositoriesTestSuite) Test_Transaction_RoundTrip_FullRecord() {
	ctx := context.Background()

	paymentID := uuid.New()
	detail := "tarjeta expirada"
	saved, err := suite.transactions.Save(ctx, &domain.Transaction{
		PaymentID:    &paymentID,
		Status:       domain.StatusRechazado,
		Provider:     domain.ProviderWebpayPlus,
		ErrorDetail:  &detail,
		Amount:       decimal.RequireFromString("250.50"),
		TransactedAt: time.Now(),
	})
	suite.Require().NoError(err)

	found, err := suite.transactions.FindByID(ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found.PaymentID)
	suite.Equal(paymentID, *found.PaymentID)
	suite.Require().NotNil(found.ErrorDetail)
	suite.Equal(detail, *found.ErrorDetail)
	suite.True(found.Amount.Equal(decimal.RequireFromString("250.50")))
}

func (suite *RepositoriesTestSuite) Test_Refund_RoundTrip() {
	ctx := context.Background()

	reason := "doble cobro"
	saved, err := suite.refunds.Save(ctx, &domain.Refund{
		PaymentID:   uuid.New(),
		Amount:      decimal.RequireFromString("1500.00"),
		Status:      domain.RefundStatusPendiente,
		RequestedAt: time.Now(),
		Reason:      &reason,
	})
	suite.Require().NoError(err)

	found, err := suite.refunds.FindByID(ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Equal(saved.PaymentID, found.PaymentID)
	suite.Equal(domain.RefundStatusPendiente, found.Status)
	suite.Require().NotNil(found.Reason)
	suite.Equal(reason, *found.Reason)
}

func (suite *RepositoriesTestSuite) Test_User_RoundTrip_And_Delete() {
	ctx := context.Background()

	saved, err := suite.users.Save(ctx, &domain.User{Name: "Carla Rojas", Email: "carla@example.com"})
	suite.Require().NoError(err)

	found, err := suite.users.FindByID(ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Equal("carla@example.com", found.Email)

	suite.Require().NoError(suite.users.DeleteByID(ctx, saved.ID))

	_, err = suite.users.FindByID(ctx, saved.ID)
	suite.True(domain.IsNotFound(err))
}

func (suite *RepositoriesTestSuite) Test_User_DuplicateEmail() {
	ctx := context.Background()

	_, err := suite.users.Save(ctx, &domain.User{Name: "Carla Rojas", Email: "carla@example.com"})
	suite.Require().NoError(err)

	_, err = suite.users.Save(ctx, &domain.User{Name: "Otra Carla", Email: "carla@example.com"})
	suite.Require().Error(err)

	domainErr, ok := domain.IsDomainError(err)
	suite.Require().True(ok)
	suite.Equal(domain.ErrCodeValidation, domainErr.Code)
}

func (suite *RepositoriesTestSuite) Test_Notification_RoundTrip() {
	ctx := context.Background()

	saved, err := suite.notifications.Save(ctx, &domain.Notification{
		Type:            "PAGO_APROBADO",
		Message:         "Su pago fue aprobado",
		SentAt:          time.Now(),
		RecipientUserID: uuid.New(),
	})
	suite.Require().NoError(err)

	found, err := suite.notifications.FindByID(ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Equal("PAGO_APROBADO", found.Type)
	suite.Equal(saved.RecipientUserID, found.RecipientUserID)
}
