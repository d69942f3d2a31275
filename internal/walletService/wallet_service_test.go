package wallet

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"storefront/internal/clients/withdrawal"
	"storefront/internal/clock"
	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var start = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decEq matches decimals by value rather than by representation
type decEq struct{ want decimal.Decimal }

func (m decEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decEq) String() string { return "is equal to " + m.want.String() }

type fixture struct {
	store   *repository.GormRepo
	db      *gorm.DB
	gateway *MockGateway
	clock   *clock.Fake
	service *WalletService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db, err := database.Connect(database.Options{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateID()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))
	store := repository.NewGormRepo(db, repository.Options{MaxAttempts: 3})

	require.NoError(t, store.CreateUser(context.Background(), &models.User{ID: "alice", Username: "alice", Wallet: dec("100")}))

	ctrl := gomock.NewController(t)
	gateway := NewMockGateway(ctrl)
	clk := clock.NewFake(start)
	return fixture{
		store:   store,
		db:      db,
		gateway: gateway,
		clock:   clk,
		service: NewWalletService(store, gateway, 2, clk),
	}
}

func (f fixture) depositClaim(t *testing.T, txID, purpose string, amount uint64) {
	t.Helper()
	require.NoError(t, f.store.CreatePaymentClaim(context.Background(), &models.PaymentClaim{
		TxID:           txID,
		UserID:         "alice",
		Purpose:        purpose,
		Note:           "order_" + txID,
		Recipient:      "SHOP",
		AssetID:        1,
		Amount:         amount,
		ConfirmedRound: 3,
		ExpiresAt:      f.clock.Now().Add(15 * time.Minute),
		CreatedAt:      f.clock.Now(),
	}))
}

func (f fixture) withdrawals(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&models.Withdrawal{}).Count(&count).Error)
	return count
}

// Tests GetWallet and UpdateAddress
func TestWalletService_Address(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w, err := f.service.GetWallet(ctx, "alice")
	require.NoError(t, err)
	require.True(t, w.Balance.Equal(dec("100")))
	require.Empty(t, w.Address)

	w, err = f.service.UpdateAddress(ctx, "alice", "  ALGOADDR  ")
	require.NoError(t, err)
	require.Equal(t, "ALGOADDR", w.Address)

	_, err = f.service.UpdateAddress(ctx, "alice", "   ")
	require.ErrorIs(t, err, shoperrors.ErrInvalidRequest)

	_, err = f.service.UpdateAddress(ctx, "ghost", "ALGOADDR")
	require.ErrorIs(t, err, shoperrors.ErrUserNotFound)

	_, err = f.service.GetWallet(ctx, "ghost")
	require.ErrorIs(t, err, shoperrors.ErrUserNotFound)
}

// Tests DepositFromClaim
func TestWalletService_DepositFromClaim(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		setup           func(t *testing.T, f fixture)
		txID            string
		expectedError   error
		expectedBalance string
	}{
		{
			name:            "credits_minor_units",
			setup:           func(t *testing.T, f fixture) { f.depositClaim(t, "TX-1", models.PurposeDeposit, 1234) },
			txID:            "TX-1",
			expectedBalance: "112.34",
		},
		{
			name:            "unknown_tx",
			setup:           func(t *testing.T, f fixture) {},
			txID:            "TX-1",
			expectedError:   shoperrors.ErrPaymentNotConfirmed,
			expectedBalance: "100",
		},
		{
			name:            "cart_claim_cannot_fund_wallet",
			setup:           func(t *testing.T, f fixture) { f.depositClaim(t, "TX-1", models.PurposeCart, 1234) },
			txID:            "TX-1",
			expectedError:   shoperrors.ErrPaymentNotConfirmed,
			expectedBalance: "100",
		},
		{
			name: "expired_claim",
			setup: func(t *testing.T, f fixture) {
				f.depositClaim(t, "TX-1", models.PurposeDeposit, 1234)
				f.clock.Advance(time.Hour)
			},
			txID:            "TX-1",
			expectedError:   shoperrors.ErrPaymentNotConfirmed,
			expectedBalance: "100",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setup(t, f)

			w, credited, err := f.service.DepositFromClaim(ctx, "alice", tc.txID)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				require.True(t, credited.Equal(dec("12.34")))
				require.True(t, w.Balance.Equal(dec(tc.expectedBalance)))
			}

			current, err := f.service.GetWallet(ctx, "alice")
			require.NoError(t, err)
			require.True(t, current.Balance.Equal(dec(tc.expectedBalance)))
		})
	}
}

// Tests that a deposit claim credits the wallet only once
func TestWalletService_DepositOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.depositClaim(t, "TX-1", models.PurposeDeposit, 500)

	_, _, err := f.service.DepositFromClaim(ctx, "alice", "TX-1")
	require.NoError(t, err)
	_, _, err = f.service.DepositFromClaim(ctx, "alice", "TX-1")
	require.ErrorIs(t, err, shoperrors.ErrPaymentAlreadyUsed)

	w, err := f.service.GetWallet(ctx, "alice")
	require.NoError(t, err)
	require.True(t, w.Balance.Equal(dec("105")))
}

// Tests Withdraw
func TestWalletService_Withdraw(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		address         string
		amount          string
		mockSetup       func(g *MockGateway)
		expectedError   error
		expectedBalance string
		expectedRecords int64
	}{
		{
			name:    "success",
			address: "ALGOADDR",
			amount:  "40",
			mockSetup: func(g *MockGateway) {
				g.EXPECT().Withdraw(gomock.Any(), "ALGOADDR", decEq{dec("40")}).
					Return(withdrawal.Receipt{TransactionID: "CHAIN-1", ConfirmedRound: 9}, nil)
			},
			expectedBalance: "60",
			expectedRecords: 1,
		},
		{
			name:    "gateway_failure_leaves_balance",
			address: "ALGOADDR",
			amount:  "40",
			mockSetup: func(g *MockGateway) {
				g.EXPECT().Withdraw(gomock.Any(), "ALGOADDR", gomock.Any()).
					Return(withdrawal.Receipt{}, errors.New("signer offline"))
			},
			expectedError:   shoperrors.ErrWithdrawalFailed,
			expectedBalance: "100",
		},
		{
			name:            "no_payout_address",
			amount:          "40",
			mockSetup:       func(g *MockGateway) {},
			expectedError:   shoperrors.ErrNoPayoutAddress,
			expectedBalance: "100",
		},
		{
			name:            "insufficient_funds",
			address:         "ALGOADDR",
			amount:          "100.01",
			mockSetup:       func(g *MockGateway) {},
			expectedError:   shoperrors.ErrInsufficientFunds,
			expectedBalance: "100",
		},
		{
			name:            "invalid_amount",
			address:         "ALGOADDR",
			amount:          "0.001",
			mockSetup:       func(g *MockGateway) {},
			expectedError:   shoperrors.ErrInvalidAmount,
			expectedBalance: "100",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.address != "" {
				require.NoError(t, f.store.SetAddress(ctx, "alice", tc.address))
			}
			tc.mockSetup(f.gateway)

			record, err := f.service.Withdraw(ctx, "alice", dec(tc.amount))
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				require.Equal(t, "CHAIN-1", record.ExternalTxID)
				require.Equal(t, uint64(9), record.ConfirmedRound)
				require.Equal(t, tc.address, record.Address)
			}

			w, err := f.service.GetWallet(ctx, "alice")
			require.NoError(t, err)
			require.True(t, w.Balance.Equal(dec(tc.expectedBalance)))
			require.Equal(t, tc.expectedRecords, f.withdrawals(t))
		})
	}
}

// Tests that a retried transaction does not call the gateway again
func TestWalletService_WithdrawRetryPaysOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockShopDB(ctrl)
	gateway := NewMockGateway(ctrl)
	service := NewWalletService(mockRepo, gateway, 2, clock.NewFake(start))

	address := "ALGOADDR"
	attempts := 0
	mockRepo.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(q repository.Queries) error) error {
			var err error
			for attempts = 1; attempts <= 2; attempts++ {
				if err = fn(mockRepo); err == nil {
					return nil
				}
			}
			return err
		})
	mockRepo.EXPECT().GetUser(gomock.Any(), "alice").Return(models.User{ID: "alice", Address: &address, Wallet: dec("50")}, nil).Times(2)
	mockRepo.EXPECT().AdjustBalance(gomock.Any(), "alice", decEq{dec("-10")}).Return(dec("40"), nil).Times(2)
	gateway.EXPECT().Withdraw(gomock.Any(), address, decEq{dec("10")}).Return(withdrawal.Receipt{TransactionID: "CHAIN-2"}, nil).Times(1)
	gomock.InOrder(
		mockRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).Return(errors.New("serialization failure")),
		mockRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).Return(nil),
	)

	record, err := service.Withdraw(context.Background(), "alice", dec("10"))
	require.NoError(t, err)
	require.Equal(t, "CHAIN-2", record.ExternalTxID)
	require.Equal(t, 2, attempts)
}
