package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionValidate(t *testing.T) {
	end := NewDate(2024, 6, 15)
	earlyEnd := NewDate(2023, 1, 1)

	tests := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{
			name: "one-time ok",
			tx: Transaction{
				Amount:      decimal.NewFromInt(-45),
				Date:        NewDate(2024, 1, 10),
				Description: "groceries",
			},
		},
		{
			name: "recurring ok",
			tx: Transaction{
				Amount:      decimal.NewFromInt(2500),
				Date:        NewDate(2024, 1, 1),
				Description: "salary",
				IsRecurring: true,
				Frequency:   Monthly,
				EndDate:     &end,
			},
		},
		{
			name: "zero date",
			tx: Transaction{
				Amount:      decimal.NewFromInt(10),
				Description: "x",
			},
			wantErr: ErrZeroDate,
		},
		{
			name: "zero amount",
			tx: Transaction{
				Date:        NewDate(2024, 1, 1),
				Description: "x",
			},
			wantErr: ErrZeroAmount,
		},
		{
			name: "empty description",
			tx: Transaction{
				Amount: decimal.NewFromInt(10),
				Date:   NewDate(2024, 1, 1),
			},
			wantErr: ErrEmptyDescription,
		},
		{
			name: "recurring without frequency",
			tx: Transaction{
				Amount:      decimal.NewFromInt(10),
				Date:        NewDate(2024, 1, 1),
				Description: "x",
				IsRecurring: true,
			},
			wantErr: ErrInvalidFrequency,
		},
		{
			name: "end before anchor",
			tx: Transaction{
				Amount:      decimal.NewFromInt(10),
				Date:        NewDate(2024, 1, 1),
				Description: "x",
				IsRecurring: true,
				Frequency:   Weekly,
				EndDate:     &earlyEnd,
			},
			wantErr: ErrEndBeforeStart,
		},
		{
			name: "frequency on one-time",
			tx: Transaction{
				Amount:      decimal.NewFromInt(10),
				Date:        NewDate(2024, 1, 1),
				Description: "x",
				Frequency:   Daily,
			},
			wantErr: ErrUnexpectedRecurrent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWalletValidate(t *testing.T) {
	ok := Wallet{Name: "Main", Type: WalletCash, Balance: decimal.Zero, Currency: "USD"}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, Wallet{Type: WalletBank}.Validate(), ErrEmptyName)
	assert.Error(t, Wallet{Name: "x", Type: "piggybank"}.Validate())
}

func TestFrequencyIsValid(t *testing.T) {
	for _, f := range []Frequency{Daily, Weekly, Monthly, Yearly} {
		assert.True(t, f.IsValid(), string(f))
	}
	assert.False(t, Frequency("").IsValid())
	assert.False(t, Frequency("biweekly").IsValid())
}
