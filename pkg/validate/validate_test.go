package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWalletAddress(t *testing.T) {
	for i := 0; i < 50; i++ {
		addr, err := NewWalletAddress()
		require.NoError(t, err)
		assert.Len(t, addr, 12)
		assert.True(t, IsWalletAddress(addr), addr)
	}
}

func TestIsWalletAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "GC7992739875", true},
		{"wrong check digit", "GC7992739871", false},
		{"missing prefix", "7992739875", false},
		{"lowercase prefix", "gc7992739875", false},
		{"too short", "GC799273987", false},
		{"letters", "GC79927398AB", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWalletAddress(tt.input))
		})
	}
}

type sendRequest struct {
	To     string          `validate:"required,wallet"`
	Amount decimal.Decimal `validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sendRequest{To: "GC7992739875", Amount: decimal.NewFromInt(5)}))

	err := Struct(sendRequest{To: "GC1", Amount: decimal.Zero})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field to failed on 'wallet'")
	assert.Contains(t, err.Error(), "field amount failed on 'gt'")
}
