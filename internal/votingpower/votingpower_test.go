package votingpower

import (
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evermarks/emark-staking-service/tests/mocks"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name              string
		total, reserved   int64
		expectedAvailable int64
		expectedRate      string
	}{
		{"partial reservation", 1000, 400, 600, "40.000000000000000000"},
		{"nothing reserved", 1000, 0, 1000, "0.000000000000000000"},
		{"fully reserved", 1000, 1000, 0, "100.000000000000000000"},
		{"zero total", 0, 0, 0, "0.000000000000000000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			breakdown := Compute(sdkmath.NewInt(tc.total), sdkmath.NewInt(tc.reserved))
			assert.Equal(t, tc.expectedAvailable, breakdown.Available.Int64())
			assert.Equal(t, tc.expectedRate, breakdown.UtilizationRate.String())
		})
	}

	t.Run("reserved exceeding total clamps", func(t *testing.T) {
		breakdown := Compute(sdkmath.NewInt(100), sdkmath.NewInt(250))
		assert.Equal(t, int64(100), breakdown.Reserved.Int64())
		assert.True(t, breakdown.Available.IsZero())
	})

	t.Run("negative reserved clamps to zero", func(t *testing.T) {
		breakdown := Compute(sdkmath.NewInt(100), sdkmath.NewInt(-10))
		assert.True(t, breakdown.Reserved.IsZero())
		assert.Equal(t, int64(100), breakdown.Available.Int64())
	})

	t.Run("nil amounts", func(t *testing.T) {
		breakdown := Compute(sdkmath.Int{}, sdkmath.Int{})
		assert.True(t, breakdown.Total.IsZero())
		assert.True(t, breakdown.Available.IsZero())
	})
}

func TestResolveReserved(t *testing.T) {
	const account = "0x1111111111111111111111111111111111111111"
	queryErr := errors.New("execution reverted")

	t.Run("direct query preferred", func(t *testing.T) {
		reader := mocks.NewChainInterface(t)
		reader.On("GetVotesInCurrentCycle", mock.Anything, account).Return(sdkmath.NewInt(200), nil)

		reserved, degraded := ResolveReserved(t.Context(), reader, account)
		assert.False(t, degraded)
		assert.Equal(t, sdkmath.NewInt(200), reserved)
	})

	t.Run("falls back to total minus remaining", func(t *testing.T) {
		reader := mocks.NewChainInterface(t)
		reader.On("GetVotesInCurrentCycle", mock.Anything, account).Return(sdkmath.Int{}, queryErr)
		reader.On("GetVotingPower", mock.Anything, account).Return(sdkmath.NewInt(500), nil)
		reader.On("GetRemainingVotingPower", mock.Anything, account).Return(sdkmath.NewInt(300), nil)

		reserved, degraded := ResolveReserved(t.Context(), reader, account)
		assert.False(t, degraded)
		assert.Equal(t, sdkmath.NewInt(200), reserved)
	})

	t.Run("fallback clamps negative derivation", func(t *testing.T) {
		reader := mocks.NewChainInterface(t)
		reader.On("GetVotesInCurrentCycle", mock.Anything, account).Return(sdkmath.Int{}, queryErr)
		reader.On("GetVotingPower", mock.Anything, account).Return(sdkmath.NewInt(100), nil)
		reader.On("GetRemainingVotingPower", mock.Anything, account).Return(sdkmath.NewInt(300), nil)

		reserved, degraded := ResolveReserved(t.Context(), reader, account)
		assert.False(t, degraded)
		assert.Equal(t, sdkmath.ZeroInt(), reserved)
	})

	t.Run("degrades to zero when everything fails", func(t *testing.T) {
		reader := mocks.NewChainInterface(t)
		reader.On("GetVotesInCurrentCycle", mock.Anything, account).Return(sdkmath.Int{}, queryErr)
		reader.On("GetVotingPower", mock.Anything, account).Return(sdkmath.Int{}, queryErr)
		reader.On("GetRemainingVotingPower", mock.Anything, account).Return(sdkmath.Int{}, queryErr)

		reserved, degraded := ResolveReserved(t.Context(), reader, account)
		require.True(t, degraded)
		assert.Equal(t, sdkmath.ZeroInt(), reserved)
	})
}
