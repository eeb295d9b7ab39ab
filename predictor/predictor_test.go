package predictor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mebo-project/tsz/errs"
)

func TestLastValue_PredictsPreviousUpdate(t *testing.T) {
	p := NewLastValue()
	require.Equal(t, uint64(0), p.PredictNext())

	p.Update(42)
	require.Equal(t, uint64(42), p.PredictNext())

	p.Update(7)
	require.Equal(t, uint64(7), p.PredictNext())
}

func TestNewFCM_RejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewFCM(0)
	require.ErrorIs(t, err, errs.ErrInvalidTableSize)

	_, err = NewFCM(3)
	require.ErrorIs(t, err, errs.ErrInvalidTableSize)

	_, err = NewFCM(-4)
	require.ErrorIs(t, err, errs.ErrInvalidTableSize)

	p, err := NewFCM(128)
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestFCM_UpdateThenPredict(t *testing.T) {
	p, err := NewFCM(4)
	require.NoError(t, err)

	require.Equal(t, uint64(0), p.PredictNext())

	p.Update(100)
	// table[0] = 100, lastHash = ((0<<5) ^ (100>>50)) & 3 = 0
	require.Equal(t, uint64(100), p.PredictNext())
}

func TestFCM_DeterministicAcrossTwoInstances(t *testing.T) {
	values := []uint64{1, 2, 3, 1 << 51, 1<<51 + 17, 0, 999999}

	enc, err := NewFCM(16)
	require.NoError(t, err)
	dec, err := NewFCM(16)
	require.NoError(t, err)

	for _, v := range values {
		require.Equal(t, enc.PredictNext(), dec.PredictNext())
		enc.Update(v)
		dec.Update(v)
	}
}

func TestNewDFCM_RejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewDFCM(5)
	require.ErrorIs(t, err, errs.ErrInvalidTableSize)

	p, err := NewDFCM(64)
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestDFCM_UpdateThenPredict(t *testing.T) {
	p, err := NewDFCM(4)
	require.NoError(t, err)

	p.Update(10)
	// diff = 10 - 0 = 10, table[0] = 10, lastValue = 10
	require.Equal(t, uint64(10), p.table[0])
	require.Equal(t, uint64(10), p.lastValue)

	// predict = table[lastHash] + lastValue
	want := p.table[p.lastHash] + p.lastValue
	require.Equal(t, want, p.PredictNext())
}

func TestDFCM_DeterministicAcrossTwoInstances(t *testing.T) {
	values := []uint64{100, 105, 90, 90, 12345, 12300}

	enc, err := NewDFCM(8)
	require.NoError(t, err)
	dec, err := NewDFCM(8)
	require.NoError(t, err)

	for _, v := range values {
		require.Equal(t, enc.PredictNext(), dec.PredictNext())
		enc.Update(v)
		dec.Update(v)
	}
}
