package macexpect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/macexpect"
	"github.com/aretw0/macexpect/pkg/adapters/memory"
	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRun_GoldenReference(t *testing.T) {
	expectedTime, expectedEnergy := macexpect.Run()

	assert.InDelta(t, 16418.0/729, expectedTime, 1e-9)
	assert.InDelta(t, 276485.0/729, expectedEnergy, 1e-9)
}

func TestAnalyzer_CachesByFingerprint(t *testing.T) {
	expansions := 0
	hooks := domain.LifecycleHooks{
		OnExpand: func(context.Context, *domain.ExpandEvent) { expansions++ },
	}
	store := memory.NewStore()
	a := macexpect.New(macexpect.WithStore(store), macexpect.WithLifecycleHooks(hooks))
	ctx := context.Background()

	first, err := a.Analyze(ctx, domain.DefaultModel())
	require.NoError(t, err)
	assert.Equal(t, 115, expansions)

	second, err := a.Analyze(ctx, domain.DefaultModel())
	require.NoError(t, err)
	assert.Equal(t, 115, expansions, "second call must be served from the store")
	assert.Equal(t, first, second)

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.DefaultModel().Fingerprint()}, keys)

	// A different model is a different key.
	m := domain.DefaultModel()
	m.TransmitCost = 0
	_, err = a.Analyze(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, 230, expansions)
}

func TestAnalyzer_InvalidModel(t *testing.T) {
	m := domain.DefaultModel()
	m.WakePeriods[0] = 0

	_, err := macexpect.New().Analyze(context.Background(), m)
	assert.ErrorIs(t, err, domain.ErrInvalidModel)
}

// failingStore is a ResultStore whose backend is down.
type failingStore struct {
	mock.Mock
}

func (f *failingStore) Save(ctx context.Context, key string, result domain.Result) error {
	return f.Called(key).Error(0)
}

func (f *failingStore) Load(ctx context.Context, key string) (domain.Result, error) {
	args := f.Called(key)
	return domain.Result{}, args.Error(0)
}

func (f *failingStore) Delete(ctx context.Context, key string) error {
	return f.Called(key).Error(0)
}

func (f *failingStore) List(ctx context.Context) ([]string, error) {
	return nil, f.Called().Error(0)
}

func TestAnalyzer_StoreFailuresDoNotFailRequest(t *testing.T) {
	key := domain.DefaultModel().Fingerprint()
	store := new(failingStore)
	store.On("Load", key).Return(errors.New("connection refused")).Once()
	store.On("Save", key).Return(errors.New("connection refused")).Once()

	res, err := macexpect.New(macexpect.WithStore(store)).Analyze(context.Background(), domain.DefaultModel())
	require.NoError(t, err)
	assert.InDelta(t, 16418.0/729, res.ExpectedTime, 1e-9)

	store.AssertExpectations(t)
}

func TestAnalyzer_DepthFirst(t *testing.T) {
	res, err := macexpect.New(macexpect.WithTraversal(domain.DepthFirst)).Analyze(context.Background(), domain.DefaultModel())
	require.NoError(t, err)
	assert.InDelta(t, 276485.0/729, res.ExpectedEnergy, 1e-9)
}

func TestAnalyzer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := macexpect.New().Analyze(ctx, domain.DefaultModel())
	assert.ErrorIs(t, err, context.Canceled)
}
