package standardize_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crediscope/internal/domain"
	"crediscope/internal/standardize"
	"crediscope/mocks"
)

func newTestResolver(repo *mocks.MockCreditorRepo) *standardize.Resolver {
	return standardize.NewResolver(repo, 100*time.Millisecond, time.Minute)
}

func dictionary() []domain.CreditorIdentity {
	return []domain.CreditorIdentity{
		{StandardizedName: "Chase Bank", RegistryCode: "CHASE", Industry: "banking",
			Aliases: []string{"chase", "chase bank", "jpmcb"}},
		{StandardizedName: "Midland Credit Management", RegistryCode: "MCM", Industry: "collections",
			Aliases: []string{"midland credit", "midland credit management"}},
	}
}

func TestResolver_Resolve_ExactMatch(t *testing.T) {
	repo := new(mocks.MockCreditorRepo)
	repo.On("List", mock.Anything).Return(dictionary(), nil).Once()
	repo.On("IncrementUsage", mock.Anything, "Chase Bank").Return(nil).Maybe()

	r := newTestResolver(repo)
	m, err := r.Resolve(context.Background(), "  CHASE Bank ")

	require.NoError(t, err)
	assert.Equal(t, "Chase Bank", m.Identity.StandardizedName)
	assert.Equal(t, standardize.MatchExact, m.Method)
	assert.Equal(t, 1.0, m.Confidence)
}

func TestResolver_Resolve_Idempotent(t *testing.T) {
	repo := new(mocks.MockCreditorRepo)
	repo.On("List", mock.Anything).Return(dictionary(), nil).Once()
	repo.On("IncrementUsage", mock.Anything, "Chase Bank").Return(nil).Maybe()

	r := newTestResolver(repo)
	first, err := r.Resolve(context.Background(), "Chase Bank")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "Chase Bank")
	require.NoError(t, err)

	assert.Equal(t, first.Identity.StandardizedName, second.Identity.StandardizedName)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Method, second.Method)
}

func TestResolver_Resolve_FuzzyMatch(t *testing.T) {
	repo := new(mocks.MockCreditorRepo)
	repo.On("List", mock.Anything).Return(dictionary(), nil).Once()
	repo.On("LookupByAlias", mock.Anything, mock.Anything).Return(nil, domain.ErrCreditorNotFound)
	repo.On("IncrementUsage", mock.Anything, "Chase Bank").Return(nil).Maybe()

	r := newTestResolver(repo)
	// "chase bnak": two edits from "chase bank", similarity 0.8.
	m, err := r.Resolve(context.Background(), "Chase Bnak")

	require.NoError(t, err)
	assert.Equal(t, "Chase Bank", m.Identity.StandardizedName)
	assert.Equal(t, standardize.MatchFuzzy, m.Method)
	assert.InDelta(t, 0.8*0.8, m.Confidence, 0.001)
	assert.Less(t, m.Confidence, 1.0)
}

func TestResolver_Resolve_MintUnknownCreditor(t *testing.T) {
	repo := new(mocks.MockCreditorRepo)
	repo.On("List", mock.Anything).Return(dictionary(), nil).Once()
	repo.On("LookupByAlias", mock.Anything, mock.Anything).Return(nil, domain.ErrCreditorNotFound)

	inserted := make(chan *domain.CreditorIdentity, 1)
	repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted <- args.Get(1).(*domain.CreditorIdentity)
	}).Return(nil).Once()

	r := newTestResolver(repo)
	m, err := r.Resolve(context.Background(), "zorblatt recovery solutions llc")

	require.NoError(t, err)
	assert.Equal(t, standardize.MatchCreated, m.Method)
	assert.Equal(t, 0.6, m.Confidence)
	assert.Equal(t, "Zorblatt Recovery Solutions LLC", m.Identity.StandardizedName)
	assert.Equal(t, "collections", m.Identity.Industry)

	select {
	case identity := <-inserted:
		assert.Equal(t, "Zorblatt Recovery Solutions LLC", identity.StandardizedName)
	case <-time.After(time.Second):
		t.Fatal("minted identity was never persisted")
	}
}

func TestResolver_Resolve_EmptyName(t *testing.T) {
	repo := new(mocks.MockCreditorRepo)
	r := newTestResolver(repo)

	for _, raw := range []string{"", "   ", "!!!"} {
		m, err := r.Resolve(context.Background(), raw)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, domain.ErrEmptyCreditor)
	}
}

func TestResolver_Resolve_StoreUnavailableFallsBackToSeed(t *testing.T) {
	repo := new(mocks.MockCreditorRepo)
	repo.On("List", mock.Anything).Return(nil, assert.AnError)
	repo.On("IncrementUsage", mock.Anything, mock.Anything).Return(assert.AnError).Maybe()

	r := newTestResolver(repo)
	m, err := r.Resolve(context.Background(), "Wells Fargo Card Services")

	require.NoError(t, err, "store failures must never surface to the caller")
	assert.Equal(t, "Wells Fargo", m.Identity.StandardizedName)
	assert.Equal(t, standardize.MatchExact, m.Method)
}
