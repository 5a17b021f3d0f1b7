package otp

import (
	"errors"
	"sync"
	"testing"
	"time"

	"sevakiosk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIdentifier = "9876543210"

func TestIssueStoresChallengeAndDelivers(t *testing.T) {
	engine, sender := newTestEngine(t)
	now := time.Now()

	code, err := engine.Issue(testIdentifier, now)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, 1, sender.count())

	var challenge models.OTPChallenge
	require.NoError(t, engine.db.Where("identifier = ?", testIdentifier).First(&challenge).Error)
	assert.Equal(t, code, challenge.Code)
	assert.False(t, challenge.IsUsed)
	assert.Equal(t, now.Add(5*time.Minute).Unix(), challenge.ExpiresAt.Unix())
}

func TestIssueCooldown(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	_, err := engine.Issue(testIdentifier, now)
	require.NoError(t, err)

	// A second request inside the 60 second window is rejected with a hint.
	_, err = engine.Issue(testIdentifier, now.Add(30*time.Second))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Contains(t, rateErr.Hint, "wait")

	// Once the cooldown has elapsed the next request goes through.
	_, err = engine.Issue(testIdentifier, now.Add(61*time.Second))
	assert.NoError(t, err)
}

func TestIssueBurstCap(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	for _, offset := range []time.Duration{0, 2 * time.Minute, 4 * time.Minute} {
		_, err := engine.Issue(testIdentifier, now.Add(offset))
		require.NoError(t, err)
	}

	// Fourth request inside the trailing 10 minute window is rejected even
	// though the cooldown has elapsed.
	_, err := engine.Issue(testIdentifier, now.Add(9*time.Minute))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)

	// After the window slides past the first issuance, requests succeed again.
	_, err = engine.Issue(testIdentifier, now.Add(10*time.Minute+30*time.Second))
	assert.NoError(t, err)
}

func TestCooldownCountsFailedDeliveries(t *testing.T) {
	engine, sender := newTestEngine(t)
	sender.fail = true
	now := time.Now()

	_, err := engine.Issue(testIdentifier, now)
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	// The challenge row survives the failed send, so an immediate retry is
	// still inside the cooldown.
	var count int64
	engine.db.Model(&models.OTPChallenge{}).Where("identifier = ?", testIdentifier).Count(&count)
	assert.EqualValues(t, 1, count)

	_, err = engine.Issue(testIdentifier, now.Add(10*time.Second))
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestVerifyHappyPathProvisionsAccount(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	code, err := engine.Issue(testIdentifier, now)
	require.NoError(t, err)

	result, err := engine.Verify(testIdentifier, code, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, result.IsNew)
	assert.Equal(t, models.RoleCitizen, result.Account.Role)
	require.NotNil(t, result.Account.Phone)
	assert.Equal(t, testIdentifier, *result.Account.Phone)

	// Single use: the same code never verifies twice.
	_, err = engine.Verify(testIdentifier, code, now.Add(2*time.Minute))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyConsumerNumberFirstContact(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	consumer := "KA-2024-00778899001"
	code, err := engine.Issue(consumer, now)
	require.NoError(t, err)

	result, err := engine.Verify(consumer, code, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, result.IsNew)
	assert.Nil(t, result.Account.Phone)
	require.NotNil(t, result.Account.ConsumerNumber)
	assert.Equal(t, consumer, *result.Account.ConsumerNumber)
}

func TestVerifyWrongCode(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	_, err := engine.Issue(testIdentifier, now)
	require.NoError(t, err)

	_, err = engine.Verify(testIdentifier, "000000", now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyUnknownIdentifier(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Verify("1112223334", "123456", time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyExpired(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	code, err := engine.Issue(testIdentifier, now)
	require.NoError(t, err)

	// Unconsumed, but the validity window has passed.
	_, err = engine.Verify(testIdentifier, code, now.Add(5*time.Minute+time.Second))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestReissueInvalidatesPriorCode(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	first, err := engine.Issue(testIdentifier, now)
	require.NoError(t, err)

	second, err := engine.Issue(testIdentifier, now.Add(61*time.Second))
	require.NoError(t, err)

	// The first code is unexpired but superseded; it must not verify.
	if first != second {
		_, err = engine.Verify(testIdentifier, first, now.Add(2*time.Minute))
		assert.ErrorIs(t, err, ErrNotFound)
	}

	_, err = engine.Verify(testIdentifier, second, now.Add(2*time.Minute))
	assert.NoError(t, err)
}

func TestVerifyStaleChallenge(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	// Seed two live challenges directly, bypassing invalidate-on-issue, to
	// exercise the freshness guard.
	older := models.OTPChallenge{Identifier: testIdentifier, Code: "111111", ExpiresAt: now.Add(5 * time.Minute)}
	older.CreatedAt = now
	require.NoError(t, engine.db.Create(&older).Error)

	newer := models.OTPChallenge{Identifier: testIdentifier, Code: "222222", ExpiresAt: now.Add(5 * time.Minute)}
	newer.CreatedAt = now.Add(30 * time.Second)
	require.NoError(t, engine.db.Create(&newer).Error)

	_, err := engine.Verify(testIdentifier, "111111", now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrStale)

	// The older challenge stays unconsumed after the rejection.
	var check models.OTPChallenge
	require.NoError(t, engine.db.First(&check, older.ID).Error)
	assert.False(t, check.IsUsed)
}

func TestConcurrentVerifySingleWinner(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	code, err := engine.Issue(testIdentifier, now)
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Verify(testIdentifier, code, now.Add(time.Minute))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, rejections int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrAlreadyConsumed) || errors.Is(err, ErrNotFound):
			rejections++
		default:
			t.Fatalf("unexpected verification error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, rejections)

	// Exactly one account was provisioned despite the concurrent resolvers.
	var users int64
	engine.db.Model(&models.User{}).Where("phone = ?", testIdentifier).Count(&users)
	assert.EqualValues(t, 1, users)
}

func TestVerifyReusesExistingAccount(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	code, err := engine.Issue(testIdentifier, now)
	require.NoError(t, err)
	first, err := engine.Verify(testIdentifier, code, now.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, first.IsNew)

	code, err = engine.Issue(testIdentifier, now.Add(2*time.Minute))
	require.NoError(t, err)
	second, err := engine.Verify(testIdentifier, code, now.Add(3*time.Minute))
	require.NoError(t, err)

	assert.False(t, second.IsNew)
	assert.Equal(t, first.Account.ID, second.Account.ID)
}

func TestIndependentIdentifiersDoNotShareRateBudget(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Now()

	_, err := engine.Issue("9876543210", now)
	require.NoError(t, err)

	// A different identifier is unaffected by the first one's cooldown.
	_, err = engine.Issue("9123456780", now.Add(time.Second))
	assert.NoError(t, err)
}
