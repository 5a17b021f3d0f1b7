// Package otp implements the one-time passcode challenge lifecycle: rate
// limited issuance, SMS delivery, strict single-use verification and the
// identifier-to-account resolution that follows a successful verification.
//
// An identifier is a phone number or a consumer number; the engine compares
// it by exact match only. The challenge table is the single source of truth
// for OTP state.
package otp

import (
	"errors"
	"log"
	"sync"
	"time"

	"sevakiosk/models"

	"gorm.io/gorm"
)

// Config is the issuance and verification policy. It is passed in at
// construction so differing policies never require code changes.
type Config struct {
	Validity    time.Duration // how long a code stays verifiable
	Cooldown    time.Duration // minimum spacing between issuances
	BurstLimit  int           // max issuances per trailing BurstWindow
	BurstWindow time.Duration
	CodeLength  int
}

// DefaultConfig returns the production policy: 5 minute validity, 60 second
// cooldown, 3 codes per 10 minutes, 6 digits.
func DefaultConfig() Config {
	return Config{
		Validity:    5 * time.Minute,
		Cooldown:    60 * time.Second,
		BurstLimit:  3,
		BurstWindow: 10 * time.Minute,
		CodeLength:  6,
	}
}

// Sender delivers a code to an identifier. Implementations must not panic;
// any failure is reported as an error and treated as DeliveryFailed.
type Sender interface {
	Send(identifier, code string, validity time.Duration) error
}

// Engine drives the challenge lifecycle against the challenge store.
type Engine struct {
	db     *gorm.DB
	cfg    Config
	sender Sender
	locks  sync.Map // identifier -> *sync.Mutex
}

func NewEngine(db *gorm.DB, cfg Config, sender Sender) *Engine {
	return &Engine{db: db, cfg: cfg, sender: sender}
}

// lock returns the issuance mutex for an identifier.
func (e *Engine) lock(identifier string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(identifier, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Issue runs the issuance path: rate check, invalidate prior unconsumed
// challenges, persist a fresh challenge, then deliver. The sequence is
// serialized per identifier so two concurrent calls cannot both pass the
// cooldown check. The returned code is the one persisted.
//
// A delivery failure returns ErrDeliveryFailed but leaves the challenge row
// in place, so a failed send still consumes rate budget.
func (e *Engine) Issue(identifier string, now time.Time) (string, error) {
	mu := e.lock(identifier)
	mu.Lock()
	defer mu.Unlock()

	if err := e.canIssue(identifier, now); err != nil {
		return "", err
	}

	code, err := GenerateCode(e.cfg.CodeLength)
	if err != nil {
		return "", err
	}

	challenge := models.OTPChallenge{
		Identifier: identifier,
		Code:       code,
		ExpiresAt:  now.Add(e.cfg.Validity),
	}
	challenge.CreatedAt = now

	err = e.db.Transaction(func(tx *gorm.DB) error {
		// Invalidate priors so the freshest challenge is the only live one.
		// Soft delete keeps the rows visible to the rate limiter.
		if err := tx.Where("identifier = ? AND is_used = ?", identifier, false).
			Delete(&models.OTPChallenge{}).Error; err != nil {
			return err
		}
		return tx.Create(&challenge).Error
	})
	if err != nil {
		return "", err
	}

	// Delivery runs outside the transaction; the gateway call must never
	// hold a DB transaction open.
	if err := e.sender.Send(identifier, code, e.cfg.Validity); err != nil {
		log.Printf("[OTP] delivery failed for %s: %v", identifier, err)
		return code, ErrDeliveryFailed
	}
	return code, nil
}

// VerifyResult is the outcome of a successful verification.
type VerifyResult struct {
	Account *models.User
	IsNew   bool // account was provisioned by this verification
}

// Verify validates a submitted code against the latest unconsumed challenge
// for the identifier and, on success, resolves the identifier to an account.
//
// Consumption is a conditional update: of any number of concurrent attempts
// with the same valid code, exactly one wins; the rest observe
// ErrAlreadyConsumed (or ErrNotFound if they looked up after the winner).
func (e *Engine) Verify(identifier, code string, now time.Time) (*VerifyResult, error) {
	var challenge models.OTPChallenge
	err := e.db.Where("identifier = ? AND code = ? AND is_used = ?", identifier, code, false).
		Order("created_at DESC").First(&challenge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if now.After(challenge.ExpiresAt) {
		return nil, ErrExpired
	}

	// Only the most recently issued challenge is ever acceptable, even if an
	// older one is still unexpired and unconsumed.
	var latest models.OTPChallenge
	if err := e.db.Where("identifier = ?", identifier).
		Order("created_at DESC").First(&latest).Error; err != nil {
		return nil, err
	}
	if latest.ID != challenge.ID {
		return nil, ErrStale
	}

	res := e.db.Model(&models.OTPChallenge{}).
		Where("id = ? AND is_used = ?", challenge.ID, false).
		Update("is_used", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyConsumed
	}

	account, created, err := e.Resolve(identifier)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Account: account, IsNew: created}, nil
}
