package otp

import (
	"errors"
	"regexp"

	"sevakiosk/models"

	"gorm.io/gorm"
)

var phoneShape = regexp.MustCompile(`^\d{10}$`)

// Resolve maps a verified identifier to its account, provisioning a CITIZEN
// user on first contact. The lookup matches either the phone number or the
// consumer number.
//
// Provisioning is safe under concurrent calls for the same new identifier:
// the unique indexes on users.phone and users.consumer_number decide the
// winner, and the loser falls back to the winner's row.
func (e *Engine) Resolve(identifier string) (*models.User, bool, error) {
	var user models.User
	err := e.db.Where("(phone = ? OR consumer_number = ?) AND is_deleted = ?",
		identifier, identifier, false).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	// The identifier lands in the field its shape matches: a 10-digit mobile
	// goes into phone, anything else is a consumer number. Consumer numbers
	// run up to 50 characters and do not fit the phone column.
	user = models.User{
		Username: "user_" + identifier,
		Role:     models.RoleCitizen,
	}
	if phoneShape.MatchString(identifier) {
		user.Phone = &identifier
	} else {
		user.ConsumerNumber = &identifier
	}
	if createErr := e.db.Create(&user).Error; createErr != nil {
		// A concurrent first-time verification may have provisioned the
		// account already; resolve to the winner's row.
		var existing models.User
		if err := e.db.Where("(phone = ? OR consumer_number = ?) AND is_deleted = ?",
			identifier, identifier, false).First(&existing).Error; err == nil {
			return &existing, false, nil
		}
		return nil, false, createErr
	}
	return &user, true, nil
}
