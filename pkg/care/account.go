package care

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/models"
)

func (c *Care) createAccount(email, name, password string, role models.Role) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCareCore,
		zap.String(common.LoggerFieldCareCategory, common.LoggerCategoryAccount),
	)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, Validationf("email is required")
	}
	if len(password) < 8 {
		return nil, Validationf("password must be at least 8 characters long")
	}
	if role != models.RoleAdmin && role != models.RoleCaregiver {
		return nil, Validationf("unknown role %q", role)
	}

	var existing models.User
	err := c.Db.Conn.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, Conflictf("account already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Password: string(hash),
		Role:     role,
	}

	if err := c.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info("Account created", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	return &user, nil
}

// Authenticate deliberately reports the same error for an unknown email and
// a wrong password.
func (c *Care) authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := c.Db.Conn.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Unauthorizedf("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, Unauthorizedf("invalid email or password")
	}

	return &user, nil
}

func (c *Care) getAccount(userID string) (*models.User, error) {
	var user models.User
	if err := c.Db.Conn.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("account not found")
		}
		return nil, err
	}
	return &user, nil
}

type IAccountImpl struct {
	care *Care
}

func (ia *IAccountImpl) CreateAccount(email, name, password string, role models.Role) (*models.User, error) {
	return ia.care.createAccount(email, name, password, role)
}

func (ia *IAccountImpl) Authenticate(email, password string) (*models.User, error) {
	return ia.care.authenticate(email, password)
}

func (ia *IAccountImpl) GetAccount(userID string) (*models.User, error) {
	return ia.care.getAccount(userID)
}

func (c *Care) GetIAccount() IAccount {
	return &IAccountImpl{care: c}
}
