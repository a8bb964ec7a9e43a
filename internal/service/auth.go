package service

import (
	"context"
	"errors"

	"cafe-commerce/internal/model"
	"cafe-commerce/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// Register creates a customer with a bcrypt password hash. The email
// uniqueness check and the insert run in one transaction.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.Customer, error) {
	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := model.Customer{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashedPwd),
		Phone:    in.Phone,
		Address:  in.Address,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.Customer{}).Where("email = ?", in.Email).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrEmailTaken
		}
		return tx.Create(&customer).Error
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.Customer, error) {
	var customer model.Customer
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(customer.ID, customer.Email)
	if err != nil {
		return "", nil, err
	}

	return token, &customer, nil
}

func (s *AuthService) GetProfile(ctx context.Context, customerID int64) (*model.Customer, error) {
	var customer model.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Customer"}
		}
		return nil, err
	}
	return &customer, nil
}

type UpdateProfileInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// UpdateProfile applies a partial update; nil fields are left untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, customerID int64, in UpdateProfileInput) (*model.Customer, error) {
	var customer model.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Customer"}
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&customer).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &customer, nil
}

// ChangePassword verifies the old password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, customerID int64, oldPassword, newPassword string) error {
	var customer model.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Customer"}
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&customer).Update("password", string(hashedPwd)).Error
}
