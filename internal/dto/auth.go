package dto

import (
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=32" example:"alice"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type UserDTO struct {
	ID            uuid.UUID       `json:"id"`
	Username      string          `json:"username" example:"alice"`
	WalletAddress string          `json:"wallet_address" example:"GC7992739875"`
	WalletBalance decimal.Decimal `json:"wallet_balance" swaggertype:"string" example:"5000"`
	IsAdmin       bool            `json:"is_admin"`
	CreatedAt     time.Time       `json:"created_at"`
}

type RegisterResponseDTO struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

type LoginResponseDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}

func NewUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Username:      u.Username,
		WalletAddress: u.WalletAddress,
		WalletBalance: u.WalletBalance,
		IsAdmin:       u.IsAdmin,
		CreatedAt:     u.CreatedAt,
	}
}
