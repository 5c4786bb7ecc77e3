package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// Non-standard status codes used by the shop API.
const (
	StatusUserNotActive     = 410
	StatusAlreadyVerified   = 411
	StatusInvalidToken      = 412
	StatusUserNotExists     = 413
	StatusTokenIDInvalid    = 414
	StatusTokenIDMismatch   = 415
	StatusVerifyReplayed    = 416
	StatusUserInactive      = 430
	StatusEmailDomain       = 444
	StatusWeakPassword      = 445
	StatusEmailTaken        = 456
	StatusNotAdmin          = 470
	StatusTargetNotFound    = 471
	StatusTargetState       = 472
	StatusOrderNotFound     = 487
	StatusNotSeller         = 491
	StatusSellerNotVerified = 492
	StatusUnknownGoods      = 499
	StatusGoodsInternal     = 501
	StatusGoodsNotExist     = 550
	StatusGoodNotFound      = 555
)

// Auth

func RateLimited() *AppError {
	return NewAppError(http.StatusTooManyRequests, CodeRateLimited, "Too many requests", ErrRateLimited)
}

func BadCredentials() *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidCredentials, "LOGIN_BAD_CREDENTIALS", ErrInvalidCredentials)
}

func EmailDomainNotAllowed(email string) *AppError {
	return NewAppError(StatusEmailDomain, CodeValidation, fmt.Sprintf("Email domain in %s is not validate", email), ErrInvalidInput)
}

func WeakPassword() *AppError {
	return NewAppError(StatusWeakPassword, CodeValidation, "Password is not validate! (check password requirements)", ErrInvalidInput)
}

func EmailTaken(email string) *AppError {
	return NewAppError(StatusEmailTaken, CodeEmailTaken, "Email address already registered "+email, ErrAlreadyExists)
}

func UserNotActive() *AppError {
	return NewAppError(StatusUserNotActive, CodeInactiveUser, "User is not active", ErrInactiveUser)
}

func UserInactive() *AppError {
	return NewAppError(StatusUserInactive, CodeInactiveUser, "User is inactive", ErrInactiveUser)
}

func AlreadyVerified() *AppError {
	return NewAppError(StatusAlreadyVerified, CodeAlreadyVerified, "User already verified", ErrAlreadyInState)
}

func InvalidVerifyToken() *AppError {
	return NewAppError(StatusInvalidToken, CodeInvalidToken, "Invalid verify token", ErrInvalidToken)
}

func InvalidResetToken() *AppError {
	return NewAppError(StatusInvalidToken, CodeInvalidToken, "Invalid reset password token", ErrInvalidToken)
}

func VerifyUserNotExists() *AppError {
	return NewAppError(StatusUserNotExists, CodeNotFound, "User not exists", ErrNotFound)
}

func VerifyIDInvalid() *AppError {
	return NewAppError(StatusTokenIDInvalid, CodeInvalidToken, "ID is invalid", ErrInvalidToken)
}

func VerifyIDMismatch() *AppError {
	return NewAppError(StatusTokenIDMismatch, CodeInvalidToken, "Invalid id", ErrInvalidToken)
}

func VerifyReplayed() *AppError {
	return NewAppError(StatusVerifyReplayed, CodeAlreadyVerified, "User already verified", ErrAlreadyInState)
}

// Admin

func NotAdmin() *AppError {
	return NewAppError(StatusNotAdmin, CodeNotAdmin, "User is not admin", ErrForbidden)
}

func AlreadyAdmin() *AppError {
	return NewAppError(StatusNotAdmin, CodeAlreadyInState, "User is already admin", ErrAlreadyInState)
}

func TargetNotFound() *AppError {
	return NewAppError(StatusTargetNotFound, CodeNotFound, "User is not found", ErrNotFound)
}

// TargetAlreadyIn reports an activate/deactivate request for a user already in that state.
func TargetAlreadyIn(state string) *AppError {
	return NewAppError(StatusTargetState, CodeAlreadyInState, "User is already "+state, ErrAlreadyInState)
}

func SelfDelete() *AppError {
	return NewAppError(StatusTargetState, CodeForbidden, "U dont delete yourself", ErrForbidden)
}

// Catalog

func NotSeller() *AppError {
	return NewAppError(StatusNotSeller, CodeNotSeller, "Operations with goods only for sellers!", ErrForbidden)
}

func SellerNotVerified() *AppError {
	return NewAppError(StatusSellerNotVerified, CodeNotVerified, "Seller is not verified!", ErrNotVerified)
}

func CategoryNotExists(name string) *AppError {
	return NewAppError(StatusGoodsInternal, CodeNotFound, fmt.Sprintf("Category %s is not exists", name), ErrNotFound)
}

// GoodsInternal hides err the same way InternalError does, under the catalog status code.
func GoodsInternal(err error) *AppError {
	return NewAppError(StatusGoodsInternal, CodeInternalError, "internal server error", err)
}

func GoodsNotExist(err error) *AppError {
	return NewAppError(StatusGoodsNotExist, CodeNotFound, "Goods are not exists", err)
}

func GoodNotFound(id int64) *AppError {
	return NewAppError(StatusGoodNotFound, CodeNotFound, fmt.Sprintf("Good with id %d not found", id), ErrNotFound)
}

// Orders

func CustomerNotVerified() *AppError {
	return NewAppError(http.StatusBadRequest, CodeNotVerified, "Customers is not verified!", ErrNotVerified)
}

func UnknownGoods(ids []int64) *AppError {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return NewAppError(StatusUnknownGoods, CodeUnknownGoods, fmt.Sprintf("Goods %s are not exists", strings.Join(parts, ", ")), ErrNotFound)
}

func OrderNotFound() *AppError {
	return NewAppError(StatusOrderNotFound, CodeNotFound, "Order with this number doesnt exist", ErrNotFound)
}

func OrdersNotFound() *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, "Orders not found", ErrNotFound)
}

func UserNotFound() *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, "User not found", ErrNotFound)
}
