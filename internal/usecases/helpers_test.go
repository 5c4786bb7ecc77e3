package usecases_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/pkg/crypto"
)

func requireStatus(t *testing.T, err error, status int) *domainerrors.AppError {
	t.Helper()
	var appErr *domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, status, appErr.Status, appErr.Message)
	return appErr
}

var (
	hashOnce   sync.Once
	storedHash string
)

// testPasswordHash is the bcrypt hash of "Aa2@@", computed once per run
func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := crypto.HashPassword("Aa2@@")
		if err != nil {
			panic(err)
		}
		storedHash = h
	})
	return storedHash
}
