package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer       = errors.New("Internal server error")
	ErrClient               = errors.New("Missing required fields")
	ErrNotLoggedIn          = errors.New("Unauthorized access")
	ErrInvalidCredentials   = errors.New("Email or password is incorrect")
	ErrNotFound             = errors.New("Resource not found")
	ErrProductNotFound      = errors.New("Product not found")
	ErrUserNotFound         = errors.New("User not found")
	ErrEmailAlreadyUsed     = errors.New("Email has already been used")
	ErrProductAlreadyExists = errors.New("Product already exists")
	ErrAllProductsExist     = errors.New("All products already exist")
)

var errorMap = map[error]int{
	ErrInternalServer:       ErrStatusInternalServer,
	ErrClient:               ErrStatusClient,
	ErrNotLoggedIn:          ErrStatusNotLoggedIn,
	ErrInvalidCredentials:   ErrStatusUnauthorized,
	ErrNotFound:             ErrStatusNotFound,
	ErrProductNotFound:      ErrStatusNotFound,
	ErrUserNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:     ErrStatusConflict,
	ErrProductAlreadyExists: ErrStatusConflict,
	ErrAllProductsExist:     ErrStatusConflict,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
