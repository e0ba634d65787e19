package http

import (
	"errors"
	"net/http"

	"github.com/BarinovG/EShop-API/internal/core/application/usecases/commands"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// fail maps an application error to a transport code and the
// status:false envelope. Not-found stays not-found whether the object
// is absent, foreign, or in the wrong state; the mapping never leaks
// which.
func fail(ctx echo.Context, err error) error {
	return ctx.JSON(statusCode(err), ErrorResponse{
		Status: false,
		Error:  err.Error(),
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrInsufficientStock),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.Is(err, commands.ErrEmptyCart),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		return http.StatusBadRequest
	}

	// Constraint violations surface as malformed requests: a dangling
	// contact id or a duplicate cart line is the client's doing.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqForeignKeyViolation, pqUniqueViolation:
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
