package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

// toConnectError maps domain and storage errors onto Connect codes.
func toConnectError(op string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := connect.CodeInternal
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, models.ErrUnknownTraveler),
		errors.Is(err, models.ErrUnknownExpense):
		code = connect.CodeNotFound
	case errors.Is(err, models.ErrInvalidTrip),
		errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrUnknownPayer),
		errors.Is(err, calculator.ErrNegativeAmount),
		errors.Is(err, calculator.ErrUnknownCategory),
		errors.Is(err, calculator.ErrInvalidDateRange):
		code = connect.CodeInvalidArgument
	}

	if code == connect.CodeInternal {
		slog.Error(op+" failed", "error", err)
	} else {
		slog.Warn(op+" rejected", "code", code, "error", err)
	}
	return connect.NewError(code, err)
}

func invalidArgument(msg string) error {
	return connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
}
