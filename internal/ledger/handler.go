package ledger

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/paymesh/paymesh/internal/rpc"
)

// accountRecord is the wire shape of a created account.
type accountRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RegisterOperations binds the service onto the dispatch registry
// under the stable operation and argument names.
func RegisterOperations(r *rpc.Registry, svc *Service) {
	r.Register("createAccount", func(ctx context.Context, args rpc.Args) (any, error) {
		name, _, err := args.String("name")
		if err != nil {
			return nil, badRequest(err)
		}
		sum, err := args.Decimal("sum")
		if err != nil {
			return nil, badRequest(err)
		}
		account, err := svc.CreateAccount(ctx, name, sum)
		if err != nil {
			return nil, mapError(err)
		}
		return accountRecord{ID: account.ID(), Name: account.Name()}, nil
	})

	r.Register("getBalance", func(ctx context.Context, args rpc.Args) (any, error) {
		id, _, err := args.Int64("accountId")
		if err != nil {
			return nil, badRequest(err)
		}
		balance, err := svc.GetBalance(ctx, id)
		if err != nil {
			return nil, mapError(err)
		}
		return balance, nil
	})

	r.Register("transfer", func(ctx context.Context, args rpc.Args) (any, error) {
		correlationID, _, err := args.String("correlationId")
		if err != nil {
			return nil, badRequest(err)
		}
		fromID, _, err := args.Int64("fromId")
		if err != nil {
			return nil, badRequest(err)
		}
		toID, _, err := args.Int64("toId")
		if err != nil {
			return nil, badRequest(err)
		}
		sum, err := args.Decimal("sum")
		if err != nil {
			return nil, badRequest(err)
		}
		outcome, err := svc.Transfer(ctx, correlationID, fromID, toID, sum)
		if err != nil {
			return nil, mapError(err)
		}
		return outcome, nil
	})
}

func badRequest(err error) error {
	return fiber.NewError(http.StatusBadRequest, err.Error())
}

// mapError translates hard service failures into transport errors.
func mapError(err error) error {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNameMissing), errors.Is(err, ErrSumMissing):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
