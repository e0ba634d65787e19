package commands

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/contact"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
)

// AddContactCommandHandler handles creating a buyer's delivery contact.
type AddContactCommandHandler struct {
	uowFactory ContactUoWFactory
}

// NewAddContactCommandHandler creates a handler for contact creation.
func NewAddContactCommandHandler(uowFactory ContactUoWFactory) AddContactCommandHandler {
	return AddContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-contact command and returns the new
// contact's identifier.
func (h AddContactCommandHandler) Handle(ctx context.Context, cmd AddContactCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := contact.NewContact(
		kernel.NewUUID(), cmd.BuyerID(), cmd.City(), cmd.Street(), cmd.House(), cmd.Phone())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.ContactRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
