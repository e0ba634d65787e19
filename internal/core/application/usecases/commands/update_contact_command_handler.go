package commands

import (
	"context"
)

// UpdateContactCommandHandler handles overwriting a buyer's delivery
// contact. The lookup is scoped to the buyer, so a foreign contact id
// resolves to not found.
type UpdateContactCommandHandler struct {
	uowFactory ContactUoWFactory
}

// NewUpdateContactCommandHandler creates a handler for contact updates.
func NewUpdateContactCommandHandler(uowFactory ContactUoWFactory) UpdateContactCommandHandler {
	return UpdateContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-contact command.
func (h UpdateContactCommandHandler) Handle(ctx context.Context, cmd UpdateContactCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ContactRepository().Get(ctx, cmd.BuyerID(), cmd.ContactID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.City(), cmd.Street(), cmd.House(), cmd.Phone()); err != nil {
		return err
	}

	if err = uow.ContactRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
