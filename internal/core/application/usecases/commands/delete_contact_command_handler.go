package commands

import (
	"context"
)

// DeleteContactCommandHandler handles removing a buyer's delivery
// contact. Deletion is idempotent under the buyer scope. A contact
// referenced by a placed order is protected by the store's foreign key
// and the delete surfaces a storage error instead.
type DeleteContactCommandHandler struct {
	uowFactory ContactUoWFactory
}

// NewDeleteContactCommandHandler creates a handler for contact deletion.
func NewDeleteContactCommandHandler(uowFactory ContactUoWFactory) DeleteContactCommandHandler {
	return DeleteContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete-contact command.
func (h DeleteContactCommandHandler) Handle(ctx context.Context, cmd DeleteContactCommand) error {
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

	if err := uow.ContactRepository().Delete(ctx, cmd.BuyerID(), cmd.ContactID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
