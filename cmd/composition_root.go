package cmd

import (
	"log/slog"

	"github.com/BarinovG/EShop-API/internal/adapters/out/postgres"
	"github.com/BarinovG/EShop-API/internal/core/application/usecases/commands"
	"github.com/BarinovG/EShop-API/internal/core/application/usecases/queries"
	"github.com/BarinovG/EShop-API/internal/core/ports"
	"github.com/BarinovG/EShop-API/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are
// cheap value objects; each Create* call assembles a fresh one over the
// shared database connection and notifier.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateItemQuantityCommandHandler() commands.UpdateItemQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateItemQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateImportPriceListCommandHandler() commands.ImportPriceListCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportPriceListCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeShopStateCommandHandler() commands.ChangeShopStateCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeShopStateCommandHandler(f)
}

func (c *CompositionRoot) CreateAddContactCommandHandler() commands.AddContactCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddContactCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateContactCommandHandler() commands.UpdateContactCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateContactCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteContactCommandHandler() commands.DeleteContactCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteContactCommandHandler(f)
}

func (c *CompositionRoot) CreateCleanupStaleCartsCommandHandler() commands.CleanupStaleCartsCommandHandler {
	var f commands.CleanupUoWFactory = FuncCleanupUoWFactory(func() commands.CleanupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupStaleCartsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartItemQueryHandler() queries.GetCartItemQueryHandler {
	return queries.NewGetCartItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerOrdersQueryHandler() queries.GetSellerOrdersQueryHandler {
	return queries.NewGetSellerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOffersQueryHandler() queries.SearchOffersQueryHandler {
	return queries.NewSearchOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetContactsQueryHandler() queries.GetContactsQueryHandler {
	return queries.NewGetContactsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(cfg Config) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCleanupStaleCartsCommandHandler(), cfg.CartTTL, c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncContactUoWFactory func() commands.ContactUoW

func (f FuncContactUoWFactory) Create() commands.ContactUoW {
	return f()
}

type FuncCleanupUoWFactory func() commands.CleanupUoW

func (f FuncCleanupUoWFactory) Create() commands.CleanupUoW {
	return f()
}
