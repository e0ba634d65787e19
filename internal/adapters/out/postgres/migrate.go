package postgres

import (
	"github.com/BarinovG/EShop-API/internal/adapters/out/postgres/catalogrepo"
	"github.com/BarinovG/EShop-API/internal/adapters/out/postgres/contactrepo"
	"github.com/BarinovG/EShop-API/internal/adapters/out/postgres/lineitemrepo"
	"github.com/BarinovG/EShop-API/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates the schema for every repository in this package.
// Two constraints cannot be expressed with GORM struct tags and are
// applied as raw statements afterwards:
//
//   - the partial unique index keeping one open cart per buyer;
//   - the foreign key from orders.contact_id to contacts, which makes
//     placement with a dangling contact fail at the store.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&lineitemrepo.LineItemDTO{},
		&catalogrepo.ShopDTO{},
		&catalogrepo.OfferDTO{},
		&contactrepo.ContactDTO{},
	)
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_one_open_cart_per_buyer
		ON orders (buyer_id) WHERE status = 1
	`).Error
	if err != nil {
		return err
	}

	return db.Exec(`
		DO $$ BEGIN
			ALTER TABLE orders
				ADD CONSTRAINT fk_orders_contact
				FOREIGN KEY (contact_id) REFERENCES contacts (id);
		EXCEPTION
			WHEN duplicate_object THEN NULL;
		END $$
	`).Error
}
