package interfaces

import (
	"context"
	"io"

	"storefront/models"
)

// Database — интерфейс для работы с каталогом в базе данных
type Database interface {
	SaveCategory(c *models.Category) error
	GetCategories() ([]models.Category, error)
	DeleteCategory(id string) error

	SaveProduct(p *models.Product) error
	GetProduct(id string) (*models.Product, error)
	GetProductsByIDs(ids []string) ([]models.Product, error)
	SearchProducts(params models.SearchParams) (*models.ProductPage, error)
	DeleteProduct(id string) error

	GetInstallmentPlans() ([]models.InstallmentPlan, error)
	SaveInstallmentPlans(plans []models.InstallmentPlan) error

	Close() error
}

// Notifier — интерфейс доставки уведомления о заказе
type Notifier interface {
	SendOrder(ctx context.Context, req *models.OrderRequest) error
}

// PriceSource — источник актуальных цен для сверки при оформлении
type PriceSource interface {
	PriceByID(ctx context.Context, productID string) (float64, error)
}

// ImageUploader — интерфейс хранилища изображений
type ImageUploader interface {
	Upload(ctx context.Context, filename string, data io.Reader) (*models.ProductImage, error)
	Delete(ctx context.Context, publicID string) error
}
