package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/interfaces"
	"storefront/internal/metrics"
	"storefront/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

var _ interfaces.Database = (*PostgresDB)(nil)
var _ interfaces.PriceSource = (*PostgresDB)(nil)

// ErrNotFound — записи нет в каталоге.
var ErrNotFound = errors.New("запись не найдена")

type PostgresDB struct {
	Conn *sql.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &PostgresDB{Conn: db}, nil
}

func (p *PostgresDB) Close() error {
	return p.Conn.Close()
}

func (p *PostgresDB) SaveCategory(c *models.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
		c.CreatedAt = time.Now()
	}

	_, err := p.Conn.Exec(`
        INSERT INTO categories(id, name_ru, name_ky, slug, created_at)
        VALUES($1,$2,$3,$4,$5)
        ON CONFLICT (id) DO UPDATE SET name_ru=EXCLUDED.name_ru, name_ky=EXCLUDED.name_ky, slug=EXCLUDED.slug`,
		c.ID, c.NameRu, c.NameKy, c.Slug, c.CreatedAt)
	if err != nil {
		metrics.DBOperations.WithLabelValues("save", "error").Inc()
		return err
	}
	metrics.DBOperations.WithLabelValues("save", "success").Inc()
	return nil
}

func (p *PostgresDB) GetCategories() ([]models.Category, error) {
	rows, err := p.Conn.Query(`
        SELECT id, name_ru, name_ky, slug, created_at
        FROM categories ORDER BY created_at`)
	if err != nil {
		metrics.DBOperations.WithLabelValues("get", "error").Inc()
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Printf("Ошибка закрытия rows: %v", cerr)
		}
	}()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.NameRu, &c.NameKy, &c.Slug, &c.CreatedAt); err != nil {
			metrics.DBOperations.WithLabelValues("get", "error").Inc()
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при переборе категорий: %w", err)
	}

	metrics.DBOperations.WithLabelValues("get", "success").Inc()
	return categories, nil
}

func (p *PostgresDB) DeleteCategory(id string) error {
	res, err := p.Conn.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		metrics.DBOperations.WithLabelValues("delete", "error").Inc()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	metrics.DBOperations.WithLabelValues("delete", "success").Inc()
	return nil
}

func (p *PostgresDB) SaveProduct(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
		product.CreatedAt = time.Now()
	}

	tx, err := p.Conn.Begin()
	if err != nil {
		metrics.DBOperations.WithLabelValues("save", "error").Inc()
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(`
        INSERT INTO products(id, name_ru, name_ky, slug, description, price, category_id, created_at)
        VALUES($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (id) DO UPDATE SET
            name_ru=EXCLUDED.name_ru, name_ky=EXCLUDED.name_ky, slug=EXCLUDED.slug,
            description=EXCLUDED.description, price=EXCLUDED.price, category_id=EXCLUDED.category_id`,
		product.ID, product.NameRu, product.NameKy, product.Slug,
		product.Description, product.Price, product.CategoryID, product.CreatedAt)
	if err != nil {
		metrics.DBOperations.WithLabelValues("save", "error").Inc()
		return err
	}

	// картинки переписываются целиком
	_, err = tx.Exec(`DELETE FROM product_images WHERE product_id = $1`, product.ID)
	if err != nil {
		metrics.DBOperations.WithLabelValues("save", "error").Inc()
		return err
	}

	for i := range product.Images {
		img := &product.Images[i]
		if img.ID == "" {
			img.ID = uuid.NewString()
		}
		_, err = tx.Exec(`
            INSERT INTO product_images(id, product_id, url, public_id)
            VALUES($1,$2,$3,$4)`,
			img.ID, product.ID, img.URL, img.PublicID)
		if err != nil {
			metrics.DBOperations.WithLabelValues("save", "error").Inc()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		metrics.DBOperations.WithLabelValues("save", "error").Inc()
		return err
	}
	metrics.DBOperations.WithLabelValues("save", "success").Inc()
	return nil
}

func (p *PostgresDB) GetProduct(id string) (*models.Product, error) {
	product := &models.Product{}

	row := p.Conn.QueryRow(`
        SELECT p.id, p.name_ru, p.name_ky, p.slug, p.description, p.price, COALESCE(p.category_id, ''), p.created_at
        FROM products p WHERE p.id = $1`, id)

	err := row.Scan(&product.ID, &product.NameRu, &product.NameKy, &product.Slug,
		&product.Description, &product.Price, &product.CategoryID, &product.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.DBOperations.WithLabelValues("get", "error").Inc()
		return nil, fmt.Errorf("товар %s: %w", id, ErrNotFound)
	} else if err != nil {
		metrics.DBOperations.WithLabelValues("get", "error").Inc()
		return nil, err
	}

	if err := p.loadImages(product); err != nil {
		return nil, err
	}
	if err := p.loadCategory(product); err != nil {
		return nil, err
	}

	metrics.DBOperations.WithLabelValues("get", "success").Inc()
	return product, nil
}

func (p *PostgresDB) GetProductsByIDs(ids []string) ([]models.Product, error) {
	products := []models.Product{}
	for _, id := range ids {
		product, err := p.GetProduct(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				// удаленный товар просто выпадает из гидрации избранного
				continue
			}
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

func (p *PostgresDB) SearchProducts(params models.SearchParams) (*models.ProductPage, error) {
	where := " WHERE 1=1"
	args := []any{}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		where += fmt.Sprintf(" AND (p.name_ru ILIKE $%d OR p.name_ky ILIKE $%d)", len(args), len(args))
	}
	if params.CategoryID != "" {
		args = append(args, params.CategoryID)
		where += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}

	var total int
	if err := p.Conn.QueryRow(`SELECT COUNT(*) FROM products p`+where, args...).Scan(&total); err != nil {
		metrics.DBOperations.WithLabelValues("search", "error").Inc()
		return nil, err
	}

	// сортировка только по белому списку колонок
	orderBy := "p.created_at DESC"
	switch params.SortBy {
	case "price":
		orderBy = "p.price"
	case "name":
		orderBy = "p.name_ru"
	default:
		params.SortOrder = ""
	}
	if params.SortOrder == "desc" {
		orderBy += " DESC"
	}

	perPage := params.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, perPage, (page-1)*perPage)

	query := fmt.Sprintf(`
        SELECT p.id, p.name_ru, p.name_ky, p.slug, p.description, p.price, COALESCE(p.category_id, ''), p.created_at
        FROM products p %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)-1, len(args))

	rows, err := p.Conn.Query(query, args...)
	if err != nil {
		metrics.DBOperations.WithLabelValues("search", "error").Inc()
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Printf("Ошибка закрытия rows: %v", cerr)
		}
	}()

	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.NameRu, &product.NameKy, &product.Slug,
			&product.Description, &product.Price, &product.CategoryID, &product.CreatedAt); err != nil {
			metrics.DBOperations.WithLabelValues("search", "error").Inc()
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при переборе товаров: %w", err)
	}

	for i := range products {
		if err := p.loadImages(&products[i]); err != nil {
			return nil, err
		}
	}

	totalPages := (total + perPage - 1) / perPage

	metrics.DBOperations.WithLabelValues("search", "success").Inc()
	return &models.ProductPage{
		Products:    products,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (p *PostgresDB) DeleteProduct(id string) error {
	res, err := p.Conn.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		metrics.DBOperations.WithLabelValues("delete", "error").Inc()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	metrics.DBOperations.WithLabelValues("delete", "success").Inc()
	return nil
}

// PriceByID возвращает актуальную цену товара для сверки при оформлении.
func (p *PostgresDB) PriceByID(ctx context.Context, productID string) (float64, error) {
	var price float64
	err := p.Conn.QueryRowContext(ctx, `SELECT price FROM products WHERE id = $1`, productID).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return price, nil
}

func (p *PostgresDB) GetInstallmentPlans() ([]models.InstallmentPlan, error) {
	rows, err := p.Conn.Query(`SELECT months, percent FROM installment_settings ORDER BY months`)
	if err != nil {
		metrics.DBOperations.WithLabelValues("get", "error").Inc()
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Printf("Ошибка закрытия rows: %v", cerr)
		}
	}()

	plans := []models.InstallmentPlan{}
	for rows.Next() {
		var plan models.InstallmentPlan
		if err := rows.Scan(&plan.Months, &plan.Percent); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при переборе настроек рассрочки: %w", err)
	}
	return plans, nil
}

func (p *PostgresDB) SaveInstallmentPlans(plans []models.InstallmentPlan) error {
	tx, err := p.Conn.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM installment_settings`); err != nil {
		metrics.DBOperations.WithLabelValues("save", "error").Inc()
		return err
	}
	for _, plan := range plans {
		if _, err := tx.Exec(`INSERT INTO installment_settings(months, percent) VALUES($1,$2)`,
			plan.Months, plan.Percent); err != nil {
			metrics.DBOperations.WithLabelValues("save", "error").Inc()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		metrics.DBOperations.WithLabelValues("save", "error").Inc()
		return err
	}
	metrics.DBOperations.WithLabelValues("save", "success").Inc()
	return nil
}

func (p *PostgresDB) loadImages(product *models.Product) error {
	rows, err := p.Conn.Query(`
        SELECT id, url, public_id FROM product_images WHERE product_id = $1 ORDER BY id`, product.ID)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Printf("Ошибка закрытия rows: %v", cerr)
		}
	}()

	images := []models.ProductImage{}
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.URL, &img.PublicID); err != nil {
			return err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("ошибка при переборе картинок товара %s: %w", product.ID, err)
	}
	product.Images = images
	return nil
}

func (p *PostgresDB) loadCategory(product *models.Product) error {
	c := models.Category{}
	row := p.Conn.QueryRow(`
        SELECT id, name_ru, name_ky, slug, created_at FROM categories WHERE id = $1`, product.CategoryID)
	err := row.Scan(&c.ID, &c.NameRu, &c.NameKy, &c.Slug, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// категория могла быть удалена, товар остается без нее
		return nil
	} else if err != nil {
		return err
	}
	product.Category = &c
	return nil
}
