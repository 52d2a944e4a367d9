package service

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrDuplicateName   = errors.New("product name already exists")
)

type IProductService interface {
	CreateProduct(ctx context.Context, name string, price string) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id uint, name string, price string) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	productRepo *db.ProductRepo
}

func NewProductService(productRepo *db.ProductRepo) IProductService {
	return &ProductService{productRepo: productRepo}
}

// 價格從表單進來是字串，這裡統一解析與驗證
func parsePrice(price string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	if parsed.IsNegative() {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	return parsed, nil
}

func translateDuplicateName(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "23505") {
		return ErrDuplicateName
	}
	return err
}

func (p *ProductService) CreateProduct(ctx context.Context, name string, price string) (*model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingField
	}
	parsed, err := parsePrice(price)
	if err != nil {
		return nil, err
	}

	product, err := p.productRepo.CreateProduct(&model.Product{
		Name:  strings.TrimSpace(name),
		Price: parsed,
	})
	if err != nil {
		return nil, translateDuplicateName(err)
	}
	return product, nil
}

func (p *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := p.productRepo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (p *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return p.productRepo.GetAllProducts()
}

func (p *ProductService) UpdateProduct(ctx context.Context, id uint, name string, price string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingField
	}
	parsed, err := parsePrice(price)
	if err != nil {
		return err
	}

	err = p.productRepo.UpdateProduct(&model.Product{
		ProductID: id,
		Name:      strings.TrimSpace(name),
		Price:     parsed,
	})
	if errors.Is(err, db.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return translateDuplicateName(err)
}

func (p *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	err := p.productRepo.DeleteProduct(id)
	if errors.Is(err, db.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}
