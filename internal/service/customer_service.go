package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrDuplicatePhone   = errors.New("phone already exists")
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerSection 依首字母分組後的一段客戶清單
type CustomerSection struct {
	Title     string           `json:"title"`
	Customers []model.Customer `json:"customers"`
}

type ICustomerService interface {
	CreateCustomer(ctx context.Context, name, phone, address string) (*model.Customer, error)
	GetCustomer(ctx context.Context, id uint) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListCustomerSections(ctx context.Context) ([]CustomerSection, error)
	UpdateCustomer(ctx context.Context, id uint, name, phone, address string) error
	DeleteCustomer(ctx context.Context, id uint) error
}

type CustomerService struct {
	customerRepo *db.CustomerRepo
}

func NewCustomerService(customerRepo *db.CustomerRepo) ICustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// 名稱、電話、地址皆為必填
func validateCustomerFields(name, phone, address string) error {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(phone) == "" ||
		strings.TrimSpace(address) == "" {
		return ErrMissingField
	}
	return nil
}

// 電話有唯一約束，後端回報重複時轉成ErrDuplicatePhone
func translateDuplicatePhone(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "23505") {
		return ErrDuplicatePhone
	}
	return err
}

func (c *CustomerService) CreateCustomer(ctx context.Context, name, phone, address string) (*model.Customer, error) {
	if err := validateCustomerFields(name, phone, address); err != nil {
		return nil, err
	}

	customer, err := c.customerRepo.CreateCustomer(&model.Customer{
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	})
	if err != nil {
		return nil, translateDuplicatePhone(err)
	}
	return customer, nil
}

func (c *CustomerService) GetCustomer(ctx context.Context, id uint) (*model.Customer, error) {
	customer, err := c.customerRepo.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

// ListCustomers 回傳依名稱排序的客戶清單
// DB已先排序，這裡再用西語collation整理一次，確保帶重音的名稱分組穩定
func (c *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := c.customerRepo.GetAllCustomers()
	if err != nil {
		return nil, err
	}
	SortCustomersByName(customers)
	return customers, nil
}

func (c *CustomerService) ListCustomerSections(ctx context.Context) ([]CustomerSection, error) {
	customers, err := c.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return GroupCustomersByInitial(customers), nil
}

func (c *CustomerService) UpdateCustomer(ctx context.Context, id uint, name, phone, address string) error {
	if err := validateCustomerFields(name, phone, address); err != nil {
		return err
	}

	err := c.customerRepo.UpdateCustomer(&model.Customer{
		CustomerID: id,
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		Address:    strings.TrimSpace(address),
	})
	if errors.Is(err, db.ErrRecordNotFound) {
		return ErrCustomerNotFound
	}
	return translateDuplicatePhone(err)
}

func (c *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	err := c.customerRepo.DeleteCustomer(id)
	if errors.Is(err, db.ErrRecordNotFound) {
		return ErrCustomerNotFound
	}
	return err
}

// SortCustomersByName 西語locale排序
func SortCustomersByName(customers []model.Customer) {
	collator := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(customers, func(i, j int) bool {
		return collator.CompareString(customers[i].Name, customers[j].Name) < 0
	})
}

// 去掉附加符號，重音字母跟基底字母歸在同一組
var initialFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sectionTitle 首字母的分組標題，非字母開頭歸到 "#"
func sectionTitle(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(r) {
		return "#"
	}
	folded, _, err := transform.String(initialFolder, string(r))
	if err != nil {
		folded = string(r)
	}
	return strings.ToUpper(folded)
}

// GroupCustomersByInitial 依名稱首字母分組，輸入需已排序
func GroupCustomersByInitial(customers []model.Customer) []CustomerSection {
	sections := []CustomerSection{}
	for _, customer := range customers {
		title := sectionTitle(customer.Name)
		if n := len(sections); n > 0 && sections[n-1].Title == title {
			sections[n-1].Customers = append(sections[n-1].Customers, customer)
			continue
		}
		sections = append(sections, CustomerSection{
			Title:     title,
			Customers: []model.Customer{customer},
		})
	}
	return sections
}
