package service

import (
	"errors"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func namesOf(customers []model.Customer) []string {
	names := make([]string, 0, len(customers))
	for _, c := range customers {
		names = append(names, c.Name)
	}
	return names
}

func TestSortCustomersByName(t *testing.T) {
	customers := []model.Customer{
		{Name: "carlos"},
		{Name: "Ana"},
		{Name: "Beatriz"},
		{Name: "ana maría"},
	}

	SortCustomersByName(customers)

	// 西語locale、大小寫不敏感
	require.Equal(t, []string{"Ana", "ana maría", "Beatriz", "carlos"}, namesOf(customers))
}

func TestSortCustomersByName_Accents(t *testing.T) {
	customers := []model.Customer{
		{Name: "Óscar"},
		{Name: "Nubia"},
		{Name: "Pedro"},
	}

	SortCustomersByName(customers)

	// 重音字母照基底字母排序，Óscar不會掉到最後
	require.Equal(t, []string{"Nubia", "Óscar", "Pedro"}, namesOf(customers))
}

func TestGroupCustomersByInitial(t *testing.T) {
	customers := []model.Customer{
		{Name: "Ana"},
		{Name: "amparo"},
		{Name: "Beatriz"},
		{Name: "carlos"},
	}

	sections := GroupCustomersByInitial(customers)

	require.Len(t, sections, 3)
	require.Equal(t, "A", sections[0].Title)
	require.Equal(t, []string{"Ana", "amparo"}, namesOf(sections[0].Customers))
	require.Equal(t, "B", sections[1].Title)
	require.Equal(t, "C", sections[2].Title)
}

func TestGroupCustomersByInitial_Accents(t *testing.T) {
	customers := []model.Customer{
		{Name: "Álvaro"},
		{Name: "Ana"},
		{Name: "Nubia"},
		{Name: "Óscar"},
	}

	sections := GroupCustomersByInitial(customers)

	// 重音首字母跟基底字母同一組，不另開區塊
	require.Len(t, sections, 3)
	require.Equal(t, "A", sections[0].Title)
	require.Equal(t, []string{"Álvaro", "Ana"}, namesOf(sections[0].Customers))
	require.Equal(t, "N", sections[1].Title)
	require.Equal(t, "O", sections[2].Title)
	require.Equal(t, []string{"Óscar"}, namesOf(sections[2].Customers))
}

func TestGroupCustomersByInitial_NonLetter(t *testing.T) {
	customers := []model.Customer{
		{Name: "3 Esquinas"},
		{Name: "Ana"},
	}

	sections := GroupCustomersByInitial(customers)

	require.Len(t, sections, 2)
	require.Equal(t, "#", sections[0].Title)
	require.Equal(t, "A", sections[1].Title)
}

func TestGroupCustomersByInitial_Empty(t *testing.T) {
	sections := GroupCustomersByInitial(nil)
	require.NotNil(t, sections)
	require.Empty(t, sections)
}

func TestValidateCustomerFields(t *testing.T) {
	require.NoError(t, validateCustomerFields("Ana", "3001234567", "Calle 10"))
	require.ErrorIs(t, validateCustomerFields("", "3001234567", "Calle 10"), ErrMissingField)
	require.ErrorIs(t, validateCustomerFields("Ana", "", "Calle 10"), ErrMissingField)
	require.ErrorIs(t, validateCustomerFields("Ana", "3001234567", ""), ErrMissingField)
}

func TestTranslateDuplicatePhone(t *testing.T) {
	require.NoError(t, translateDuplicatePhone(nil))
	require.ErrorIs(t, translateDuplicatePhone(gorm.ErrDuplicatedKey), ErrDuplicatePhone)
	require.ErrorIs(t, translateDuplicatePhone(errors.New(`ERROR: duplicate key value violates unique constraint "uni_customers_phone" (SQLSTATE 23505)`)), ErrDuplicatePhone)

	other := errors.New("connection refused")
	require.ErrorIs(t, translateDuplicatePhone(other), other)
}

func TestParsePrice(t *testing.T) {
	price, err := parsePrice(" 2500 ")
	require.NoError(t, err)
	require.True(t, price.IntPart() == 2500)

	price, err = parsePrice("1234.56")
	require.NoError(t, err)
	require.Equal(t, "1234.56", price.String())

	_, err = parsePrice("abc")
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = parsePrice("-100")
	require.ErrorIs(t, err, ErrInvalidPrice)
}
