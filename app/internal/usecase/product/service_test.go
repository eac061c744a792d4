package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/solar-directory/app/internal/domain/product"
)

type mockProductRepository struct {
	products   map[int64]*domproduct.Product
	lastFilter *domproduct.ListFilter
}

func newMockProductRepository(items ...*domproduct.Product) *mockProductRepository {
	m := &mockProductRepository{products: make(map[int64]*domproduct.Product)}
	for _, p := range items {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if product, ok := m.products[id]; ok {
		cloned := *product
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	m.lastFilter = &filter
	var result []*domproduct.Product
	for _, p := range m.products {
		if filter.OnlyActive && !p.IsActive {
			continue
		}
		if filter.CompanyID != nil && p.CompanyID != *filter.CompanyID {
			continue
		}
		cloned := *p
		result = append(result, &cloned)
	}
	return result, nil
}

func TestGetProduct_Found(t *testing.T) {
	price := 899.9
	repo := newMockProductRepository(&domproduct.Product{ID: 1, CompanyID: 7, Name: "Painel 550W", Price: &price, IsActive: true})
	svc := NewService(repo)

	product, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	require.Equal(t, "Painel 550W", product.Name)
	require.Equal(t, 899.9, *product.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewService(newMockProductRepository())

	product, err := svc.GetByID(context.Background(), 999)

	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
	require.Nil(t, product)
}

func TestListByCompany_OnlyActiveOfCompany(t *testing.T) {
	repo := newMockProductRepository(
		&domproduct.Product{ID: 1, CompanyID: 7, Name: "Painel", IsActive: true},
		&domproduct.Product{ID: 2, CompanyID: 7, Name: "Descontinuado", IsActive: false},
		&domproduct.Product{ID: 3, CompanyID: 8, Name: "Inversor", IsActive: true},
	)
	svc := NewService(repo)

	products, err := svc.ListByCompany(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, int64(1), products[0].ID)
	require.True(t, repo.lastFilter.OnlyActive)
	require.Equal(t, int64(7), *repo.lastFilter.CompanyID)
}
