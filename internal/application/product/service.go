package product

import (
	"context"
	"fmt"

	"horizonx-storefront/internal/domain"
	"horizonx-storefront/internal/jsonx"
)

type Service struct {
	api domain.BackendClient
}

func NewService(api domain.BackendClient) domain.ProductService {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context, token string) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.api.Get(ctx, domain.EndpointMyProducts, token, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

func (s *Service) Create(ctx context.Context, token string, req domain.ProductSaveRequest) error {
	price, err := jsonx.ParseFloat(req.Price)
	if err != nil {
		return fmt.Errorf("create product: price: %w", err)
	}

	quantity, err := jsonx.ParseInt(req.Quantity)
	if err != nil {
		return fmt.Errorf("create product: quantity: %w", err)
	}

	payload := domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Quantity:    quantity,
	}

	var reply domain.Reply
	if err := s.api.Post(ctx, domain.EndpointAddProduct, token, payload, &reply); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	if !reply.Acknowledged() {
		return fmt.Errorf("create product: %w", domain.ErrNotSucceeded)
	}

	return nil
}
