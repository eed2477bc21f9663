package response

import (
	"time"

	"cellar-shop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	PriceCents Money          `json:"price"`
	HasSizes   bool           `json:"hasSizes"`
	Sizes      map[string]int `json:"sizes,omitempty"`
	TotalStock int            `json:"totalStock"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type CreateProductResponse struct {
	ID         uuid.UUID `json:"id"`
	TotalStock int       `json:"totalStock"`
}

func FromProductView(v *queries.ProductView) (ProductResponse, error) {
	var res ProductResponse
	if err := copier.Copy(&res, v); err != nil {
		return ProductResponse{}, err
	}
	return res, nil
}

func FromProductPage(page *queries.ProductPage) (ProductListResponse, error) {
	res := ProductListResponse{
		Items:  make([]ProductResponse, 0, len(page.Items)),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, v := range page.Items {
		item, err := FromProductView(v)
		if err != nil {
			return ProductListResponse{}, err
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}
