package mapper

import (
	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

func MapPagination(in httpclient.ApiPagination) domain.Pagination {
	return domain.Pagination{
		Total:       in.Total,
		PerPage:     in.PerPage,
		CurrentPage: in.CurrentPage,
		LastPage:    in.LastPage,
		From:        in.From,
		To:          in.To,
	}
}
