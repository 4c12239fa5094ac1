package postgres_test

import "github.com/jhoicas/Repuestos-api/internal/application/dto"

func dtoPart(articleNumber string, qty int) dto.SparePartRequest {
	return dto.SparePartRequest{InternalArticleNumber: articleNumber, Name: "Integration", Quantity: qty}
}
