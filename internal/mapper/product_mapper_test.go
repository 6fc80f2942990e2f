package mapper

import (
	"testing"
	"time"

	"techmart-be/internal/entity"
	"techmart-be/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductMapperKeepsReviewOrder(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p := &entity.Product{
		Id:       "P010",
		Name:     "Desk Lamp",
		Category: entity.CategoryHome,
		Price:    decimal.RequireFromString("24.50"),
		Specs:    []string{"LED", "USB-C"},
		Reviews: []entity.Review{
			{Rating: 5, Text: "bright", CreatedAt: now},
			{Rating: 3, Text: "wobbly", CreatedAt: now.Add(time.Hour)},
		},
	}

	m := NewProductMapper().ToModel(p)
	require.Len(t, m.Reviews, 2)
	assert.Equal(t, "Home", m.Category)

	back := NewProductMapper().ToEntity(m)
	assert.Equal(t, "bright", back.Reviews[0].Text)
	assert.Equal(t, "wobbly", back.Reviews[1].Text)
	assert.Equal(t, []string{"LED", "USB-C"}, back.Specs)
	assert.True(t, p.Price.Equal(back.Price))
}

func TestOrderMapperSortsItemsByPosition(t *testing.T) {
	m := &model.Order{
		Id:     "ABCD1234",
		Status: "Pending",
		Items: []model.OrderItem{
			{Position: 1, ProductId: "P002", Quantity: 1},
			{Position: 0, ProductId: "P001", Quantity: 2},
		},
	}

	o := NewOrderMapper().ToEntity(m)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "P001", o.Items[0].ProductId)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
}

func TestNilMapping(t *testing.T) {
	assert.Nil(t, NewProductMapper().ToEntity(nil))
	assert.Nil(t, NewOrderMapper().ToModel(nil))
}
