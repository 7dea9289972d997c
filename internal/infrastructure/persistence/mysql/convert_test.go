package mysql

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/order"
)

func TestBookModelConversion(t *testing.T) {
	b, err := book.NewBook(book.Params{
		Title:        "Go",
		Description:  "a\nb",
		Price:        decimal.RequireFromString("12.50"),
		PromoPrice:   decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
		Active:       true,
		UnitsInStock: 3,
	})
	require.NoError(t, err)
	b.AuthorID = "a1"
	b.AddCategory("c1")
	b.AddCategory("c2")

	got := toBookEntity(toBookModel(b))

	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.AuthorID, got.AuthorID)
	assert.Equal(t, []string{"c1", "c2"}, got.CategoryIDs)
	assert.True(t, b.Price.Equal(got.Price))
	assert.True(t, got.PromoPrice.Valid)
	assert.Equal(t, "9.99", got.PromoPrice.Decimal.StringFixed(2))
	assert.Nil(t, got.Ratings)
}

func TestOrderModelConversion(t *testing.T) {
	c := order.NewCustomer("Ann", "Lee", "ann@example.com")
	o := order.NewOrder(3, decimal.RequireFromString("30"))
	o.TrackingNumber = order.NewTrackingNumber()
	o.AddItem(order.NewOrderItem("b1", "img", decimal.RequireFromString("10"), 3))
	o.SetAddresses(order.NewAddress("s", "c", "st", "US", "1"), order.NewAddress("s2", "c2", "st", "US", "2"))
	c.AddOrder(o)

	model := toOrderModel(o)
	require.Len(t, model.Items, 1)
	assert.Equal(t, o.ID, model.Items[0].OrderID)
	assert.Equal(t, c.ID, model.CustomerID)

	model.Customer = &CustomerModel{ID: c.ID, Email: c.Email}
	model.ShippingAddress = toAddressModel(o.ShippingAddress)
	got := toOrderEntity(model)

	assert.Equal(t, o.TrackingNumber, got.TrackingNumber)
	assert.Equal(t, c.ID, got.CustomerID)
	require.NotNil(t, got.Customer)
	assert.Same(t, got, got.Customer.Orders[0])
	assert.Equal(t, got.ID, got.Items[0].OrderID)
	assert.Equal(t, "s", got.ShippingAddress.Street)
	assert.Nil(t, got.BillingAddress)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%go%", likePattern("go"))
	assert.Equal(t, `%100\%\_off%`, likePattern("100%_off"))
}
