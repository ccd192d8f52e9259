package checkout

import (
	"context"
	"testing"

	"veluxe-store/internal/api"
	"veluxe-store/internal/cart"
	"veluxe-store/internal/catalog"
	"veluxe-store/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Post(ctx context.Context, path string, body, out any) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

func authedSession() *session.Session {
	s := session.New()
	s.SetCredentials("u1", "opaque-token")
	return s
}

func fixtureBasket() Basket {
	return BasketFromCart([]cart.Line{
		{CartID: 1, Quantity: 2, Product: catalog.Product{ID: 11, Name: "A", Price: 100}},
		{CartID: 2, Quantity: 1, Product: catalog.Product{ID: 12, Name: "B", Price: 50}},
	})
}

func TestService_Submit(t *testing.T) {
	t.Run("Unauthenticated blocks before any network call", func(t *testing.T) {
		mockClient := new(MockClient)
		svc := NewService(mockClient, session.New())

		_, err := svc.Submit(context.Background(), fixtureBasket(), validForm())

		assert.ErrorIs(t, err, session.ErrUnauthenticated)
		mockClient.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid form blocks before any network call", func(t *testing.T) {
		mockClient := new(MockClient)
		svc := NewService(mockClient, authedSession())
		form := validForm()
		form.Email = "not-an-email"

		_, err := svc.Submit(context.Background(), fixtureBasket(), form)

		ve, ok := IsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "email")
		mockClient.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty basket blocks submit", func(t *testing.T) {
		mockClient := new(MockClient)
		svc := NewService(mockClient, authedSession())

		_, err := svc.Submit(context.Background(), Basket{}, validForm())

		assert.ErrorIs(t, err, ErrEmptyBasket)
		mockClient.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Payload carries derived totals and captured prices", func(t *testing.T) {
		// Arrange
		mockClient := new(MockClient)
		svc := NewService(mockClient, authedSession())

		var gotReq orderRequest
		mockClient.On("Post", mock.Anything, "/api/order/create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				gotReq = args.Get(2).(orderRequest)
				out := args.Get(3).(*orderResponse)
				out.Message = "Order placed successfully!"
				out.Order.OrderID = 77
			}).
			Return(nil)

		// Act
		receipt, err := svc.Submit(context.Background(), fixtureBasket(), validForm())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(77), receipt.OrderID)
		assert.Equal(t, "u1", gotReq.UserID)
		assert.Equal(t, 1, gotReq.Status)
		assert.Equal(t, 20.0, gotReq.ShippingCharge)
		assert.Equal(t, 20.0, gotReq.Tax)
		assert.Equal(t, 290.0, gotReq.TotalPrice)
		require.Len(t, gotReq.OrderItems, 2)
		assert.Equal(t, orderItemPayload{ProductID: 11, Quantity: 2, Price: 100}, gotReq.OrderItems[0])
		assert.Equal(t, "Karnataka", gotReq.State)
		mockClient.AssertExpectations(t)
	})

	t.Run("Server message surfaces verbatim", func(t *testing.T) {
		mockClient := new(MockClient)
		svc := NewService(mockClient, authedSession())
		apiErr := &api.APIError{StatusCode: 422, Message: "insufficient stock for product 11", Err: api.ErrInvalidRequest}
		mockClient.On("Post", mock.Anything, "/api/order/create", mock.Anything, mock.Anything).
			Return(apiErr)

		_, err := svc.Submit(context.Background(), fixtureBasket(), validForm())

		require.Error(t, err)
		assert.ErrorContains(t, err, "insufficient stock for product 11")
	})
}
