package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderErrorGetMessage(t *testing.T) {
	assertion := assert.New(t)

	assertion.Equal("msg", (&OrderError{Error: "err", Message: "msg"}).GetMessage())
	assertion.Equal("details", (&OrderError{ErrorDetails: "details"}).GetMessage())
	assertion.Equal("err", (&OrderError{Error: "err"}).GetMessage())
	assertion.Equal("preview", (&OrderError{PreviewFailureReason: "preview"}).GetMessage())
	assertion.Equal("", (&OrderError{}).GetMessage())
}

func TestIsDuplicateClientOrderId(t *testing.T) {
	assertion := assert.New(t)

	assertion.True((&OrderError{Message: "Duplicate client_order_id"}).IsDuplicateClientOrderId())
	assertion.True((&OrderError{ErrorDetails: "CLIENT_ORDER_ID already exists"}).IsDuplicateClientOrderId())
	assertion.False((&OrderError{Message: "INSUFFICIENT_FUND"}).IsDuplicateClientOrderId())
	assertion.False((&OrderError{}).IsDuplicateClientOrderId())
}

func TestCreateOrderResponseGetOrderId(t *testing.T) {
	assertion := assert.New(t)

	flat := CreateOrderResponse{OrderId: "top-level"}
	assertion.Equal("top-level", flat.GetOrderId())

	nested := CreateOrderResponse{
		SuccessResponse: &OrderSuccessResponse{OrderId: "nested"},
	}
	assertion.Equal("nested", nested.GetOrderId())

	empty := CreateOrderResponse{}
	assertion.Equal("", empty.GetOrderId())
}
