package request

// ClientOrderLineRequest is one cart line from the storefront
type ClientOrderLineRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Price    int64  `json:"price" binding:"min=0"`
	Note     string `json:"note" binding:"max=500"`
}

// CreateClientOrderRequest is the public storefront checkout payload
type CreateClientOrderRequest struct {
	Phone           string                   `json:"phone" binding:"required,max=30"`
	DeliveryType    string                   `json:"delivery_type" binding:"required"`
	DeliveryAddress *string                  `json:"delivery_address"`
	OrderType       string                   `json:"order_type"`
	Lines           []ClientOrderLineRequest `json:"order_details" binding:"required,min=1,dive"`
}

// UpdateClientOrderStatusRequest advances a storefront order
type UpdateClientOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
