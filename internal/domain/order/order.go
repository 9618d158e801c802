package order

// Confirmation is the record handed to the order-success view after a
// checkout submission. It lives only in session navigation state: order
// numbers are opaque local tokens, not durable and not guaranteed unique
// across processes.
type Confirmation struct {
	OrderNumber string
	Email       string
}
