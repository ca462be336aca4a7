package request

type Checkout struct {
	PaymentMethod string            `validate:"required,oneof=card upi wallet" json:"payment_method"`
	Details       map[string]string `                                         json:"details"`
}

// OrderDetails flattens the request into the supplementary detail fields
// stored on the order.
func (r Checkout) OrderDetails() map[string]string {
	details := make(map[string]string, len(r.Details)+1)
	for k, v := range r.Details {
		details[k] = v
	}
	details["payment_method"] = r.PaymentMethod
	return details
}
