package verify_payment

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	c := req.Confirmation

	if strings.TrimSpace(c.OrderID) == "" {
		return fmt.Errorf("%w: orderId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.PaymentID) == "" {
		return fmt.Errorf("%w: paymentId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Signature) == "" {
		return fmt.Errorf("%w: signature is required", ErrInvalidInput)
	}

	return nil
}
