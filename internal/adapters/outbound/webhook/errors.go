package webhook

import "errors"

var (
	ErrDelivery       = errors.New("webhook delivery")
	ErrPermanentReply = errors.New("webhook rejected notification")
)
