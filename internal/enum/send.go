package enum

type SendStatus string

const (
	SendStatusSuccess SendStatus = "success"
	SendStatusFailed  SendStatus = "failed"
)

func (t SendStatus) String() string {
	return string(t)
}

type SendMedium string

const (
	SendMediumEmail SendMedium = "email"
)

func (t SendMedium) String() string {
	return string(t)
}

type SendDirection string

const (
	SendDirectionSent SendDirection = "sent"
)

func (t SendDirection) String() string {
	return string(t)
}

// DeliveryStatus tracks provider-side delivery events reported via webhook
// after a send has already been recorded.
type DeliveryStatus string

const (
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusOpened     DeliveryStatus = "opened"
	DeliveryStatusClicked    DeliveryStatus = "clicked"
	DeliveryStatusBounced    DeliveryStatus = "bounced"
	DeliveryStatusComplained DeliveryStatus = "complained"
)

func (t DeliveryStatus) String() string {
	return string(t)
}
