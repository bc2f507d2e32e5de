package ports

import (
	"foodorder/internal/core/domain/model/order"
)

// OrderEventPublisher notifies downstream consumers about order status
// changes. Handlers publish after the transaction commits, so a failed
// publish never rolls back the state change; it is logged and dropped.
type OrderEventPublisher interface {
	PublishOrderChanged(aggregate *order.Order) error
}
