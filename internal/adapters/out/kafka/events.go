// Package kafka publishes order lifecycle events to a Kafka topic.
// Publishing is the asynchronous boundary of the system: the HTTP
// request that placed the order has already committed by the time an
// event leaves this package, and a lost event never unwinds the order.
package kafka

import "time"

// EventType identifies the kind of order event on the wire.
type EventType string

const (
	EventTypeOrderPlaced EventType = "order.placed"
)

// OrderPlacedEvent is the JSON payload announcing a cart-to-order
// transition. Consumers use it to notify the buyer and the sellers.
type OrderPlacedEvent struct {
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id"`
	BuyerID   string    `json:"buyer_id"`
	Timestamp time.Time `json:"timestamp"`
}
