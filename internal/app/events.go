package app

import (
	"context"
	"encoding/json"
	"fmt"

	catalogdomain "github.com/neonshop/commerce-core/internal/catalog/domain"
	orderdomain "github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/kafka"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// orderEventPublisher adapts the Kafka publisher to the event contract
// the order commands expect.
type orderEventPublisher struct {
	publisher *kafka.Publisher
}

func (p *orderEventPublisher) PublishOrderPlaced(ctx context.Context, order *orderdomain.Order) error {
	items := make([]kafka.OrderItemEvent, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, kafka.OrderItemEvent{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return p.publisher.PublishOrderPlaced(ctx, kafka.OrderPlacedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Items:       items,
		Total:       order.Total,
	})
}

func (p *orderEventPublisher) PublishOrderStatusChanged(ctx context.Context, order *orderdomain.Order, previousStatus string) error {
	return p.publisher.PublishOrderStatusChanged(ctx, kafka.OrderStatusChangedEvent{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		PreviousStatus: previousStatus,
		NewStatus:      order.Status,
	})
}

// stockDecrementHandler returns the order.placed handler that takes the
// ordered quantities out of stock.
func stockDecrementHandler(products catalogdomain.ProductRepository) kafka.EventHandler {
	return func(ctx context.Context, payload []byte) error {
		var event kafka.OrderPlacedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to unmarshal order.placed event: %w", err)
		}

		for _, item := range event.Items {
			if _, err := products.AdjustStock(item.ProductID, -item.Quantity); err != nil {
				logger.Error(ctx).
					Err(err).
					Uint("order_id", event.OrderID).
					Uint("product_id", item.ProductID).
					Int("quantity", item.Quantity).
					Msg("Failed to decrement stock")
				continue
			}
			if err := products.RecordSale(item.ProductID, item.Quantity); err != nil {
				logger.Warn(ctx).
					Err(err).
					Uint("product_id", item.ProductID).
					Msg("Failed to record sale")
			}
		}
		return nil
	}
}
