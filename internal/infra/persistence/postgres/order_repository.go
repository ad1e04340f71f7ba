package postgres

import (
	"context"

	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists an order together with its items and tracking record.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return toPersistenceError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}
	if orderM.Tracking != nil && order.Tracking != nil {
		order.Tracking.ID = orderM.Tracking.ID
		order.Tracking.OrderID = orderM.ID
	}

	return nil
}

// --- Mapper Functions ---

// fromOrderDomain converts a domain Order entity and its children to GORM models.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		ShippingAddress: data.ShippingAddress,
		Mobile:          data.Mobile,
		Total:           data.Total,
		Status:          data.Status.String(),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
			CreatedAt: data.CreatedAt,
		})
	}

	if tracking := data.Tracking; tracking != nil {
		orderM.Tracking = &model.OrderTrackingModel{
			TrackingID: tracking.TrackingID,
			PartnerID:  tracking.PartnerID,
			Status:     tracking.Status.String(),
			Details:    datatypes.JSONMap(tracking.Details),
			CreatedAt:  tracking.CreatedAt,
			UpdatedAt:  tracking.UpdatedAt,
		}
	}

	return orderM
}
