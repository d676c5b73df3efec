package service

import (
	"errors"
	"fmt"

	"mozeh-api/models"
	"mozeh-api/statemachine"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderService owns the order lifecycle: creation, driver assignment, status
// advancement and cancellation, plus the role-scoped read views.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderItemInput is one checkout line. Name/price/image are snapshotted as
// sent — the product row is only a reference and may be deleted later.
type OrderItemInput struct {
	ProductID string  `json:"productId" binding:"required"`
	NameAr    string  `json:"name_ar"`
	Price     float64 `json:"price"`
	ImageURL  *string `json:"imageUrl"`
	Qty       int     `json:"qty" binding:"required,min=1"`
}

type CreateOrderInput struct {
	CustomerName string           `json:"customerName" binding:"required"`
	Phone        string           `json:"phone" binding:"required"`
	Address      string           `json:"address"`
	Notes        string           `json:"notes"`
	Items        []OrderItemInput `json:"items" binding:"required,min=1"`
}

// Create persists a new PENDING order for the given customer. The order and
// its items are written in one transaction; a half-created order is never
// observable. Total price is computed here, never trusted from the client.
func (s *OrderService) Create(customerID string, in CreateOrderInput) (*models.Order, error) {
	if customerID == "" || in.CustomerName == "" || in.Phone == "" || len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	var total float64
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Qty < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		total += it.Price * float64(it.Qty)
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			NameAr:    it.NameAr,
			Price:     it.Price,
			ImageURL:  it.ImageURL,
			Qty:       it.Qty,
		})
	}

	order := models.Order{
		CustomerID:   customerID,
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Address:      in.Address,
		Notes:        in.Notes,
		TotalPrice:   total,
		Status:       models.StatusPending,
		Version:      1,
		Items:        items,
	}

	if err := s.db.Create(&order).Error; err != nil {
		logrus.WithError(err).Error("order create failed")
		return nil, err
	}
	return &order, nil
}

// AssignDriver links a driver to an order and moves it to ASSIGNED. Calling
// it again while the order is still ASSIGNED re-targets the driver without
// changing status; assigning the already-assigned driver is a no-op.
func (s *OrderService) AssignDriver(orderID, driverID string) (*models.Order, error) {
	if driverID == "" {
		return nil, fmt.Errorf("%w: driver id is required", ErrValidation)
	}

	var driver models.User
	if err := s.db.First(&driver, "id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid driver", ErrValidation)
		}
		return nil, err
	}
	if driver.Role != models.RoleDriver {
		return nil, fmt.Errorf("%w: invalid driver", ErrValidation)
	}

	order, err := s.getForUpdate(orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case models.StatusPending:
		if err := statemachine.CanTransition(order.Status, models.StatusAssigned, models.RoleAdmin); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
	case models.StatusAssigned:
		if order.DriverID != nil && *order.DriverID == driverID {
			return s.Get(orderID)
		}
		// re-target: order stays ASSIGNED
	default:
		return nil, fmt.Errorf("%w: cannot assign a driver to a %s order", ErrInvalidTransition, order.Status)
	}

	if err := s.applyGuarded(order, map[string]any{
		"driver_id": driverID,
		"status":    models.StatusAssigned,
	}); err != nil {
		return nil, err
	}
	return s.Get(orderID)
}

// AdvanceStatus moves an order forward along ASSIGNED → PICKED_UP → DELIVERED.
// It never touches driver_id: delivery confirmation must not re-assign the
// order as a side effect. Repeating the order's current status is a no-op.
func (s *OrderService) AdvanceStatus(orderID string, target models.OrderStatus, actorID string, actorRole models.UserRole) (*models.Order, error) {
	order, err := s.getForUpdate(orderID)
	if err != nil {
		return nil, err
	}

	if actorRole == models.RoleDriver {
		if order.DriverID == nil || *order.DriverID != actorID {
			return nil, fmt.Errorf("%w: order is not assigned to this driver", ErrForbidden)
		}
	}

	// Re-issuing an already-applied advance is safe for callers to retry.
	if order.Status == target {
		return s.Get(orderID)
	}

	if err := statemachine.CanTransition(order.Status, target, actorRole); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	if err := s.applyGuarded(order, map[string]any{"status": target}); err != nil {
		return nil, err
	}
	return s.Get(orderID)
}

// Cancel terminates an order. Only valid from PENDING or ASSIGNED.
func (s *OrderService) Cancel(orderID string) (*models.Order, error) {
	order, err := s.getForUpdate(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.StatusCancelled {
		return s.Get(orderID)
	}
	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	if err := s.applyGuarded(order, map[string]any{"status": models.StatusCancelled}); err != nil {
		return nil, err
	}
	return s.Get(orderID)
}

// Get returns a single order with items and user summaries preloaded.
func (s *OrderService) Get(orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Preload("Customer").Preload("Driver").
		First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByCustomer returns the customer's own orders, newest first.
func (s *OrderService) ListByCustomer(customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ListByDriver returns orders assigned to the given driver, newest first.
// Unassigned orders are invisible to every driver.
func (s *OrderService) ListByDriver(driverID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Preload("Customer").
		Where("driver_id = ?", driverID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ListAll returns every order with customer and driver joined — admin view.
func (s *OrderService) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Preload("Customer").Preload("Driver").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// Stats is the admin dashboard aggregate. "pending" buckets PENDING with
// ASSIGNED, "delivering" is PICKED_UP.
type Stats struct {
	TotalOrders    int64 `json:"totalOrders"`
	Pending        int64 `json:"pending"`
	Delivering     int64 `json:"delivering"`
	Delivered      int64 `json:"delivered"`
	Cancelled      int64 `json:"cancelled"`
	TotalCustomers int64 `json:"totalCustomers"`
	TotalDrivers   int64 `json:"totalDrivers"`
}

// GetStats recomputes the dashboard counters on every call.
func (s *OrderService) GetStats() (*Stats, error) {
	var st Stats
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&st.TotalOrders, s.db.Model(&models.Order{})},
		{&st.Pending, s.db.Model(&models.Order{}).Where("status IN ?", []models.OrderStatus{models.StatusPending, models.StatusAssigned})},
		{&st.Delivering, s.db.Model(&models.Order{}).Where("status = ?", models.StatusPickedUp)},
		{&st.Delivered, s.db.Model(&models.Order{}).Where("status = ?", models.StatusDelivered)},
		{&st.Cancelled, s.db.Model(&models.Order{}).Where("status = ?", models.StatusCancelled)},
		{&st.TotalCustomers, s.db.Model(&models.User{}).Where("role = ?", models.RoleCustomer)},
		{&st.TotalDrivers, s.db.Model(&models.User{}).Where("role = ?", models.RoleDriver)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &st, nil
}

func (s *OrderService) getForUpdate(orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// applyGuarded writes a lifecycle mutation with an optimistic version check.
// Losing a race against a concurrent mutation surfaces as ErrConflict rather
// than silently last-write-wins.
func (s *OrderService) applyGuarded(order *models.Order, updates map[string]any) error {
	updates["version"] = order.Version + 1
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND version = ?", order.ID, order.Version).
		Updates(updates)
	if res.Error != nil {
		logrus.WithError(res.Error).WithField("order", order.ID).Error("order update failed")
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: order %s was modified concurrently", ErrConflict, order.ID)
	}
	return nil
}
