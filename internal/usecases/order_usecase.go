package usecases

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/domain/repositories"
)

// MsgOrderCreated is returned after a successful order placement
const MsgOrderCreated = "Ur order was created. U get a message with details of order"

// OrderUsecase handles order placement and history
type OrderUsecase struct {
	orderRepo repositories.OrderRepository
	goodRepo  repositories.GoodRepository
	uow       repositories.UnitOfWork
	notifier  Notifier
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	goodRepo repositories.GoodRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		goodRepo:  goodRepo,
		uow:       uow,
		notifier:  notifier,
	}
}

type orderItem struct {
	goodID   int64
	quantity int
}

// mergeItems pairs goods with quantities by position and sums repeated goods,
// keeping first-seen order. A merged quantity may not exceed MaxLineQuantity.
func mergeItems(goodIDs []int64, counts []int) ([]orderItem, error) {
	if len(goodIDs) == 0 || len(goodIDs) != len(counts) {
		return nil, domainerrors.Validation("product_list and count_list must be non-empty and of equal length")
	}

	index := make(map[int64]int, len(goodIDs))
	items := make([]orderItem, 0, len(goodIDs))
	for i, id := range goodIDs {
		if counts[i] <= 0 {
			return nil, domainerrors.Validation("count_list values must be greater than 0")
		}
		if counts[i] > entities.MaxLineQuantity {
			return nil, errQuantityTooLarge(id)
		}
		if pos, ok := index[id]; ok {
			if items[pos].quantity > entities.MaxLineQuantity-counts[i] {
				return nil, errQuantityTooLarge(id)
			}
			items[pos].quantity += counts[i]
			continue
		}
		index[id] = len(items)
		items = append(items, orderItem{goodID: id, quantity: counts[i]})
	}
	return items, nil
}

func errQuantityTooLarge(goodID int64) error {
	return domainerrors.Validation(fmt.Sprintf("quantity of good %d must be less than or equal to %d", goodID, entities.MaxLineQuantity))
}

// linePrice is unit price times quantity rounded to cents
func linePrice(unitPrice float64, quantity int) float64 {
	total, _ := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))).Round(2).Float64()
	return total
}

// AddOrder places an order for a verified customer. Every good is resolved
// before anything is written.
func (u *OrderUsecase) AddOrder(ctx context.Context, customer *entities.User, input *entities.AddOrderInput) (string, error) {
	if !customer.IsVerified {
		return "", domainerrors.CustomerNotVerified()
	}

	items, err := mergeItems(input.ProductList, input.CountList)
	if err != nil {
		return "", err
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.goodID)
	}

	var ordered []entities.OrderedItem
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		goods, err := u.goodRepo.GetForOrder(ctx, ids)
		if err != nil {
			return err
		}

		var missing []int64
		for _, id := range ids {
			if _, ok := goods[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return domainerrors.UnknownGoods(missing)
		}

		order := &entities.Order{CustomerID: customer.ID, ShipCountry: input.Country}
		if err := u.orderRepo.Create(ctx, order); err != nil {
			return err
		}

		details := make([]*entities.OrderDetail, 0, len(items))
		ordered = make([]entities.OrderedItem, 0, len(items))
		for _, item := range items {
			good := goods[item.goodID]
			details = append(details, &entities.OrderDetail{
				OrderID:  order.ID,
				GoodID:   good.ID,
				Quantity: item.quantity,
				Price:    linePrice(good.UnitPrice, item.quantity),
			})
			ordered = append(ordered, entities.OrderedItem{
				SellerEmail: good.SellerEmail,
				GoodName:    good.Name,
				Count:       item.quantity,
			})
		}
		return u.orderRepo.CreateDetails(ctx, details)
	})
	if err != nil {
		return "", err
	}

	u.notifier.OrderPlaced(ctx, customer.Email, ordered)
	return MsgOrderCreated, nil
}

// DeleteOrder removes an order and its lines
func (u *OrderUsecase) DeleteOrder(ctx context.Context, id int64) (string, error) {
	if err := u.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.OrderNotFound()
		}
		return "", err
	}
	return fmt.Sprintf("Order #%d was deleted", id), nil
}

// ListMyOrders renders the caller's orders, one description per order
func (u *OrderUsecase) ListMyOrders(ctx context.Context, customer *entities.User) ([]entities.OrderSummary, error) {
	lines, err := u.orderRepo.ListCustomerLines(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domainerrors.OrdersNotFound()
	}

	grouped := make(map[int64][]string)
	var orderIDs []int64
	for _, line := range lines {
		if _, ok := grouped[line.OrderID]; !ok {
			orderIDs = append(orderIDs, line.OrderID)
		}
		grouped[line.OrderID] = append(grouped[line.OrderID], fmt.Sprintf(
			"|Good: %s, price: %s, count: %d, country: %s",
			line.GoodName, formatPrice(line.UnitPrice), line.Quantity, line.ShipCountry,
		))
	}
	sort.Slice(orderIDs, func(i, j int) bool { return orderIDs[i] < orderIDs[j] })

	summaries := make([]entities.OrderSummary, 0, len(orderIDs))
	for _, id := range orderIDs {
		summaries = append(summaries, entities.OrderSummary{
			ID:          id,
			Description: strings.Join(grouped[id], "| "),
		})
	}
	return summaries, nil
}

// formatPrice prints whole prices with one decimal ("20.0")
func formatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
