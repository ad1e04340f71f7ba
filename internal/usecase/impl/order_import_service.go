package impl

import (
	"context"
	"log/slog"

	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/domain/resolver"
	"megaskyshop/internal/errors"
	"megaskyshop/internal/infra/csvimport"
	"megaskyshop/internal/usecase"
)

// orderImportService implements ImportUsecase for order exports.
type orderImportService struct {
	runner      *importRunner
	productRepo repository.ProductRepository

	products *resolver.ProductMatcher
}

// NewOrderImportService is the constructor for orderImportService.
func NewOrderImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &orderImportService{
		runner:      newImportRunner(params),
		productRepo: params.ProductRepo,
	}
}

// Dataset returns the orders dataset.
func (srv *orderImportService) Dataset() entity.Dataset {
	return entity.DatasetOrders
}

// Import reads an order export.
func (srv *orderImportService) Import(ctx context.Context, opts usecase.ImportOptions) (*entity.ImportSummary, error) {
	return run(ctx, srv.runner, rowImporter[*csvimport.OrderRow]{
		dataset: entity.DatasetOrders,
		schema:  csvimport.OrderSchema(),
		prepare: srv.loadProducts,
		decode: func(dec *csvimport.Decoder, rec csvimport.Record) (*csvimport.OrderRow, error) {
			return dec.DecodeOrder(rec)
		},
		persist: srv.persist,
	}, opts)
}

// loadProducts snapshots product names for item matching.
func (srv *orderImportService) loadProducts(ctx context.Context) error {
	refs, err := srv.productRepo.ListRefs(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load product names")
	}

	srv.products = resolver.NewProductMatcher(refs)
	srv.runner.log(ctx).Debug("Product snapshot loaded", slog.Int("products", srv.products.Len()))

	return nil
}

func (srv *orderImportService) persist(ctx context.Context, repos repository.RepositoryFactory, row *csvimport.OrderRow) (bool, error) {
	order := srv.buildOrder(ctx, row)

	if err := repos.NewOrderRepository().Create(ctx, order); err != nil {
		return false, err
	}

	return false, nil
}

func (srv *orderImportService) buildOrder(ctx context.Context, row *csvimport.OrderRow) *entity.Order {
	order := &entity.Order{
		Name:            row.Name,
		Email:           row.Email,
		ShippingAddress: row.ShippingAddress,
		Mobile:          row.Mobile,
		Total:           row.Total,
		Status:          row.Status,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	for _, itemRow := range row.Items {
		item := &entity.OrderItem{
			Name:     itemRow.Name,
			Quantity: itemRow.Quantity,
			Price:    itemRow.Price,
			Image:    itemRow.Image,
		}

		productID, kind := srv.products.Match(itemRow.Name)
		if kind != resolver.MatchNone {
			item.ProductID = &productID
		}
		srv.runner.log(ctx).Debug("Order item matched",
			slog.Int("line", row.Line),
			slog.Int("slot", itemRow.Slot),
			slog.String("name", itemRow.Name),
			slog.String("match", kind.String()),
		)

		order.Items = append(order.Items, item)
	}

	if !row.TotalProvided && len(order.Items) > 0 {
		order.Total = row.ItemsTotal()
	}

	if courier := row.Courier; courier != nil {
		order.Tracking = &entity.OrderTracking{
			TrackingID: courier.TrackingID,
			PartnerID:  courier.PartnerID,
			Status:     courier.Status,
			Details:    courier.Details,
			CreatedAt:  courier.CreatedAt,
			UpdatedAt:  courier.UpdatedAt,
		}

		if order.Status.IsTerminal() && !courier.Status.IsTerminal() {
			srv.runner.log(ctx).Debug("Closed order has open courier status",
				slog.Int("line", row.Line),
				slog.String("status", order.Status.String()),
				slog.String("courier_status", courier.Status.String()),
			)
		}
	}

	return order
}
