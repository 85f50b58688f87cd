package commands_test

import (
	"context"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/payment"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetClient(ctx context.Context, id kernel.UUID) (*catalog.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Client)
	return c, args.Error(1)
}

func (m *MockCatalogReader) GetMenu(ctx context.Context, id kernel.UUID) (*catalog.Menu, error) {
	args := m.Called(ctx, id)
	menu, _ := args.Get(0).(*catalog.Menu)
	return menu, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) CompletedTotal(
	ctx context.Context, orderID kernel.UUID, excluding *kernel.UUID,
) (kernel.Money, error) {
	args := m.Called(ctx, orderID, excluding)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) ExistsForOrder(
	ctx context.Context, orderID kernel.UUID, excluding *kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, orderID, excluding)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every ledger's unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderReader() ports.OrderReader {
	return m.Called().Get(0).(ports.OrderReader)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) CatalogReader() ports.CatalogReader {
	return m.Called().Get(0).(ports.CatalogReader)
}

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type paymentUoWFactory struct{ uow *MockUoW }

func (f paymentUoWFactory) Create() commands.PaymentUoW { return f.uow }

type deliveryUoWFactory struct{ uow *MockUoW }

func (f deliveryUoWFactory) Create() commands.DeliveryUoW { return f.uow }

// newUoW returns a unit of work that expects a transaction which is always
// rolled back by the deferred call and committed only when commit is set.
func newUoW(commit bool) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	if commit {
		uow.On("Commit", mock.Anything).Return(nil).Once()
	}
	return uow
}

type MockCatalogRepository struct{ MockCatalogReader }

func (m *MockCatalogRepository) AddClient(ctx context.Context, client *catalog.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockCatalogRepository) AddMenu(ctx context.Context, menu *catalog.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

type catalogUoWFactory struct{ uow *MockUoW }

func (f catalogUoWFactory) Create() commands.CatalogUoW { return f.uow }
