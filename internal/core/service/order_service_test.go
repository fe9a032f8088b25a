package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[uint]*domain.Product
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{products: map[uint]*domain.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.products[p.ID] = p
	return p, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error)  { return nil, nil }
func (r *stubProductRepo) Update(_ context.Context, _ *domain.Product) error { return nil }
func (r *stubProductRepo) Deactivate(_ context.Context, _ uint) error        { return nil }
func (r *stubProductRepo) Delete(_ context.Context, _ uint) error            { return nil }

type stubAddressRepo struct {
	addresses map[uint]*domain.Address
}

func (r *stubAddressRepo) Create(_ context.Context, a *domain.Address) (*domain.Address, error) {
	r.addresses[a.ID] = a
	return a, nil
}

func (r *stubAddressRepo) FindByID(_ context.Context, id uint) (*domain.Address, error) {
	a, ok := r.addresses[id]
	if !ok {
		return nil, domain.ErrAddressNotFound
	}
	return a, nil
}

func (r *stubAddressRepo) ListByUser(_ context.Context, _ uint) ([]domain.Address, error) {
	return nil, nil
}
func (r *stubAddressRepo) Update(_ context.Context, _ *domain.Address) error { return nil }
func (r *stubAddressRepo) Delete(_ context.Context, _ uint) error            { return nil }

// fakeOrderRepo mirrors the transactional contract of the real repository:
// every line mutation re-sums the remaining lines into the parent totals and
// rejects terminal orders.
type fakeOrderRepo struct {
	orders     map[uint]*domain.Order
	lines      map[uint]*domain.OrderLine
	nextOrder  uint
	nextLine   uint
	recomputes int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    map[uint]*domain.Order{},
		lines:     map[uint]*domain.OrderLine{},
		nextOrder: 1,
		nextLine:  1,
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	o.ID = r.nextOrder
	r.nextOrder++
	cp := *o
	r.orders[o.ID] = &cp
	return o, nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	cp.Lines = nil
	for _, l := range r.lines {
		if l.OrderID == id {
			cp.Lines = append(cp.Lines, *l)
		}
	}
	return &cp, nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]domain.Order, error)            { return nil, nil }
func (r *fakeOrderRepo) ListByUser(_ context.Context, _ uint) ([]domain.Order, error) { return nil, nil }

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uint, estado string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Estado = estado
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) ListLines(_ context.Context) ([]domain.OrderLine, error) { return nil, nil }

func (r *fakeOrderRepo) FindLine(_ context.Context, lineID uint) (*domain.OrderLine, error) {
	l, ok := r.lines[lineID]
	if !ok {
		return nil, domain.ErrOrderLineNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeOrderRepo) AddLine(_ context.Context, line *domain.OrderLine) (*domain.OrderLine, error) {
	if err := r.checkEditable(line.OrderID); err != nil {
		return nil, err
	}
	line.ID = r.nextLine
	r.nextLine++
	cp := *line
	r.lines[line.ID] = &cp
	r.recompute(line.OrderID)
	return line, nil
}

func (r *fakeOrderRepo) UpdateLine(_ context.Context, lineID uint, cantidad int, precioUnitario decimal.Decimal) (*domain.OrderLine, error) {
	l, ok := r.lines[lineID]
	if !ok {
		return nil, domain.ErrOrderLineNotFound
	}
	if err := r.checkEditable(l.OrderID); err != nil {
		return nil, err
	}
	l.Cantidad = cantidad
	l.PrecioUnitario = precioUnitario
	l.Subtotal = precioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
	r.recompute(l.OrderID)
	cp := *l
	return &cp, nil
}

func (r *fakeOrderRepo) DeleteLine(_ context.Context, lineID uint) error {
	l, ok := r.lines[lineID]
	if !ok {
		return domain.ErrOrderLineNotFound
	}
	if err := r.checkEditable(l.OrderID); err != nil {
		return err
	}
	delete(r.lines, lineID)
	r.recompute(l.OrderID)
	return nil
}

func (r *fakeOrderRepo) checkEditable(orderID uint) error {
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Estado == domain.OrderStatusDelivered || o.Estado == domain.OrderStatusCancelled {
		return domain.ErrOrderLocked
	}
	return nil
}

func (r *fakeOrderRepo) recompute(orderID uint) {
	var lines []domain.OrderLine
	for _, l := range r.lines {
		if l.OrderID == orderID {
			lines = append(lines, *l)
		}
	}
	total := domain.SumLineSubtotals(lines)
	o := r.orders[orderID]
	o.Subtotal = total
	o.Total = total
	r.recomputes++
}

func newTestOrderService(notify func(ports.OrderNotification)) (*OrderService, *fakeOrderRepo, *stubUserRepo) {
	orders := newFakeOrderRepo()
	users := newStubUserRepo()
	users.Create(context.Background(), &domain.User{
		Nombre: "Ana", Apellido: "García", Email: "ana@example.com", Activo: true,
	})
	addresses := &stubAddressRepo{addresses: map[uint]*domain.Address{
		10: {ID: 10, UserID: 1, Calle: "Av. Siempre Viva", Numero: "742"},
		11: {ID: 11, UserID: 99, Calle: "Otra", Numero: "1"},
	}}
	products := newStubProductRepo(
		&domain.Product{ID: 1, Nombre: "Teclado", Precio: decimal.RequireFromString("10.00"), Stock: 50, Activo: true},
		&domain.Product{ID: 2, Nombre: "Mouse", Precio: decimal.RequireFromString("5.00"), Stock: 50, Activo: true},
	)
	svc := NewOrderService(orders, users, addresses, products, notify, zerolog.Nop())
	return svc, orders, users
}

func TestOrderCreateStartsEmpty(t *testing.T) {
	var notified []ports.OrderNotification
	svc, _, _ := newTestOrderService(func(n ports.OrderNotification) { notified = append(notified, n) })

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{UserID: 1, AddressID: 10})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.Estado != domain.OrderStatusPending {
		t.Errorf("estado = %q, want %q", order.Estado, domain.OrderStatusPending)
	}
	if !order.Total.IsZero() || !order.Subtotal.IsZero() {
		t.Errorf("totals = %s/%s, want zero", order.Subtotal, order.Total)
	}
	if order.NumeroOrden == "" {
		t.Error("numero_orden is empty")
	}
	if len(notified) != 1 || notified[0].Email != "ana@example.com" {
		t.Errorf("notified = %+v, want one notification for the buyer", notified)
	}
}

func TestOrderCreateRejectsForeignAddress(t *testing.T) {
	svc, _, _ := newTestOrderService(nil)

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{UserID: 1, AddressID: 11})
	if !errors.Is(err, domain.ErrAddressNotFound) {
		t.Errorf("err = %v, want ErrAddressNotFound", err)
	}
}

func TestOrderLineRecomputeSequence(t *testing.T) {
	svc, repo, _ := newTestOrderService(nil)
	ctx := context.Background()

	order, err := svc.Create(ctx, ports.CreateOrderInput{UserID: 1, AddressID: 10})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	assertTotal := func(want string) {
		t.Helper()
		got, err := svc.orders.FindByID(ctx, order.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if !got.Total.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("total = %s, want %s", got.Total, want)
		}
		if !got.Subtotal.Equal(got.Total) {
			t.Fatalf("subtotal %s diverged from total %s", got.Subtotal, got.Total)
		}
	}

	// 2 × 10.00: price snapshotted from the product.
	first, err := svc.AddLine(ctx, ports.AddLineInput{OrderID: order.ID, ProductID: 1, Cantidad: 2})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if !first.PrecioUnitario.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("precio = %s, want the product price snapshot", first.PrecioUnitario)
	}
	assertTotal("20.00")

	// + 1 × 5.00 → 25.00.
	second, err := svc.AddLine(ctx, ports.AddLineInput{OrderID: order.ID, ProductID: 2, Cantidad: 1})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	assertTotal("25.00")

	// Explicit price overrides the snapshot: 1 × 7.50 → 27.50.
	precio := decimal.RequireFromString("7.50")
	updated, err := svc.UpdateLine(ctx, second.ID, nil, &precio)
	if err != nil {
		t.Fatalf("UpdateLine: %v", err)
	}
	if !updated.Subtotal.Equal(precio) {
		t.Errorf("subtotal = %s, want %s", updated.Subtotal, precio)
	}
	assertTotal("27.50")

	// Deleting the second line re-sums back down to 20.00.
	if err := svc.DeleteLine(ctx, second.ID); err != nil {
		t.Fatalf("DeleteLine: %v", err)
	}
	assertTotal("20.00")

	if repo.recomputes != 4 {
		t.Errorf("recomputes = %d, want 4", repo.recomputes)
	}
}

func TestOrderLinesFrozenOnTerminalStates(t *testing.T) {
	svc, _, _ := newTestOrderService(nil)
	ctx := context.Background()

	order, err := svc.Create(ctx, ports.CreateOrderInput{UserID: 1, AddressID: 10})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	line, err := svc.AddLine(ctx, ports.AddLineInput{OrderID: order.ID, ProductID: 1, Cantidad: 1})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	for _, estado := range []string{domain.OrderStatusDelivered, domain.OrderStatusCancelled} {
		t.Run(estado, func(t *testing.T) {
			if _, err := svc.UpdateStatus(ctx, order.ID, estado); err != nil {
				t.Fatalf("UpdateStatus: %v", err)
			}
			defer svc.UpdateStatus(ctx, order.ID, domain.OrderStatusPending)

			if _, err := svc.AddLine(ctx, ports.AddLineInput{OrderID: order.ID, ProductID: 2, Cantidad: 1}); !errors.Is(err, domain.ErrOrderLocked) {
				t.Errorf("AddLine err = %v, want ErrOrderLocked", err)
			}
			cantidad := 3
			if _, err := svc.UpdateLine(ctx, line.ID, &cantidad, nil); !errors.Is(err, domain.ErrOrderLocked) {
				t.Errorf("UpdateLine err = %v, want ErrOrderLocked", err)
			}
			if err := svc.DeleteLine(ctx, line.ID); !errors.Is(err, domain.ErrOrderLocked) {
				t.Errorf("DeleteLine err = %v, want ErrOrderLocked", err)
			}
		})
	}
}

func TestOrderAddLineRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newTestOrderService(nil)

	_, err := svc.AddLine(context.Background(), ports.AddLineInput{OrderID: 1, ProductID: 1, Cantidad: 0})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}
