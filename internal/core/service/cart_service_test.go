package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

type fakeCartRepo struct {
	carts    map[uint]*domain.Cart // keyed by user id
	items    map[uint]*domain.CartItem
	nextCart uint
	nextItem uint

	findItemByProductErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts:    map[uint]*domain.Cart{},
		items:    map[uint]*domain.CartItem{},
		nextCart: 1,
		nextItem: 1,
	}
}

func (r *fakeCartRepo) GetOrCreate(_ context.Context, userID uint) (*domain.Cart, error) {
	if c, ok := r.carts[userID]; ok {
		return r.withItems(c), nil
	}
	c := &domain.Cart{ID: r.nextCart, UserID: userID}
	r.nextCart++
	r.carts[userID] = c
	return r.withItems(c), nil
}

func (r *fakeCartRepo) FindByUser(_ context.Context, userID uint) (*domain.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return r.withItems(c), nil
}

func (r *fakeCartRepo) FindItem(_ context.Context, userID, itemID uint) (*domain.CartItem, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	cart, ok := r.carts[userID]
	if !ok || cart.ID != item.CartID {
		return nil, domain.ErrCartItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *fakeCartRepo) FindItemByProduct(_ context.Context, cartID, productID uint) (*domain.CartItem, error) {
	if r.findItemByProductErr != nil {
		return nil, r.findItemByProductErr
	}
	for _, item := range r.items {
		if item.CartID == cartID && item.ProductID == productID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domain.ErrCartItemNotFound
}

func (r *fakeCartRepo) AddItem(_ context.Context, item *domain.CartItem) error {
	item.ID = r.nextItem
	r.nextItem++
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeCartRepo) UpdateItemQuantity(_ context.Context, itemID uint, cantidad int) error {
	item, ok := r.items[itemID]
	if !ok {
		return domain.ErrCartItemNotFound
	}
	item.Cantidad = cantidad
	return nil
}

func (r *fakeCartRepo) RemoveItem(_ context.Context, itemID uint) error {
	if _, ok := r.items[itemID]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

func (r *fakeCartRepo) Clear(_ context.Context, cartID uint) error {
	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeCartRepo) withItems(c *domain.Cart) *domain.Cart {
	cp := *c
	cp.Items = nil
	for _, item := range r.items {
		if item.CartID == c.ID {
			cp.Items = append(cp.Items, *item)
		}
	}
	return &cp
}

func newTestCartService() (*CartService, *fakeCartRepo) {
	carts := newFakeCartRepo()
	users := newStubUserRepo()
	users.Create(context.Background(), &domain.User{
		Nombre: "Ana", Apellido: "García", Email: "ana@example.com", Activo: true,
	})
	products := newStubProductRepo(
		&domain.Product{ID: 1, Nombre: "Teclado", Precio: decimal.RequireFromString("99.90"), Stock: 5, Activo: true},
		&domain.Product{ID: 2, Nombre: "Descatalogado", Precio: decimal.RequireFromString("10.00"), Stock: 5, Activo: false},
	)
	return NewCartService(carts, users, products, zerolog.Nop()), carts
}

func TestCartAddProductMergesQuantities(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddProduct(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	cart, err := svc.AddProduct(ctx, 1, 1, 3)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want the two adds merged into one row", len(cart.Items))
	}
	if cart.Items[0].Cantidad != 5 {
		t.Errorf("cantidad = %d, want 5", cart.Items[0].Cantidad)
	}
	if !cart.Items[0].Precio.Equal(decimal.RequireFromString("99.90")) {
		t.Errorf("precio = %s, want the snapshot from the product", cart.Items[0].Precio)
	}
	if !cart.Total().Equal(decimal.RequireFromString("499.50")) {
		t.Errorf("total = %s, want 499.50", cart.Total())
	}
}

func TestCartAddProductStockLimits(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	// Over stock on the first add.
	if _, err := svc.AddProduct(ctx, 1, 1, 6); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("err = %v, want ErrInsufficientStock", err)
	}

	// The merged quantity is what gets checked, not the increment.
	if _, err := svc.AddProduct(ctx, 1, 1, 4); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if _, err := svc.AddProduct(ctx, 1, 1, 2); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("merged err = %v, want ErrInsufficientStock", err)
	}
}

func TestCartAddProductSurfacesLookupFailure(t *testing.T) {
	svc, repo := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddProduct(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	// An infrastructure failure on the item lookup must not be mistaken for
	// "item not present" and insert a duplicate row.
	repo.findItemByProductErr = errors.New("connection reset by peer")
	if _, err := svc.AddProduct(ctx, 1, 1, 1); err == nil {
		t.Fatal("AddProduct = nil error, want the lookup failure surfaced")
	}

	repo.findItemByProductErr = nil
	cart, err := svc.GetByUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Errorf("items = %d, want no duplicate row after the failed add", len(cart.Items))
	}
	if cart.Items[0].Cantidad != 2 {
		t.Errorf("cantidad = %d, want the original quantity untouched", cart.Items[0].Cantidad)
	}
}

func TestCartAddProductRejectsInactive(t *testing.T) {
	svc, _ := newTestCartService()

	if _, err := svc.AddProduct(context.Background(), 1, 2, 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestCartAddProductDefaultsQuantityToOne(t *testing.T) {
	svc, _ := newTestCartService()

	cart, err := svc.AddProduct(context.Background(), 1, 1, 0)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Cantidad != 1 {
		t.Errorf("items = %+v, want a single unit", cart.Items)
	}
}

func TestCartUpdateItem(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	cart, err := svc.AddProduct(ctx, 1, 1, 1)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	itemID := cart.Items[0].ID

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		err := svc.UpdateItem(ctx, 1, itemID, 0)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("err = %v, want ValidationError", err)
		}
	})

	t.Run("rejects over stock", func(t *testing.T) {
		if err := svc.UpdateItem(ctx, 1, itemID, 6); !errors.Is(err, domain.ErrInsufficientStock) {
			t.Errorf("err = %v, want ErrInsufficientStock", err)
		}
	})

	t.Run("another user cannot touch the item", func(t *testing.T) {
		if err := svc.UpdateItem(ctx, 99, itemID, 2); !errors.Is(err, domain.ErrCartItemNotFound) {
			t.Errorf("err = %v, want ErrCartItemNotFound", err)
		}
	})

	t.Run("sets the quantity", func(t *testing.T) {
		if err := svc.UpdateItem(ctx, 1, itemID, 4); err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}
		cart, err := svc.GetByUser(ctx, 1)
		if err != nil {
			t.Fatalf("GetByUser: %v", err)
		}
		if cart.Items[0].Cantidad != 4 {
			t.Errorf("cantidad = %d, want 4", cart.Items[0].Cantidad)
		}
	})
}

func TestCartClear(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddProduct(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if err := svc.Clear(ctx, 1); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	cart, err := svc.GetByUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("items = %d, want empty cart", len(cart.Items))
	}
}
