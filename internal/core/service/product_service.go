package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
	"github.com/gameronce/commerce-api/internal/metrics"
)

const productListTTL = 5 * time.Minute

// ProductService owns the catalog products: CRUD, soft/permanent delete,
// image upload, and a read-through cache on the public listing.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	brands     ports.BrandRepository
	media      ports.MediaStore
	cache      ports.ProductCache
	logger     zerolog.Logger
}

func NewProductService(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	brands ports.BrandRepository,
	media ports.MediaStore,
	cache ports.ProductCache,
	logger zerolog.Logger,
) *ProductService {
	return &ProductService{products: products, categories: categories, brands: brands, media: media, cache: cache, logger: logger}
}

// List returns the full catalog, served from cache when warm.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetList(ctx); ok {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, products, productListTTL)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if in.Nombre == "" || in.SKU == "" {
		return nil, domain.NewValidationError("Nombre y SKU son requeridos")
	}
	if in.Precio.IsNegative() {
		return nil, domain.NewValidationError("El precio no puede ser negativo")
	}
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.brands.FindByID(ctx, in.BrandID); err != nil {
		return nil, err
	}

	product, err := s.products.Create(ctx, &domain.Product{
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		AdminID:     in.AdminID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		SKU:         in.SKU,
		Precio:      in.Precio,
		Stock:       in.Stock,
		Activo:      true,
		Destacado:   in.Destacado,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Uint("product_id", product.ID).Str("sku", product.SKU).Msg("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, upd ports.ProductUpdate) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *upd.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *upd.CategoryID
	}
	if upd.BrandID != nil {
		if _, err := s.brands.FindByID(ctx, *upd.BrandID); err != nil {
			return nil, err
		}
		product.BrandID = *upd.BrandID
	}
	if upd.Nombre != nil {
		product.Nombre = *upd.Nombre
	}
	if upd.Descripcion != nil {
		product.Descripcion = *upd.Descripcion
	}
	if upd.SKU != nil {
		product.SKU = *upd.SKU
	}
	if upd.Precio != nil {
		if upd.Precio.IsNegative() {
			return nil, domain.NewValidationError("El precio no puede ser negativo")
		}
		product.Precio = *upd.Precio
	}
	if upd.Stock != nil {
		product.Stock = *upd.Stock
	}
	if upd.Activo != nil {
		product.Activo = *upd.Activo
	}
	if upd.Destacado != nil {
		product.Destacado = *upd.Destacado
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

// Deactivate soft-deletes a product: it disappears from the store front but
// keeps its referential history in orders and carts.
func (s *ProductService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.products.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeletePermanent removes the row and the stored images.
func (s *ProductService) DeletePermanent(ctx context.Context, id uint) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if s.media != nil && product.ImagenPrincipal != nil {
		if err := s.media.Remove(ctx, product.ImagenPrincipal.Key); err != nil {
			s.logger.Warn().Err(err).Str("key", product.ImagenPrincipal.Key).Msg("failed to remove product image")
		}
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// AttachImage uploads the main product image to object storage and records
// the {url, key} reference. A previous image is replaced, not orphaned.
func (s *ProductService) AttachImage(ctx context.Context, id uint, filename, contentType string, body io.Reader) (*domain.Product, error) {
	if s.media == nil {
		return nil, fmt.Errorf("attach image: media store not configured")
	}
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("productos/%d/%s%s", product.ID, uuid.NewString(), path.Ext(filename))
	ref, err := s.media.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("upload product image: %w", err)
	}

	if product.ImagenPrincipal != nil {
		if err := s.media.Remove(ctx, product.ImagenPrincipal.Key); err != nil {
			s.logger.Warn().Err(err).Str("key", product.ImagenPrincipal.Key).Msg("failed to remove replaced image")
		}
	}

	product.ImagenPrincipal = ref
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
