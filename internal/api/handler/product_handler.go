package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// ProductHandler exposes the product catalog. Reads are public and served
// through the listing cache; writes sit behind the admin gate.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	CategoryID  uint            `json:"id_categoria" validate:"required"`
	BrandID     uint            `json:"id_marca" validate:"required"`
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	SKU         string          `json:"sku" validate:"required"`
	Precio      decimal.Decimal `json:"precio" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Destacado   bool            `json:"destacado"`
}

type updateProductRequest struct {
	CategoryID  *uint            `json:"id_categoria"`
	BrandID     *uint            `json:"id_marca"`
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	SKU         *string          `json:"sku"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
	Activo      *bool            `json:"activo"`
	Destacado   *bool            `json:"destacado"`
}

// List returns the active catalog.
//
// @Summary      List products
// @Tags         productos
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /productos [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product by id.
//
// @Summary      Get a product
// @Tags         productos
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /productos/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create registers a new product owned by the calling admin.
//
// @Summary      Create a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /productos [post]
func (h *ProductHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.ProductInput{
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		AdminID:     p.ID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		SKU:         req.SKU,
		Precio:      req.Precio,
		Stock:       req.Stock,
		Destacado:   req.Destacado,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update patches a product.
//
// @Summary      Update a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Router       /productos/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}

	product, err := h.service.Update(c.Request().Context(), id, ports.ProductUpdate{
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		SKU:         req.SKU,
		Precio:      req.Precio,
		Stock:       req.Stock,
		Activo:      req.Activo,
		Destacado:   req.Destacado,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Deactivate soft-deletes a product; it disappears from the storefront but
// keeps its history.
//
// @Summary      Deactivate a product
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /productos/{id} [delete]
func (h *ProductHandler) Deactivate(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Producto desactivado correctamente"})
}

// DeletePermanent removes a product and its stored images for good.
//
// @Summary      Permanently delete a product
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /productos/{id}/permanent [delete]
func (h *ProductHandler) DeletePermanent(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeletePermanent(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Producto eliminado permanentemente"})
}

// UploadImage receives a multipart file under the "imagen" field and stores it
// as the product's main image.
//
// @Summary      Upload the product image
// @Tags         productos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int   true  "Product id"
// @Param        imagen  formData  file  true  "Image file"
// @Success      200     {object}  domain.Product
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /productos/{id}/imagen [post]
func (h *ProductHandler) UploadImage(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return domain.NewValidationError("La imagen es requerida")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewValidationError("No se pudo leer la imagen")
	}
	defer file.Close()

	product, err := h.service.AttachImage(
		c.Request().Context(),
		id,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
