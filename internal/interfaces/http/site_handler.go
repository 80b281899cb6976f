package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/application/usecase"
)

// Cookie de sesión del carrito del sitio público.
const (
	cartCookieName   = "cart_session"
	cartCookieMaxAge = 30 * 24 * time.Hour
)

// SiteHandler expone la tienda en línea: menú, carrito por cookie de sesión,
// checkout, reseñas y solicitudes de empleo. Las rutas son públicas salvo
// las de "mis pedidos".
type SiteHandler struct {
	catalog      *usecase.CatalogUseCase
	cart         *usecase.CartUseCase
	delivery     *usecase.DeliveryUseCase
	reviews      *usecase.ReviewUseCase
	applications *usecase.JobApplicationUseCase
}

// NewSiteHandler construye el handler.
func NewSiteHandler(
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	delivery *usecase.DeliveryUseCase,
	reviews *usecase.ReviewUseCase,
	applications *usecase.JobApplicationUseCase,
) *SiteHandler {
	return &SiteHandler{
		catalog:      catalog,
		cart:         cart,
		delivery:     delivery,
		reviews:      reviews,
		applications: applications,
	}
}

// sessionID devuelve el ID de sesión de la cookie del carrito, creándolo y
// fijando la cookie si el visitante aún no tiene uno.
func sessionID(c *fiber.Ctx) string {
	id := c.Cookies(cartCookieName)
	if id == "" {
		id = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     cartCookieName,
			Value:    id,
			Expires:  time.Now().Add(cartCookieMaxAge),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return id
}

// Menu godoc
// @Summary      Menú público: categorías y productos activos
// @Tags         site
// @Produce      json
// @Param        q  query  string  false  "Buscar producto por nombre"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/site/menu [get]
func (h *SiteHandler) Menu(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories()
	if err != nil {
		return fail(c, err)
	}
	products, err := h.catalog.SearchProducts(c.Query("q"), true)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories, "products": products})
}

// GetCart godoc
// @Summary      Carrito de la sesión
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/site/cart [get]
func (h *SiteHandler) GetCart(c *fiber.Ctx) error {
	out, err := h.cart.Get(sessionID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddToCart godoc
// @Summary      Agregar producto al carrito
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/site/cart/items [post]
func (h *SiteHandler) AddToCart(c *fiber.Ctx) error {
	var in dto.CartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.cart.Add(sessionID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SetCartQty godoc
// @Summary      Fijar cantidad de un producto del carrito (0 lo elimina)
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/site/cart/items [put]
func (h *SiteHandler) SetCartQty(c *fiber.Ctx) error {
	var in dto.CartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.cart.SetQty(sessionID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RemoveFromCart godoc
// @Summary      Quitar producto del carrito
// @Tags         site
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/site/cart/items/{productId} [delete]
func (h *SiteHandler) RemoveFromCart(c *fiber.Ctx) error {
	out, err := h.cart.Remove(sessionID(c), c.Params("productId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ClearCart godoc
// @Summary      Vaciar carrito
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/site/cart [delete]
func (h *SiteHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.cart.Clear(sessionID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "cleared"})
}

// Checkout godoc
// @Summary      Confirmar pedido del carrito
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Datos de entrega"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/site/checkout [post]
func (h *SiteHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phone es requerido"})
	}
	out, err := h.cart.Checkout(c.Context(), sessionID(c), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyOrders godoc
// @Summary      Pedidos de la cuenta autenticada
// @Tags         site
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DeliveryResponse
// @Router       /api/site/my/orders [get]
func (h *SiteHandler) MyOrders(c *fiber.Ctx) error {
	out, err := h.delivery.ListByUser(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SubmitReview godoc
// @Summary      Enviar reseña
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReviewRequest  true  "Reseña con puntuaciones de 0 a 10"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/site/reviews [post]
func (h *SiteHandler) SubmitReview(c *fiber.Ctx) error {
	var in dto.ReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.reviews.Submit(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReviews godoc
// @Summary      Listar reseñas
// @Tags         site
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.ReviewResponse
// @Router       /api/site/reviews [get]
func (h *SiteHandler) ListReviews(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.reviews.List(page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SubmitApplication godoc
// @Summary      Enviar solicitud de empleo
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body  dto.JobApplicationRequest  true  "Solicitud"
// @Success      201   {object}  dto.JobApplicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/site/jobs [post]
func (h *SiteHandler) SubmitApplication(c *fiber.Ctx) error {
	var in dto.JobApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.applications.Submit(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
