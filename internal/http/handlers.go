package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/catalog"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/service"
)

type Server struct {
	engine  *gin.Engine
	catalog *catalog.Catalog
	cart    *service.CartService
	orders  *service.OrderService
	auth    *service.AuthService

	wizardMu sync.Mutex
	wizard   *service.CheckoutWizard // активное оформление; nil вне checkout
}

func NewServer(cat *catalog.Catalog, cart *service.CartService, orders *service.OrderService, auth *service.AuthService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, catalog: cat, cart: cart, orders: orders, auth: auth}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)

		cart := v1.Group("/cart")
		cart.GET("", s.getCart)
		cart.POST("/items", s.addCartItem)
		cart.PUT("/items/:id", s.updateCartItem)
		cart.DELETE("/items/:id", s.removeCartItem)
		cart.DELETE("", s.clearCart)

		favorites := v1.Group("/favorites")
		favorites.GET("", s.listFavorites)
		favorites.POST("", s.addFavorite)
		favorites.DELETE(":id", s.removeFavorite)

		checkout := v1.Group("/checkout")
		checkout.POST("", s.startCheckout)
		checkout.GET("", s.getCheckout)
		checkout.PUT("/customer", s.setCheckoutCustomer)
		checkout.PUT("/delivery", s.setCheckoutDelivery)
		checkout.PUT("/payment", s.setCheckoutPayment)
		checkout.POST("/next", s.checkoutNext)
		checkout.POST("/prev", s.checkoutPrev)
		checkout.POST("/place-order", s.placeOrder)

		orders := v1.Group("/orders")
		orders.GET("", s.listOrders)
		orders.GET(":id", s.getOrder)
		orders.PUT(":id/status", s.updateOrderStatus)

		auth := v1.Group("/auth")
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.POST("/logout", s.logout)
		auth.GET("/me", s.me)
	}
}

// Product handlers

// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Title substring"
// @Param type query string false "Product type"
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Param sort query string false "price-asc, price-desc or rating"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := catalog.Filter{
		Query: c.Query("q"),
		Type:  c.Query("type"),
		Sort:  c.Query("sort"),
	}
	if v := c.Query("min_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := c.Query("max_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	c.JSON(http.StatusOK, s.catalog.List(f))
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := s.catalog.GetByID(id)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Cart handlers

type cartView struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int64             `json:"totalItems"`
	TotalPrice int64             `json:"totalPrice"`
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} cartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartView{
		Items:      s.cart.Items(),
		TotalItems: s.cart.GetTotalItems(),
		TotalPrice: s.cart.GetTotalPrice(),
	})
}

type addCartItemReq struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// @Summary Add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body addCartItemReq true "Item"
// @Success 200 {object} cartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	p, err := s.catalog.GetByID(req.ProductID)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	if err := s.cart.AddToCart(*p, req.Quantity); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	s.getCart(c)
}

type updateCartItemReq struct {
	Quantity int64 `json:"quantity"`
}

// @Summary Set cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param input body updateCartItemReq true "Quantity; zero or negative removes the item"
// @Success 200 {object} cartView
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [put]
func (s *Server) updateCartItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	s.cart.UpdateQuantity(id, req.Quantity)
	s.getCart(c)
}

// @Summary Remove product from cart
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} cartView
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s.cart.RemoveFromCart(id)
	s.getCart(c)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} cartView
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	s.cart.ClearCart()
	s.getCart(c)
}

// Favorites handlers

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {array} domain.Product
// @Router /favorites [get]
func (s *Server) listFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, s.cart.Favorites())
}

type addFavoriteReq struct {
	ProductID int64 `json:"product_id"`
}

// @Summary Add product to favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Param input body addFavoriteReq true "Product"
// @Success 200 {array} domain.Product
// @Failure 404 {object} map[string]string
// @Router /favorites [post]
func (s *Server) addFavorite(c *gin.Context) {
	var req addFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.catalog.GetByID(req.ProductID)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	s.cart.AddToFavorites(*p)
	c.JSON(http.StatusOK, s.cart.Favorites())
}

// @Summary Remove product from favorites
// @Tags favorites
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} domain.Product
// @Router /favorites/{id} [delete]
func (s *Server) removeFavorite(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s.cart.RemoveFromFavorites(id)
	c.JSON(http.StatusOK, s.cart.Favorites())
}

// Checkout handlers

type checkoutView struct {
	Step         int                 `json:"step"`
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
	DeliveryInfo domain.DeliveryInfo `json:"deliveryInfo"`
	PaymentInfo  domain.PaymentInfo  `json:"paymentInfo"`
	TotalAmount  int64               `json:"totalAmount"`
	Discount     int64               `json:"discount"`
	FinalAmount  int64               `json:"finalAmount"`
	PickupPoints []string            `json:"pickupPoints"`
}

func (s *Server) checkoutView() checkoutView {
	total, discount, final := s.wizard.Totals()
	return checkoutView{
		Step:         s.wizard.Step(),
		CustomerInfo: s.wizard.CustomerInfo(),
		DeliveryInfo: s.wizard.DeliveryInfo(),
		PaymentInfo:  s.wizard.PaymentInfo(),
		TotalAmount:  total,
		Discount:     discount,
		FinalAmount:  final,
		PickupPoints: service.PickupPoints,
	}
}

// @Summary Start checkout
// @Tags checkout
// @Produce json
// @Success 201 {object} checkoutView
// @Failure 409 {object} map[string]string
// @Router /checkout [post]
func (s *Server) startCheckout(c *gin.Context) {
	s.wizardMu.Lock()
	defer s.wizardMu.Unlock()
	if s.cart.GetTotalItems() == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	}
	s.wizard = service.NewCheckoutWizard(s.cart, s.orders, s.auth.CurrentUser())
	c.JSON(http.StatusCreated, s.checkoutView())
}

// @Summary Get checkout state
// @Tags checkout
// @Produce json
// @Success 200 {object} checkoutView
// @Failure 404 {object} map[string]string
// @Router /checkout [get]
func (s *Server) getCheckout(c *gin.Context) {
	s.wizardMu.Lock()
	defer s.wizardMu.Unlock()
	if s.wizard == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return
	}
	c.JSON(http.StatusOK, s.checkoutView())
}

func (s *Server) withWizard(c *gin.Context, fn func()) {
	s.wizardMu.Lock()
	defer s.wizardMu.Unlock()
	if s.wizard == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return
	}
	fn()
}

// @Summary Set checkout contact info
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body domain.CustomerInfo true "Contacts"
// @Success 200 {object} checkoutView
// @Router /checkout/customer [put]
func (s *Server) setCheckoutCustomer(c *gin.Context) {
	var req domain.CustomerInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	s.withWizard(c, func() {
		s.wizard.SetCustomerInfo(req)
		c.JSON(http.StatusOK, s.checkoutView())
	})
}

// @Summary Set checkout delivery info
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body domain.DeliveryInfo true "Delivery"
// @Success 200 {object} checkoutView
// @Router /checkout/delivery [put]
func (s *Server) setCheckoutDelivery(c *gin.Context) {
	var req domain.DeliveryInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	s.withWizard(c, func() {
		s.wizard.SetDeliveryInfo(req)
		c.JSON(http.StatusOK, s.checkoutView())
	})
}

// @Summary Set checkout payment info
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body domain.PaymentInfo true "Payment"
// @Success 200 {object} checkoutView
// @Router /checkout/payment [put]
func (s *Server) setCheckoutPayment(c *gin.Context) {
	var req domain.PaymentInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	s.withWizard(c, func() {
		s.wizard.SetPaymentInfo(req)
		c.JSON(http.StatusOK, s.checkoutView())
	})
}

// @Summary Advance checkout to the next step
// @Tags checkout
// @Produce json
// @Success 200 {object} checkoutView
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]string
// @Router /checkout/next [post]
func (s *Server) checkoutNext(c *gin.Context) {
	s.withWizard(c, func() {
		if err := s.wizard.Next(); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, s.checkoutView())
	})
}

// @Summary Go back one checkout step
// @Tags checkout
// @Produce json
// @Success 200 {object} checkoutView
// @Router /checkout/prev [post]
func (s *Server) checkoutPrev(c *gin.Context) {
	s.withWizard(c, func() {
		s.wizard.Prev()
		c.JSON(http.StatusOK, s.checkoutView())
	})
}

// @Summary Place the order
// @Tags checkout
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]string
// @Router /checkout/place-order [post]
func (s *Server) placeOrder(c *gin.Context) {
	s.withWizard(c, func() {
		id, err := s.wizard.PlaceOrder(c)
		if err != nil {
			writeError(c, err)
			return
		}
		// мастер одноразовый
		s.wizard = nil
		c.JSON(http.StatusCreated, gin.H{"orderId": id})
	})
}

// Order handlers

// @Summary List orders, most recent first
// @Tags orders
// @Produce json
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.orders.ListOrders())
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.GetOrderByID(c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

type updateStatusReq struct {
	Status domain.OrderStatus `json:"status"`
}

// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body updateStatusReq true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/status [put]
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	id := c.Param("id")
	if err := s.orders.UpdateOrderStatus(id, req.Status); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	o, err := s.orders.GetOrderByID(id)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// Auth handlers

// @Summary Register account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.RegisterData true "Registration"
// @Success 201 {object} domain.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (s *Server) register(c *gin.Context) {
	var req service.RegisterData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u, err := s.auth.Register(req)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}

type loginReq struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u, err := s.auth.Login(req.EmailOrPhone, req.Password)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary Logout
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (s *Server) logout(c *gin.Context) {
	s.auth.Logout()
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (s *Server) me(c *gin.Context) {
	u := s.auth.CurrentUser()
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// writeError раскладывает ошибки валидации по полям, остальное — через
// mapErrorToStatus
func writeError(c *gin.Context, err error) {
	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verrs})
		return
	}
	c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
}

func mapErrorToStatus(err error) int {
	switch err {
	case service.ErrInvalidInput, service.ErrInvalidStatus:
		return http.StatusBadRequest
	case service.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case repository.ErrNotFound:
		return http.StatusNotFound
	case service.ErrInvalidState, service.ErrUserExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
