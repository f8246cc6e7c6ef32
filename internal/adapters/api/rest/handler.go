package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
	"go.uber.org/zap"
)

var (
	msgErrorCloseBody = "failed close body request"
)

func (s *Server) readBody(c *gin.Context) ([]byte, int) {
	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		return []byte{}, http.StatusInternalServerError
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()
	return bBody, 0
}

//	@Summary	Register user
//	@Schemes
//	@Description	registration user
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200				"user registered and authenticated"
//	@failure		400				"invalid request format"
//	@failure		409				"login already taken"
//	@failure		500				"internal server error"
//	@Router			/api/user/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tRegistration{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.Register(ctx, jBody.Login, jBody.Password, jBody.Email, jBody.Phone); err != nil {
		if errors.Is(err, errstore.ErrLoginNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, market.ErrLoginNotValid) || errors.Is(err, market.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed register user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := s.authorization(c, jBody.Login, jBody.Password); err != nil {
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Login user
//	@Schemes
//	@Description	authorization
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200		"user authenticated"
//	@failure		400		"invalid request format"
//	@failure		401		"wrong login/password pair"
//	@failure		500		"internal server error"
//	@Router			/api/user/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tAuthorization{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.authorization(c, jBody.Login, jBody.Password); err != nil {
		if errors.Is(err, market.ErrLoginNotValid) || errors.Is(err, market.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, market.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	List products
//	@Schemes
//	@Description	storefront product list
//	@Tags			shop
//	@Produce		json
//	@Param			category	query	integer	false	"category id"
//	@Param			page		query	integer	false	"page number"
//	@Success		200	{array}	tProduct	"products"
//	@failure		500	"internal server error"
//	@Router			/api/products [get]
func (s *Server) handlerProducts(c *gin.Context) {
	ctx := c.Request.Context()

	filter := model.ProductFilter{Limit: defaultPageSize}
	if categoryID, err := strconv.ParseUint(c.Query("category"), 10, 32); err == nil {
		filter.CategoryID = uint(categoryID)
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page - 1
	}

	products, err := s.service.Products(ctx, filter)
	if err != nil {
		s.log.Error("failed get products", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tProduct{}
	for _, product := range products {
		response = append(response, newProduct(*product))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Product details
//	@Schemes
//	@Tags		shop
//	@Produce	json
//	@Param		id	path	integer	true	"product id"
//	@Success	200	{object}	tProduct	"product"
//	@failure	404	"product not found"
//	@failure	500	"internal server error"
//	@Router		/api/products/{id} [get]
func (s *Server) handlerProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	product, err := s.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed get product", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newProduct(product))
}

//	@Summary	List categories
//	@Schemes
//	@Tags		shop
//	@Produce	json
//	@Success	200	{array}	tCategory	"categories"
//	@failure	500	"internal server error"
//	@Router		/api/categories [get]
func (s *Server) handlerCategories(c *gin.Context) {
	categories, err := s.service.Categories(c.Request.Context())
	if err != nil {
		s.log.Error("failed get categories", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tCategory{}
	for _, category := range categories {
		response = append(response, tCategory{ID: category.ID, Name: category.Name, ParentID: category.ParentID})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	List expansions
//	@Schemes
//	@Tags		market
//	@Produce	json
//	@Success	200	{array}	tName	"expansions"
//	@failure	500	"internal server error"
//	@Router		/api/expansions [get]
func (s *Server) handlerExpansions(c *gin.Context) {
	expansions, err := s.service.Expansions(c.Request.Context())
	if err != nil {
		s.log.Error("failed get expansions", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tName{}
	for _, expansion := range expansions {
		response = append(response, tName{Name: expansion.Name})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Show cart
//	@Schemes
//	@Description	session cart with resolved products and total
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	tCart	"cart"
//	@failure		500	"internal server error"
//	@Router			/api/cart [get]
func (s *Server) handlerCart(c *gin.Context) {
	cart := s.sessionCart(c)
	items, total, err := s.service.CartView(c.Request.Context(), cart)
	if err != nil {
		s.log.Error("failed get cart view", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newCart(items, total))
}

//	@Summary	Add product to cart
//	@Schemes
//	@Description	adds one unit, silently ignored for disabled or out-of-stock products
//	@Tags			cart
//	@Produce		json
//	@Param			id	path	integer	true	"product id"
//	@Success		200	{object}	tCart	"cart"
//	@failure		404	"product not found"
//	@failure		500	"internal server error"
//	@Router			/api/cart/add/{id} [post]
func (s *Server) handlerCartAdd(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	cart := s.sessionCart(c)
	if err := s.service.AddToCart(ctx, cart, productID); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed add to cart", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.saveSessionCart(c, cart)

	items, total, err := s.service.CartView(ctx, cart)
	if err != nil {
		s.log.Error("failed get cart view", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newCart(items, total))
}

//	@Summary	Remove product from cart
//	@Schemes
//	@Tags		cart
//	@Produce	json
//	@Param		id	path	integer	true	"product id"
//	@Success	200	{object}	tCart	"cart"
//	@failure	500	"internal server error"
//	@Router		/api/cart/remove/{id} [post]
func (s *Server) handlerCartRemove(c *gin.Context) {
	cart := s.sessionCart(c)
	cart.Remove(c.Param("id"))
	s.saveSessionCart(c, cart)

	items, total, err := s.service.CartView(c.Request.Context(), cart)
	if err != nil {
		s.log.Error("failed get cart view", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newCart(items, total))
}

//	@Summary	Decrease product count in cart
//	@Schemes
//	@Tags		cart
//	@Produce	json
//	@Param		id	path	integer	true	"product id"
//	@Success	200	{object}	tCart	"cart"
//	@failure	500	"internal server error"
//	@Router		/api/cart/decrease/{id} [post]
func (s *Server) handlerCartDecrease(c *gin.Context) {
	cart := s.sessionCart(c)
	cart.Decrease(c.Param("id"))
	s.saveSessionCart(c, cart)

	items, total, err := s.service.CartView(c.Request.Context(), cart)
	if err != nil {
		s.log.Error("failed get cart view", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, newCart(items, total))
}

//	@Summary	Empty cart
//	@Schemes
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	tCart	"cart"
//	@Router		/api/cart/empty [post]
func (s *Server) handlerCartEmpty(c *gin.Context) {
	cart := s.sessionCart(c)
	cart.Empty()
	s.saveSessionCart(c, cart)

	c.JSON(http.StatusOK, newCart([]market.CartItem{}, 0))
}

//	@Summary	Checkout cart
//	@Schemes
//	@Description	builds the invoice from the session cart and returns the gateway redirect
//	@Tags			shop
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body	tCheckout	true	"checkout"
//	@Success		200	{object}	tCheckoutResponse	"redirect url"
//	@failure		400	"cart is empty"
//	@failure		401	"user is not authenticated"
//	@failure		404	"cart references a missing product"
//	@failure		502	"payment gateway rejected or unreachable"
//	@failure		500	"internal server error"
//	@Router			/api/checkout [post]
func (s *Server) handlerCheckout(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCheckout{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	cart := s.sessionCart(c)
	callbackURL := s.baseURL + "/api/payment/verify"
	redirectURL, err := s.service.Checkout(ctx, userID, cart, jBody.BattleTag, jBody.Description, callbackURL, c.ClientIP())
	s.saveSessionCart(c, cart)
	if err != nil {
		if errors.Is(err, market.ErrEmptyCart) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, market.ErrProductNotFound) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		var gwErr *market.GatewayError
		if errors.As(err, &gwErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": gwErr.Message})
			return
		}
		if errors.Is(err, market.ErrGatewayUnreachable) {
			c.Writer.WriteHeader(http.StatusBadGateway)
			return
		}
		s.log.Error("failed checkout", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, tCheckoutResponse{RedirectURL: redirectURL})
}

//	@Summary	Verify payment callback
//	@Schemes
//	@Description	gateway redirects the user here with Status and Authority
//	@Tags			shop
//	@Produce		json
//	@Param			Status		query	string	true	"gateway status"
//	@Param			Authority	query	string	true	"gateway authority token"
//	@Success		200	{object}	tVerifyResponse	"verify outcome"
//	@failure		401	"user is not authenticated"
//	@failure		404	"transaction not found"
//	@failure		502	"payment gateway unreachable"
//	@failure		500	"internal server error"
//	@Router			/api/payment/verify [get]
func (s *Server) handlerVerifyPayment(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := s.service.VerifyPayment(ctx, c.Query("Status"), c.Query("Authority"))
	if err != nil {
		if errors.Is(err, market.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, tVerifyResponse{Status: "failed", Message: "transaction not found"})
			return
		}
		if errors.Is(err, market.ErrGatewayUnreachable) {
			c.JSON(http.StatusBadGateway, tVerifyResponse{Status: "failed", Message: "payment gateway unreachable"})
			return
		}
		s.log.Error("failed verify payment", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := tVerifyResponse{}
	switch {
	case result.Canceled:
		response.Status = "canceled"
		response.Message = "payment was canceled by the user"
	case result.Failed:
		response.Status = "failed"
		response.Message = result.Message
	case result.AlreadyVerified:
		response.Status = "done"
		response.RefID = result.RefID
		response.AlreadyVerified = true
		response.Message = "payment was already confirmed"
	default:
		response.Status = "done"
		response.RefID = result.RefID
	}
	c.JSON(http.StatusOK, response)
}

const defaultPageSize = 20
