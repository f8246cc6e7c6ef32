package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
	"go.uber.org/zap"
)

//	@Summary	List orders
//	@Schemes
//	@Description	gold orders available for reservation
//	@Tags			market
//	@Produce		json
//	@Param			status		query	string	false	"order status"
//	@Param			faction		query	string	false	"faction"
//	@Param			region		query	string	false	"region"
//	@Param			expansion	query	integer	false	"expansion id"
//	@Param			page		query	integer	false	"page number"
//	@Success		200	{array}	tOrder	"orders"
//	@failure		500	"internal server error"
//	@Router			/api/orders [get]
func (s *Server) handlerOrders(c *gin.Context) {
	ctx := c.Request.Context()

	filter := model.OrderFilter{
		Status:  model.OrderStatus(c.Query("status")),
		Faction: model.Faction(c.Query("faction")),
		Region:  model.Region(c.Query("region")),
		Limit:   defaultPageSize,
	}
	if expansionID, err := strconv.ParseUint(c.Query("expansion"), 10, 32); err == nil {
		filter.ExpansionID = uint(expansionID)
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page - 1
	}

	orders, err := s.service.Orders(ctx, filter)
	if err != nil {
		s.log.Error("failed get orders", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tOrder{}
	for _, order := range orders {
		response = append(response, newOrder(*order))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Create order
//	@Schemes
//	@Description	publishes a new gold order
//	@Tags			market
//	@Accept			json
//	@Produce		json
//	@Param			order	body	tCreateOrder	true	"order"
//	@Success		201	{object}	tOrder	"created order"
//	@failure		400	"invalid request format"
//	@failure		401	"user is not authenticated"
//	@failure		422	"order fields are not valid"
//	@failure		500	"internal server error"
//	@Router			/api/orders [post]
func (s *Server) handlerCreateOrder(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCreateOrder{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order := model.Order{
		Title:       jBody.Title,
		Description: jBody.Description,
		Buyer:       jBody.Buyer,
		Faction:     model.Faction(jBody.Faction),
		Region:      model.Region(jBody.Region),
		MinReserve:  jBody.MinReserve,
		PricePer1K:  jBody.PricePer1K,
		Amount:      jBody.Amount,
	}
	for _, id := range jBody.ExpansionIDs {
		order.Expansions = append(order.Expansions, model.Expansion{ID: id})
	}
	for _, id := range jBody.RealmIDs {
		order.Realms = append(order.Realms, model.Realm{ID: id})
	}

	if err := s.service.CreateOrder(ctx, &order); err != nil {
		if errors.Is(err, market.ErrOrderNotValid) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed create order", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newOrder(order))
}

//	@Summary	Order details
//	@Schemes
//	@Description	order with the caller's active offer, if any
//	@Tags			market
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tOrderDetails	"order details"
//	@failure		401	"user is not authenticated"
//	@failure		404	"order not found"
//	@failure		500	"internal server error"
//	@Router			/api/orders/{id} [get]
func (s *Server) handlerOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.service.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed get order", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := tOrderDetails{Order: newOrder(order)}
	offer, ok, err := s.service.ActiveOffer(ctx, orderID, userID)
	if err != nil {
		s.log.Error("failed get active offer", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if ok {
		active := newOffer(offer)
		response.ActiveOffer = &active
	}

	c.JSON(http.StatusOK, response)
}

//	@Summary	Submit offer
//	@Schemes
//	@Description	reserves part of the order rest for the caller
//	@Tags			market
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer			true	"order id"
//	@Param			offer	body	tSubmitOffer	true	"offer"
//	@Success		201	{object}	tOffer	"created offer"
//	@failure		400	"invalid request format"
//	@failure		401	"user is not authenticated"
//	@failure		404	"order not found"
//	@failure		422	"quantity does not fit the order terms"
//	@failure		500	"internal server error"
//	@Router			/api/orders/{id}/offers [post]
func (s *Server) handlerSubmitOffer(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tSubmitOffer{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	offer, err := s.service.SubmitOffer(ctx, orderID, userID, jBody.Quantity)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, market.ErrInvalidQuantity) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed submit offer", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newOffer(offer))
}

//	@Summary	Attach delivery proof
//	@Schemes
//	@Description	uploads the proof video for the caller's active offer
//	@Tags			market
//	@Accept			mpfd
//	@Produce		plain
//	@Param			id		path		integer	true	"order id"
//	@Param			video	formData	file	true	"proof video"
//	@Success		200	"proof accepted"
//	@failure		400	"no file in request"
//	@failure		401	"user is not authenticated"
//	@failure		409	"no active offer for this order"
//	@failure		422	"file type or size is not acceptable"
//	@failure		500	"internal server error"
//	@Router			/api/orders/{id}/proof [post]
func (s *Server) handlerAttachProof(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.log.Error("failed open uploaded file", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.Error("failed close uploaded file", zap.Error(err))
		}
	}()

	proof := market.ProofFile{
		Data:        file,
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}
	if err := s.service.AttachProof(ctx, orderID, userID, proof); err != nil {
		if errors.Is(err, market.ErrNoActiveOffer) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, market.ErrInvalidFile) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed attach proof", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}
