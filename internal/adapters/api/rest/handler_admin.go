package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
	"go.uber.org/zap"
)

//	@Summary	Create product
//	@Schemes
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		product	body	tCreateProduct	true	"product"
//	@Success	201	{object}	tProduct	"created product"
//	@failure	400	"invalid request format"
//	@failure	403	"user is not an admin"
//	@failure	404	"category not found"
//	@failure	422	"product fields are not valid"
//	@failure	500	"internal server error"
//	@Router		/api/admin/products [post]
func (s *Server) handlerAdminCreateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCreateProduct{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	product := model.Product{
		Name:        jBody.Name,
		Description: jBody.Description,
		CategoryID:  jBody.CategoryID,
		Price:       jBody.Price,
		Count:       jBody.Count,
		Discount:    jBody.Discount,
		Enabled:     jBody.Enabled,
	}
	if err := s.service.CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, market.ErrNameNotValid) ||
			errors.Is(err, market.ErrPriceNotValid) ||
			errors.Is(err, market.ErrDiscountNotValid) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed create product", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newProduct(product))
}

//	@Summary	Update product
//	@Schemes
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path	integer			true	"product id"
//	@Param		product	body	tCreateProduct	true	"product"
//	@Success	200	{object}	tProduct	"updated product"
//	@failure	400	"invalid request format"
//	@failure	403	"user is not an admin"
//	@failure	404	"product not found"
//	@failure	422	"product fields are not valid"
//	@failure	500	"internal server error"
//	@Router		/api/admin/products/{id} [put]
func (s *Server) handlerAdminUpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCreateProduct{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	product := model.Product{
		ID:          productID,
		Name:        jBody.Name,
		Description: jBody.Description,
		CategoryID:  jBody.CategoryID,
		Price:       jBody.Price,
		Count:       jBody.Count,
		Discount:    jBody.Discount,
		Enabled:     jBody.Enabled,
	}
	if err := s.service.UpdateProduct(ctx, &product); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, market.ErrNameNotValid) ||
			errors.Is(err, market.ErrPriceNotValid) ||
			errors.Is(err, market.ErrDiscountNotValid) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed update product", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newProduct(product))
}

//	@Summary	Delete product
//	@Schemes
//	@Tags		admin
//	@Produce	plain
//	@Param		id	path	integer	true	"product id"
//	@Success	200	"product deleted"
//	@failure	403	"user is not an admin"
//	@failure	404	"product not found"
//	@failure	500	"internal server error"
//	@Router		/api/admin/products/{id} [delete]
func (s *Server) handlerAdminDeleteProduct(c *gin.Context) {
	productID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed delete product", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Create category
//	@Schemes
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		category	body	tCreateCategory	true	"category"
//	@Success	201	{object}	tCategory	"created category"
//	@failure	400	"invalid request format"
//	@failure	403	"user is not an admin"
//	@failure	404	"parent category not found"
//	@failure	409	"name already taken"
//	@failure	422	"category name is not valid"
//	@failure	500	"internal server error"
//	@Router		/api/admin/categories [post]
func (s *Server) handlerAdminCreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCreateCategory{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	category := model.Category{Name: jBody.Name, ParentID: jBody.ParentID}
	if err := s.service.CreateCategory(ctx, &category); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrNameNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, market.ErrNameNotValid) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed create category", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, tCategory{ID: category.ID, Name: category.Name, ParentID: category.ParentID})
}

//	@Summary	Update category
//	@Schemes
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id			path	integer			true	"category id"
//	@Param		category	body	tCreateCategory	true	"category"
//	@Success	200	{object}	tCategory	"updated category"
//	@failure	400	"invalid request format"
//	@failure	403	"user is not an admin"
//	@failure	404	"category not found"
//	@failure	409	"parent change would create a cycle"
//	@failure	422	"category name is not valid"
//	@failure	500	"internal server error"
//	@Router		/api/admin/categories/{id} [put]
func (s *Server) handlerAdminUpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	categoryID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCreateCategory{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	category := model.Category{ID: categoryID, Name: jBody.Name, ParentID: jBody.ParentID}
	if err := s.service.UpdateCategory(ctx, &category); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrCategoryCycle) || errors.Is(err, errstore.ErrNameNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, market.ErrNameNotValid) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed update category", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, tCategory{ID: category.ID, Name: category.Name, ParentID: category.ParentID})
}

//	@Summary	Delete category
//	@Schemes
//	@Tags		admin
//	@Produce	plain
//	@Param		id	path	integer	true	"category id"
//	@Success	200	"category deleted"
//	@failure	403	"user is not an admin"
//	@failure	404	"category not found"
//	@failure	409	"category still holds products or subcategories"
//	@failure	500	"internal server error"
//	@Router		/api/admin/categories/{id} [delete]
func (s *Server) handlerAdminDeleteCategory(c *gin.Context) {
	categoryID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrCategoryInUse) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		s.log.Error("failed delete category", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Create expansion
//	@Schemes
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		expansion	body	tName	true	"expansion"
//	@Success	201	{object}	tName	"created expansion"
//	@failure	400	"invalid request format"
//	@failure	403	"user is not an admin"
//	@failure	409	"name already taken"
//	@failure	422	"name is not valid"
//	@failure	500	"internal server error"
//	@Router		/api/admin/expansions [post]
func (s *Server) handlerAdminCreateExpansion(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tName{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	expansion := model.Expansion{Name: jBody.Name}
	if err := s.service.CreateExpansion(ctx, &expansion); err != nil {
		if errors.Is(err, errstore.ErrNameNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, market.ErrNameNotValid) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed create expansion", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, tName{Name: expansion.Name})
}

//	@Summary	Create realm
//	@Schemes
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		realm	body	tName	true	"realm"
//	@Success	201	{object}	tName	"created realm"
//	@failure	400	"invalid request format"
//	@failure	403	"user is not an admin"
//	@failure	409	"name already taken"
//	@failure	422	"name is not valid"
//	@failure	500	"internal server error"
//	@Router		/api/admin/realms [post]
func (s *Server) handlerAdminCreateRealm(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tName{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	realm := model.Realm{Name: jBody.Name}
	if err := s.service.CreateRealm(ctx, &realm); err != nil {
		if errors.Is(err, errstore.ErrNameNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, market.ErrNameNotValid) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("failed create realm", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, tName{Name: realm.Name})
}

//	@Summary	Change offer status
//	@Schemes
//	@Description	moves an offer along its review workflow
//	@Tags			admin
//	@Accept			json
//	@Produce		plain
//	@Param			id		path	integer			true	"offer id"
//	@Param			status	body	tOfferStatus	true	"target status"
//	@Success		200	"status changed"
//	@failure		400	"invalid request format"
//	@failure		403	"user is not an admin"
//	@failure		404	"offer not found"
//	@failure		409	"transition is not allowed"
//	@failure		500	"internal server error"
//	@Router			/api/admin/offers/{id}/status [patch]
func (s *Server) handlerAdminOfferStatus(c *gin.Context) {
	ctx := c.Request.Context()

	offerID, err := paramID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tOfferStatus{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.TransitionOffer(ctx, offerID, model.OfferStatus(jBody.Status)); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, market.ErrInvalidTransition) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		s.log.Error("failed transition offer", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}
