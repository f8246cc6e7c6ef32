package rest

import (
	"context"
	"encoding/gob"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/playmixer/goldmarket/docs"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"github.com/playmixer/goldmarket/internal/core/market"
	"github.com/playmixer/goldmarket/pkg/jwt"
)

var (
	cookieName     = "token"
	cookieKey      = "UserID"
	sessionCartKey = "cart"
)

func init() {
	gob.Register(market.Cart{})
}

type marketI interface {
	Register(ctx context.Context, login, password, email, phone string) error
	Authorization(ctx context.Context, login, password string) (model.User, error)
	GetUser(ctx context.Context, userID uint) (model.User, error)

	Products(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint) error
	Categories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, categoryID uint) error
	Expansions(ctx context.Context) ([]*model.Expansion, error)
	CreateExpansion(ctx context.Context, expansion *model.Expansion) error
	CreateRealm(ctx context.Context, realm *model.Realm) error

	CartView(ctx context.Context, cart market.Cart) ([]market.CartItem, int, error)
	AddToCart(ctx context.Context, cart market.Cart, productID uint) error
	Checkout(ctx context.Context, userID uint, cart market.Cart, battleTag, description, callbackURL, userIP string) (string, error)
	VerifyPayment(ctx context.Context, status, authority string) (market.VerifyResult, error)

	Orders(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error)
	GetOrder(ctx context.Context, orderID uint) (model.Order, error)
	CreateOrder(ctx context.Context, order *model.Order) error
	ActiveOffer(ctx context.Context, orderID, sellerID uint) (model.Offer, bool, error)
	SubmitOffer(ctx context.Context, orderID, sellerID uint, quantity int) (model.Offer, error)
	AttachProof(ctx context.Context, orderID, sellerID uint, file market.ProofFile) error
	TransitionOffer(ctx context.Context, offerID uint, to model.OfferStatus) error
}

type Server struct {
	log     *zap.Logger
	engine  *gin.Engine
	service marketI
	address string
	baseURL string
	secret  []byte
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.baseURL = cfg.BaseURL
		s.secret = []byte(cfg.Secret)
	}
}

//	@title			Goldmarket
//	@version		1.0
//	@description	Gold marketplace with storefront checkout and order/offer ledger.
//	@host			localhost:8080
//	@BasePath		/

func New(service marketI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	for _, opt := range options {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
		sessions.Sessions("goldmarket", cookie.NewStore(s.secret)),
	)

	api := s.engine.Group("/api")
	{
		api.POST("/user/register", s.handlerRegister)
		api.POST("/user/login", s.handlerLogin)

		api.GET("/products", s.handlerProducts)
		api.GET("/products/:id", s.handlerProduct)
		api.GET("/categories", s.handlerCategories)
		api.GET("/expansions", s.handlerExpansions)
		api.GET("/orders", s.handlerOrders)

		cart := api.Group("/cart")
		{
			cart.GET("", s.handlerCart)
			cart.POST("/add/:id", s.handlerCartAdd)
			cart.POST("/remove/:id", s.handlerCartRemove)
			cart.POST("/decrease/:id", s.handlerCartDecrease)
			cart.POST("/empty", s.handlerCartEmpty)
		}

		authAPI := api.Group("/")
		authAPI.Use(s.Authentication())
		{
			authAPI.POST("/checkout", s.handlerCheckout)
			authAPI.GET("/payment/verify", s.handlerVerifyPayment)
			authAPI.POST("/orders", s.handlerCreateOrder)
			authAPI.GET("/orders/:id", s.handlerOrder)
			authAPI.POST("/orders/:id/offers", s.handlerSubmitOffer)
			authAPI.POST("/orders/:id/proof", s.handlerAttachProof)
		}

		admin := api.Group("/admin")
		admin.Use(s.Authentication(), s.AdminOnly())
		{
			admin.POST("/products", s.handlerAdminCreateProduct)
			admin.PUT("/products/:id", s.handlerAdminUpdateProduct)
			admin.DELETE("/products/:id", s.handlerAdminDeleteProduct)
			admin.POST("/categories", s.handlerAdminCreateCategory)
			admin.PUT("/categories/:id", s.handlerAdminUpdateCategory)
			admin.DELETE("/categories/:id", s.handlerAdminDeleteCategory)
			admin.POST("/expansions", s.handlerAdminCreateExpansion)
			admin.POST("/realms", s.handlerAdminCreateRealm)
			admin.PATCH("/offers/:id/status", s.handlerAdminOfferStatus)
		}
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uint, err error) {
	var ok bool
	var userIDS string
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, fmt.Errorf("failed reade user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err = jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return 0, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}

	if !ok {
		return 0, fmt.Errorf("unverify usercookie: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't convert string userID to uint: %w", err)
	}

	return uint(userID64), nil
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) authorization(c *gin.Context, login, password string) error {
	ctx := c.Request.Context()
	var err error
	var user model.User
	if user, err = s.service.Authorization(ctx, login, password); err != nil {
		return fmt.Errorf("failed authorization: %w", err)
	}

	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(user.ID)))
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return nil
}

func (s *Server) sessionCart(c *gin.Context) market.Cart {
	session := sessions.Default(c)
	if cart, ok := session.Get(sessionCartKey).(market.Cart); ok {
		return cart
	}
	return market.Cart{}
}

func (s *Server) saveSessionCart(c *gin.Context, cart market.Cart) {
	session := sessions.Default(c)
	session.Set(sessionCartKey, cart)
	if err := session.Save(); err != nil {
		s.log.Error("failed save session", zap.Error(err))
	}
}

func paramID(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed parse id param: %w", err)
	}
	return uint(id64), nil
}
