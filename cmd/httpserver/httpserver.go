// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/mcba-ledger/internal/accountdelivery"
	"github.com/go-petr/mcba-ledger/internal/accountservice"
	"github.com/go-petr/mcba-ledger/internal/billpaydelivery"
	"github.com/go-petr/mcba-ledger/internal/billpayservice"
	"github.com/go-petr/mcba-ledger/internal/logindelivery"
	"github.com/go-petr/mcba-ledger/internal/loginservice"
	"github.com/go-petr/mcba-ledger/internal/middleware"
	"github.com/go-petr/mcba-ledger/internal/transferdelivery"
	"github.com/go-petr/mcba-ledger/internal/transferservice"
	"github.com/go-petr/mcba-ledger/pkg/configpkg"
	"github.com/go-petr/mcba-ledger/pkg/tokenpkg"
)

// Server holds the ledger store, handlers router and configuration.
type Server struct {
	Store    Store
	Engine   *gin.Engine
	Config   configpkg.Config
	BillPays *billpayservice.Service
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(store Store, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := newTokenMaker(config)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	loginService := loginservice.New(store)
	accountService := accountservice.New(store)
	transferService := transferservice.New(store)
	billPayService := billpayservice.New(store, store, transferService)

	loginHandler := logindelivery.NewHandler(loginService, tokenMaker, config.AccessTokenDuration)
	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)
	billPayHandler := billpaydelivery.NewHandler(billPayService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/login", loginHandler.Login)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.GET("/accounts", accountHandler.List)
	authRoutes.GET("/accounts/:number", accountHandler.Get)
	authRoutes.GET("/accounts/:number/transactions", accountHandler.Statement)

	authRoutes.POST("/accounts/:number/deposits", transferHandler.Deposit)
	authRoutes.POST("/accounts/:number/withdrawals", transferHandler.Withdraw)
	authRoutes.POST("/accounts/:number/transfers", transferHandler.Transfer)

	authRoutes.GET("/billpays", billPayHandler.List)
	authRoutes.POST("/billpays", billPayHandler.Create)
	authRoutes.GET("/billpays/:id", billPayHandler.Get)
	authRoutes.PUT("/billpays/:id", billPayHandler.Update)
	authRoutes.DELETE("/billpays/:id", billPayHandler.Delete)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("period", billpaydelivery.ValidPeriod)
		if err != nil {
			return nil, errors.New("cannot register period validator")
		}
	}

	server := &Server{
		Store:    store,
		Engine:   engine,
		Config:   config,
		BillPays: billPayService,
	}

	return server, nil
}

func newTokenMaker(config configpkg.Config) (tokenpkg.Maker, error) {
	if config.TokenMaker == configpkg.TokenJWT {
		return tokenpkg.NewJWTMaker(config.TokenSymmetricKey)
	}

	return tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
}
