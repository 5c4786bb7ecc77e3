package main

import (
	"github.com/gin-gonic/gin"

	"e-commerce.backend/internal/interfaces/http/handlers"
	"e-commerce.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	adminHandler     *handlers.AdminHandler
	goodsHandler     *handlers.GoodsHandler
	ordersHandler    *handlers.OrdersHandler
	sessionAuth      gin.HandlerFunc
	authRateLimit    gin.HandlerFunc
	allowSelfPromote bool
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Account
	r.POST("/register", d.authRateLimit, d.authHandler.Register)
	r.POST("/login", d.authRateLimit, d.authHandler.Login)
	r.POST("/logout", d.sessionAuth, d.authHandler.Logout)
	r.GET("/users/:id", d.authHandler.GetUser)
	r.GET("/about_me", d.sessionAuth, d.authHandler.AboutMe)

	options := r.Group("/options")
	{
		options.POST("/verified", d.sessionAuth, d.authHandler.RequestVerify)
		options.POST("/verify/:token", d.authHandler.Verify)
		options.POST("/forgot", d.authHandler.ForgotPassword)
		options.POST("/reset/:token", d.authHandler.ResetPassword)
	}

	control := r.Group("/control")
	control.Use(d.sessionAuth)
	{
		if d.allowSelfPromote {
			control.PATCH("/admin", d.adminHandler.PromoteSelf)
		}
		control.PATCH("/activate", d.adminHandler.Activate)
		control.PATCH("/deactivate", d.adminHandler.Deactivate)
		control.DELETE("/delete", d.adminHandler.Delete)
	}

	goods := r.Group("/goods")
	{
		goods.POST("/add", d.sessionAuth, d.goodsHandler.AddGood)
		goods.GET("/my_goods", d.sessionAuth, d.goodsHandler.ListMyGoods)
		goods.GET("/seller/:id", d.goodsHandler.ListBySeller)
		goods.GET("/search", d.goodsHandler.Search)
		goods.PATCH("/change_price", d.sessionAuth, d.goodsHandler.ChangePrice)
		goods.DELETE("/delete", d.sessionAuth, d.goodsHandler.DeleteGood)
	}

	orders := r.Group("/orders")
	orders.Use(d.sessionAuth)
	{
		orders.POST("/add", middleware.IdempotencyMiddleware(), d.ordersHandler.AddOrder)
		orders.DELETE("/delete", d.ordersHandler.DeleteOrder)
		orders.GET("/my_orders", d.ordersHandler.ListMyOrders)
	}
}
