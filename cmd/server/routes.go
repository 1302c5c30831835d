package main

import (
	"github.com/gin-gonic/gin"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/interfaces/http/handlers"
	"marketplace.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler            *handlers.AuthHandler
	catalogHandler         *handlers.CatalogHandler
	merchantServiceHandler *handlers.MerchantServiceHandler
	orderHandler           *handlers.OrderHandler
	adminHandler           *handlers.AdminHandler
	authMiddleware         gin.HandlerFunc
	idempotencyMiddleware  gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/user/signup", d.authHandler.UserSignup)
			auth.POST("/user/login", d.authHandler.UserLogin)
			auth.POST("/merchant/signup", d.authHandler.MerchantSignup)
			auth.POST("/merchant/login", d.authHandler.MerchantLogin)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Public catalog
		api.GET("/categories", d.catalogHandler.ListCategories)
		api.GET("/categories/:id", d.catalogHandler.GetCategory)
		api.GET("/merchants", d.catalogHandler.ListMerchants)
		api.GET("/merchants/:id", d.catalogHandler.GetMerchant)
		api.GET("/merchants/:id/services", d.catalogHandler.ListMerchantServices)
		api.GET("/services", d.catalogHandler.ListServices)
		api.GET("/services/:id", d.catalogHandler.GetService)
		api.GET("/search", d.catalogHandler.Search)

		// Merchant routes
		merchant := api.Group("/merchant")
		merchant.Use(d.authMiddleware, middleware.RequireRole(entities.RoleMerchant))
		{
			merchant.POST("/services", d.merchantServiceHandler.Create)
			merchant.GET("/services", d.merchantServiceHandler.List)
			merchant.GET("/services/:id", d.merchantServiceHandler.Get)
			merchant.PUT("/services/:id", d.merchantServiceHandler.Update)
			merchant.DELETE("/services/:id", d.merchantServiceHandler.Delete)

			merchant.GET("/orders", d.orderHandler.List)
			merchant.GET("/orders/stats", d.orderHandler.Stats)
			merchant.GET("/orders/:id", d.orderHandler.Get)
			merchant.PUT("/orders/:id/status", d.orderHandler.UpdateStatus)
		}

		// Customer order routes
		orders := api.Group("/orders")
		orders.Use(d.authMiddleware, middleware.RequireRole(entities.RoleCustomer))
		{
			orders.POST("", d.idempotencyMiddleware, d.orderHandler.Create)
			orders.GET("", d.orderHandler.List)
			orders.GET("/:id", d.orderHandler.Get)
			orders.GET("/:id/events", d.orderHandler.Events)
			orders.PUT("/:id/cancel", d.orderHandler.Cancel)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.POST("/categories", d.adminHandler.CreateCategory)
			admin.GET("/merchants", d.adminHandler.ListMerchants)
			admin.PUT("/merchants/:id/status", d.adminHandler.UpdateMerchantStatus)
			admin.GET("/users", d.adminHandler.ListUsers)
		}
	}
}
