package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"e-commerce.backend/internal/interfaces/http/handlers"
)

func testRouteDeps(allowSelfPromote bool) routeDeps {
	pass := func(c *gin.Context) { c.Next() }
	return routeDeps{
		authHandler:   &handlers.AuthHandler{},
		adminHandler:  &handlers.AdminHandler{},
		goodsHandler:  &handlers.GoodsHandler{},
		ordersHandler: &handlers.OrdersHandler{},
		sessionAuth: func(c *gin.Context) {
			c.AbortWithStatus(http.StatusUnauthorized)
		},
		authRateLimit:    pass,
		allowSelfPromote: allowSelfPromote,
	}
}

func hasRoute(r *gin.Engine, method, path string) bool {
	for _, route := range r.Routes() {
		if route.Method == method && route.Path == path {
			return true
		}
	}
	return false
}

func containsLine(body, line string) bool {
	for _, l := range strings.Split(body, "\n") {
		if l == line {
			return true
		}
	}
	return false
}

func TestRegisterRoutes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r, testRouteDeps(false))

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/register"},
		{"POST", "/login"},
		{"POST", "/logout"},
		{"GET", "/users/:id"},
		{"GET", "/about_me"},
		{"POST", "/options/verified"},
		{"POST", "/options/verify/:token"},
		{"POST", "/options/forgot"},
		{"POST", "/options/reset/:token"},
		{"PATCH", "/control/activate"},
		{"PATCH", "/control/deactivate"},
		{"DELETE", "/control/delete"},
		{"POST", "/goods/add"},
		{"GET", "/goods/my_goods"},
		{"GET", "/goods/seller/:id"},
		{"GET", "/goods/search"},
		{"PATCH", "/goods/change_price"},
		{"DELETE", "/goods/delete"},
		{"POST", "/orders/add"},
		{"DELETE", "/orders/delete"},
		{"GET", "/orders/my_orders"},
	}
	for _, exp := range expects {
		if !hasRoute(r, exp.method, exp.path) {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
	if hasRoute(r, "PATCH", "/control/admin") {
		t.Fatal("self promotion must be off by default")
	}
}

func TestRegisterRoutes_SelfPromoteWhenEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r, testRouteDeps(true))

	if !hasRoute(r, "PATCH", "/control/admin") {
		t.Fatal("expected PATCH /control/admin")
	}
}

func TestRegisterRoutes_ProtectedRoutesRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r, testRouteDeps(false))

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/about_me"},
		{http.MethodPost, "/logout"},
		{http.MethodPatch, "/control/activate?id=1"},
		{http.MethodPost, "/goods/add"},
		{http.MethodPost, "/orders/add"},
		{http.MethodGet, "/orders/my_orders"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}
