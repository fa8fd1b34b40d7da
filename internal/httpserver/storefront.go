package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nextgear/internal/telegram"
)

func listProductsHandler(c *gin.Context) {
	sess := currentSession(c)

	query := c.Query("q")
	category := c.Query("category")
	inStockOnly, _ := strconv.ParseBool(c.DefaultQuery("inStock", "false"))

	products := sess.SearchProducts(query, category, inStockOnly)
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

func listCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": currentSession(c).Categories()})
}

func meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Identity())
}

func listMyOrdersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": currentSession(c).Orders()})
}

func getCartHandler(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"items":      sess.Cart(),
		"totalCents": sess.CartTotal(),
	})
}

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func addToCartHandler(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := currentSession(c)
	if err := sess.AddToCartByID(req.ProductID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      sess.Cart(),
		"totalCents": sess.CartTotal(),
	})
}

func removeFromCartHandler(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.RemoveFromCart(c.Param("productId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      sess.Cart(),
		"totalCents": sess.CartTotal(),
	})
}

func clearCartHandler(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.ClearCart(); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func placeOrderHandler(c *gin.Context) {
	order, err := currentSession(c).PlaceOrder()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

type preOrderRequest struct {
	Name     string `json:"name" binding:"required"`
	PhotoURL string `json:"photoUrl"`
}

// preOrderHandler composes a t.me deep link the frontend opens to send a
// pre-order request to the admin. No store state is touched.
func preOrderHandler(adminUsername string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req preOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		identity := currentSession(c).Identity()
		link := telegram.PreOrderLink(adminUsername, req.Name, req.PhotoURL, identity.Username)
		c.JSON(http.StatusOK, gin.H{"link": link})
	}
}
