package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nextgear/internal/domain"
)

type addProductRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	PriceCents  int64  `json:"priceCents"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
	InStock     *bool  `json:"inStock"`
}

func addProductHandler(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the admin form leaves the id blank; derive one like the Mini App does
	id := req.ID
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := domain.Product{
		ID:          id,
		Name:        req.Name,
		PriceCents:  req.PriceCents,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		InStock:     inStock,
	}
	if err := currentSession(c).AddProduct(product); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func removeProductHandler(c *gin.Context) {
	if err := currentSession(c).RemoveProduct(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func listPendingOrdersHandler(c *gin.Context) {
	orders := currentSession(c).PendingOrders()
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

type processOrderRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

func processOrderHandler(c *gin.Context) {
	var req processOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := currentSession(c).ProcessOrder(c.Param("id"), *req.Approved)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
