package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
)

type addInvoiceItemRequest struct {
	Name       string  `json:"name"`
	CategoryID string  `json:"categoryId"`
	Qty        float64 `json:"qty"`
	Price      float64 `json:"price"`
}

func (s *Server) GetInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"items":     s.session.Items(),
		"aggregate": s.session.Aggregate(),
	}})
}

func (s *Server) AddInvoiceItem(c *gin.Context) {
	var req addInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	item, err := s.session.AddItem(c.Request.Context(), invoicedomain.AddItemRequest{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Qty:        req.Qty,
		Price:      req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) CheckoutInvoice(c *gin.Context) {
	result, err := s.session.Checkout(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (s *Server) DiscardInvoice(c *gin.Context) {
	s.session.Discard()
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"discarded": true}})
}
