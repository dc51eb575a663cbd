package handler

import (
	"github.com/gin-gonic/gin"
)

// GetSalesPersonCode extracts the authenticated salesperson code from the
// Gin context
func GetSalesPersonCode(c *gin.Context) string {
	return c.GetString("sales_person_code")
}

// GetSalesPersonName extracts the authenticated salesperson name from the
// Gin context
func GetSalesPersonName(c *gin.Context) string {
	return c.GetString("sales_person_name")
}
