package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Greeting is the plain-text root endpoint.
func Greeting(c *gin.Context) {
	c.String(http.StatusOK, "Hello Next level developers!")
}
