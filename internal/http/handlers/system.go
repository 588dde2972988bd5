package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idn-area/internal/response"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Envelope{StatusCode: http.StatusOK, Message: response.DefaultMessage})
}
