package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idn-area/internal/pagination"
	"idn-area/internal/response"
)

// NotFound answers unknown routes in the error shape.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Cannot "+c.Request.Method+" "+c.Request.URL.Path)
}

// linkTemplate renders page links for route, keeping the caller's query.
// route uses {name} placeholders filled from params.
func linkTemplate(c *gin.Context, route string, params map[string]string) pagination.LinkTemplate {
	return pagination.LinkTemplate{
		Route:  route,
		Params: params,
		Query:  c.Request.URL.Query(),
	}
}

func respondPage[T any](c *gin.Context, tr *response.Transformer, page pagination.Page[T], tmpl pagination.LinkTemplate) {
	c.JSON(http.StatusOK, tr.OK("", response.FromPage(page, tmpl)))
}

func respondSingle[T any](c *gin.Context, tr *response.Transformer, v T) {
	c.JSON(http.StatusOK, tr.OK("", response.Single[T]{Value: v}))
}
