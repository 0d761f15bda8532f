package handlers

import (
	"net/http"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/helpers"
	"github.com/colocapp/coloc-api/internal/middleware"
	"github.com/colocapp/coloc-api/internal/models"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	res := models.ErrorResponse(err.Error())
	res.Code = apperr.CodeOf(err)
	c.JSON(apperr.HTTPStatus(err), res)
}

// principal fetches the identity attached by the auth gate, rejecting the
// request when a handler is reached without one.
func principal(c *gin.Context) (*helpers.Principal, bool) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
	}
	return p, ok
}
