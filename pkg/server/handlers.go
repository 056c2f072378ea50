package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlindgren/cpolar/pkg/polar"
	"github.com/mlindgren/cpolar/pkg/types"
	"github.com/mlindgren/cpolar/pkg/version"
)

func postFormat(c *gin.Context) {
	var req types.FormatRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	in, err := req.Value.Input()
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	s, err := polar.Format(in, req.Decimals)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	c.IndentedJSON(http.StatusOK, s)
}

func postConstruct(c *gin.Context) {
	var req types.ValueInput
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	in, err := req.Input()
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	z, err := polar.Construct(in)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	c.IndentedJSON(http.StatusOK, types.ConstructResponse{
		Real:         real(z),
		Imag:         imag(z),
		Magnitude:    polar.Magnitude(z),
		AngleDegrees: polar.AngleDegrees(z),
	})
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
