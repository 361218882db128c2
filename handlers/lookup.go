package handlers

import (
	"errors"
	"net/http"

	"karkhana/services/verify"
	"karkhana/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PincodeLookupHandler resolves a pincode to its city and state for address
// prefill during registration.
func PincodeLookupHandler(client *verify.PincodeClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		pincode := c.Param("pincode")
		if msg := validation.Pincode(pincode); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		location, err := client.Lookup(c.Request.Context(), pincode)
		if err != nil {
			if errors.Is(err, verify.ErrInvalidPincode) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Pincode lookup failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to look up pincode"})
			return
		}
		c.JSON(http.StatusOK, location)
	}
}
