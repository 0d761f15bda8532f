package handlers

import (
	"net/http"

	"github.com/colocapp/coloc-api/internal/services"
	"github.com/gin-gonic/gin"
)

// UploadProfilePhoto accepts a single multipart file under the "photo" field
// and returns the stored photo's URL.
func UploadProfilePhoto(u *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := principal(c); !ok {
			return
		}

		file, err := c.FormFile("photo")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "No file uploaded",
			})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		defer src.Close()

		photoURL, err := u.SaveProfilePhoto(c.Request.Context(), file.Filename, src)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"photoURL": photoURL,
		})
	}
}
