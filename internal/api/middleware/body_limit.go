package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tech-sunvi/gas-gomission/pkg/response"
)

// BodyLimit limitation globale de la taille du corps des requêtes
// maxBytes: taille maximale autorisée en octets (ex. 1<<20 = 1 Mo)
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "corps de requête trop volumineux")
				return
			}
		}
	}
}
