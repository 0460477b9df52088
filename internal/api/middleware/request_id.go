package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen limite la longueur d'un Request-ID externe pour éviter
// l'injection dans les journaux
const requestIDMaxLen = 64

// RequestID identifiant de traçage des requêtes.
// Lu depuis l'en-tête X-Request-ID, un UUID est généré à défaut.
// Le résultat est injecté dans gin.Context et renvoyé en en-tête de réponse.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
