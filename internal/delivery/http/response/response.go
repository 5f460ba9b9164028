package response

import (
	"github.com/gin-gonic/gin"
)

// The API speaks the flat JSON shapes of the original MatchJobs frontend:
// plain objects on success, {"message": ...} on failure. No envelope.

// Message sends a {"message": ...} body with the given status.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Error sends an error response. Same wire shape as Message; kept separate so
// call sites read correctly.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
