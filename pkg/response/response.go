package response

import "github.com/gin-gonic/gin"

// Error writes the API error envelope: {"error": <message>}.
func Error(ctx *gin.Context, httpStatus int, msg string) {
	ctx.JSON(httpStatus, gin.H{"error": msg})
}

// OK writes a success body. Resources are wrapped under named keys by the
// caller, e.g. OK(ctx, 200, gin.H{"product": p}).
func OK(ctx *gin.Context, httpStatus int, body gin.H) {
	ctx.JSON(httpStatus, body)
}
