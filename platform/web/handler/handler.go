package handler

import "github.com/gin-gonic/gin"

// Result carries what a handler produced: the status code plus the body to serialize
type Result struct {
	Status int
	Body   interface{}
}

// Response is the envelope every note route answers with
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success wraps data into a successful envelope
func Success(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Failure wraps an error message into a failed envelope
func Failure(msg string) Response {
	return Response{Success: false, Error: msg}
}

// Wrapper adapts a Result returning func into a gin handler
func Wrapper(handler func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := handler(ctx)
		ctx.JSON(result.Status, result.Body)
	}
}
