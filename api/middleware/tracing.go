package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go/log"

	"github.com/alumicraft/docmailer/internal/tracing"
)

// TracingMiddleware creates a new span for each request and adds common tags
func TracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(
			c.Request.Context(),
			c.Request.Method+" "+c.FullPath(),
			c.Request.Header,
		)
		defer span.Finish()
		tracing.TagComponentRest(span)
		span.LogFields(log.String("client.ip", c.ClientIP()))

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetTag("http.status_code", c.Writer.Status())
	}
}
