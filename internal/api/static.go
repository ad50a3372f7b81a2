package api

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// SetupStaticRoutes serves the embedded chat UI from the site root.
func SetupStaticRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("static/index.html", http.FS(staticFS))
	})
	r.GET("/app.js", func(c *gin.Context) {
		c.Header("Content-Type", "application/javascript")
		c.FileFromFS("static/app.js", http.FS(staticFS))
	})
	r.GET("/style.css", func(c *gin.Context) {
		c.Header("Content-Type", "text/css")
		c.FileFromFS("static/style.css", http.FS(staticFS))
	})
}
