package server

import (
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

const internalErrorPage = `<html>
  <head>
    <title>500 Internal Server Error</title>
  </head>
  <body>
    <h1>Internal Server Error</h1>
    <img src='images/500.svg'>
    <p>
    Something went wrong. Sorry, sorry :(
    </p>
  </body>
</html>
`

// Pages serves the demo pages and static files.
type Pages struct {
	problems template.HTML
	public   fs.FS
}

// EnrichRoutes registers the page routes and the static fallback.
func (p *Pages) EnrichRoutes(router *gin.Engine) {
	router.GET("/", p.helloAction)
	router.GET("/problems", p.problemsAction)
	router.GET("/404", p.notFoundRedirectAction)
	router.GET("/500", p.internalErrorAction)
	router.GET("/400", p.badRequestAction)
	router.GET("/error", p.errorAction)
	router.NoRoute(p.staticAction)
}

func (p *Pages) helloAction(c *gin.Context) {
	c.String(http.StatusOK, "Hello, Moscow!")
}

func (p *Pages) problemsAction(c *gin.Context) {
	c.HTML(http.StatusOK, "problems.html.tmpl", gin.H{"Title": "Problems", "Body": p.problems})
}

func (p *Pages) notFoundRedirectAction(c *gin.Context) {
	c.Redirect(http.StatusFound, "/404.html")
}

func (p *Pages) internalErrorAction(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(internalErrorPage))
}

func (p *Pages) badRequestAction(c *gin.Context) {
	c.HTML(http.StatusBadRequest, "bad_request.html.tmpl", gin.H{"Method": c.Request.Method, "Path": c.Request.URL.Path})
}

func (p *Pages) errorAction(c *gin.Context) {
	writeMessage(c, http.StatusInternalServerError, MsgUnexpected)
}

// staticAction serves GET and HEAD requests for files of the public tree
// and answers everything else with the 404 page.
func (p *Pages) staticAction(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		name := strings.TrimPrefix(path.Clean(c.Request.URL.Path), "/")
		if info, err := fs.Stat(p.public, name); err == nil && !info.IsDir() {
			c.FileFromFS(name, http.FS(p.public))
			return
		}
	}
	p.notFound(c)
}

func (p *Pages) notFound(c *gin.Context) {
	page, err := fs.ReadFile(p.public, "404.html")
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", page)
}
