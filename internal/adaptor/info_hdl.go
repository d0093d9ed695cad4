package adaptor

import (
	"net/http"

	"github.com/go-chi/render"
)

type InfoHandler struct {
	appName string
}

func NewInfoHandler(appName string) *InfoHandler {
	return &InfoHandler{appName: appName}
}

// Hello handles GET /hello
func (h *InfoHandler) Hello(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "Hello from "+h.appName)
}

// About handles GET /about
func (h *InfoHandler) About(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "About "+h.appName+": users, movies and their reviews")
}
