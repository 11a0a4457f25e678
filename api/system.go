package api

import (
	"fmt"
	"net/http"

	"github.com/pauloatx/page-teste02/web"
)

type SystemHandler struct{}

func (h *SystemHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Servidor funcionando corretamente!")
}

func (h *SystemHandler) CadastroHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(web.CadastroPage)
}
