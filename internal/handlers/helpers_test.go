package handlers

import (
	"net/http"

	"smart_climate/internal/service"

	"github.com/gin-gonic/gin"
)

// newTestRouter builds the full route tree around mocked services.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

// authHeader returns headers that pass the Bearer middleware with a mockAuth.
func authHeader(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func applyHeaders(req *http.Request, hdr http.Header) {
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
}
