package rest

import (
	"net/http"
	"strconv"

	"github.com/gocraft/web"

	"github.com/Snapper-Future-Tech/Fabric-sdk/config"
	"github.com/Snapper-Future-Tech/Fabric-sdk/logging"
)

const LOGTABLE_REST string = "rest"

var router *web.Router

var restLog logging.LogModule

type serverREST struct {
}

func (s *serverREST) SetResponseType(rw web.ResponseWriter, req *web.Request, next web.NextMiddlewareFunc) {
	rw.Header().Set("Content-Type", "application/json")

	// Enable CORS
	rw.Header().Set("Access-Control-Allow-Origin", "*")
	rw.Header().Set("Access-Control-Allow-Headers", "accept, content-type")

	next(rw, req)
}

func buildRESTRouter() *web.Router {
	s := serverREST{}
	router = web.New(s)
	router.Middleware((*serverREST).SetResponseType)
	router.Get("/v1/identity", (*serverREST).GetIdentity)
	router.Post("/v1/csr", (*serverREST).GenCSR)
	router.Post("/v1/cert", (*serverREST).GenSelfSignedCert)
	router.Post("/v1/sign", (*serverREST).SignMsg)
	router.Post("/v1/verify", (*serverREST).VerifyMsg)

	return router
}

func StartRESTServer() {
	restLog = logging.GetLogIns()
	router := buildRESTRouter()
	port := strconv.FormatUint(uint64(config.Config.RestPort), 10)
	restLog.Infof(LOGTABLE_REST, "REST server listening on :%s", port)
	err := http.ListenAndServe(":"+port, router)
	if err != nil {
		restLog.Errorf(LOGTABLE_REST, "REST server stopped: %s", err.Error())
	}
}
