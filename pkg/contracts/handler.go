package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by each domain's HTTP handler so the shared
// application shell can mount it.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}
