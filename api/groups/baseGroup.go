package groups

import (
	"github.com/gin-gonic/gin"
	"github.com/klever-io/evm-wallet-checker/api/shared"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("evm-wallet-checker/api/groups")

type baseGroup struct {
	endpoints []*shared.EndpointHandlerData
}

// GetEndpoints returns all the endpoints specific to the group
func (bg *baseGroup) GetEndpoints() []*shared.EndpointHandlerData {
	return bg.endpoints
}

// RegisterRoutes will register all the endpoints to the given web server
func (bg *baseGroup) RegisterRoutes(ws *gin.RouterGroup) {
	for _, handlerData := range bg.endpoints {
		log.Debug("registering endpoint", "path", ws.BasePath()+handlerData.Path, "method", handlerData.Method)
		ws.Handle(handlerData.Method, handlerData.Path, handlerData.Handler)
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (bg *baseGroup) IsInterfaceNil() bool {
	return bg == nil
}
