package gin

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	apiErrors "github.com/klever-io/evm-wallet-checker/api/errors"
	"github.com/klever-io/evm-wallet-checker/api/groups"
	"github.com/klever-io/evm-wallet-checker/api/shared"
	"github.com/klever-io/evm-wallet-checker/facade"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsPath = "/metrics"

var log = logger.GetOrCreate("evm-wallet-checker/api/gin")

// ArgsNewWebServer holds the arguments needed to create a new instance of webServer
type ArgsNewWebServer struct {
	Facade          shared.FacadeHandler
	MetricsGatherer prometheus.Gatherer
	EnableLogRoute  bool
	DebugMode       bool
}

type webServer struct {
	sync.RWMutex
	facade          shared.FacadeHandler
	metricsGatherer prometheus.Gatherer
	enableLogRoute  bool
	debugMode       bool
	httpServer      shared.HttpServerCloser
	groups          map[string]shared.GroupHandler
}

// NewGinWebServerHandler returns a new instance of webServer
func NewGinWebServerHandler(args ArgsNewWebServer) (*webServer, error) {
	if check.IfNil(args.Facade) {
		return nil, fmt.Errorf("%w: %s", apiErrors.ErrCannotCreateGinWebServer, apiErrors.ErrNilFacadeHandler.Error())
	}

	return &webServer{
		facade:          args.Facade,
		metricsGatherer: args.MetricsGatherer,
		enableLogRoute:  args.EnableLogRoute,
		debugMode:       args.DebugMode,
	}, nil
}

// StartHttpServer will create a new instance of http.Server, populate it with all the routes and start it
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	if ws.facade.RestApiInterface() == facade.DefaultRestPortOff {
		log.Debug("web server is turned off")
		return nil
	}

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	server := &http.Server{Addr: ws.facade.RestApiInterface(), Handler: engine}
	log.Debug("creating gin web sever", "interface", ws.facade.RestApiInterface())
	ws.httpServer, err = NewHttpServer(server)
	if err != nil {
		return err
	}

	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	if !ws.debugMode {
		gin.DefaultWriter = &ginWriter{}
		gin.DefaultErrorWriter = &ginErrorWriter{}
		gin.DisableConsoleColor()
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(cors.Default())

	err := ws.createGroups()
	if err != nil {
		return nil, err
	}

	ws.registerRoutes(engine)

	return engine, nil
}

func (ws *webServer) createGroups() error {
	groupsMap := make(map[string]shared.GroupHandler)

	walletGroup, err := groups.NewWalletGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["wallet"] = walletGroup

	transactionGroup, err := groups.NewTransactionGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["transaction"] = transactionGroup

	networkGroup, err := groups.NewNetworkGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["network"] = networkGroup

	ws.groups = groupsMap

	return nil
}

func (ws *webServer) registerRoutes(ginRouter *gin.Engine) {
	for groupName, groupHandler := range ws.groups {
		log.Debug("registering gin API group", "group name", groupName)
		ginGroup := ginRouter.Group(fmt.Sprintf("/%s", groupName))
		groupHandler.RegisterRoutes(ginGroup)
	}

	if ws.metricsGatherer != nil {
		ginRouter.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(ws.metricsGatherer, promhttp.HandlerOpts{})))
	}

	if ws.enableLogRoute {
		registerLoggerWsRoute(ginRouter)
	}
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	ws.Lock()
	defer ws.Unlock()

	if check.IfNil(ws.httpServer) {
		return nil
	}

	err := ws.httpServer.Close()
	if err != nil {
		err = fmt.Errorf("%w while closing the http server in gin/webServer", err)
	}

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
