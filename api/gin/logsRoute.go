package gin

import (
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const logsPath = "/log"

var errWriterClosed = errors.New("writer is closed")

type wsConn interface {
	io.Closer
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
}

// wsLogWriter forwards formatted log lines to a websocket client
type wsLogWriter struct {
	mut    sync.Mutex
	conn   wsConn
	closed bool
}

// Write sends the log line as a text message
func (w *wsLogWriter) Write(p []byte) (int, error) {
	w.mut.Lock()
	defer w.mut.Unlock()

	if w.closed {
		return 0, errWriterClosed
	}

	err := w.conn.WriteMessage(websocket.TextMessage, p)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

// Close closes the underlying connection
func (w *wsLogWriter) Close() error {
	w.mut.Lock()
	defer w.mut.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	return w.conn.Close()
}

// streamLogs blocks until the client disconnects
func streamLogs(conn wsConn) {
	writer := &wsLogWriter{conn: conn}
	err := logger.AddLogObserver(writer, &logger.PlainFormatter{})
	if err != nil {
		log.Error("cannot attach websocket log observer", "error", err)
		_ = writer.Close()
		return
	}

	defer func() {
		errRemove := logger.RemoveLogObserver(writer)
		log.LogIfError(errRemove)
		_ = writer.Close()
	}()

	for {
		_, _, err = conn.ReadMessage()
		if err != nil {
			log.Debug("websocket log client disconnected", "error", err)
			return
		}
	}
}

func registerLoggerWsRoute(ws *gin.Engine) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws.GET(logsPath, func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error(err.Error())
			return
		}

		streamLogs(conn)
	})
}
