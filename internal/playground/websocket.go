package playground

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
	"github.com/msto63/rubic/foundation/rubic/token"
)

const (
	wsReadTimeout  = 120 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// WebSocket upgrader with permissive settings for local development
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is a client message
type WSMessage struct {
	Type    string          `json:"type"`    // "eval", "ping"
	Payload json.RawMessage `json:"payload"` // message specific payload
}

// WSEvalPayload carries a line to evaluate
type WSEvalPayload struct {
	Source string `json:"source"`
}

// WSResponse is a server message
type WSResponse struct {
	Type    string      `json:"type"`              // "tokens", "program", "error", "pong", "bye"
	Payload interface{} `json:"payload,omitempty"` // response specific payload
}

// WSTokensPayload lists the tokens of an evaluated line
type WSTokensPayload struct {
	Tokens []token.Token `json:"tokens"`
}

// WSErrorPayload describes a failed request
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleWebSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err.Error())
		return nil
	}
	s.handleConnection(c, conn)
	return nil
}

// handleConnection answers client messages until the client leaves or
// sends the exit word
func (s *Server) handleConnection(c echo.Context, conn *websocket.Conn) {
	defer conn.Close()

	ctx := c.Request().Context()
	logger := s.logger.With("remote", conn.RemoteAddr().String())
	logger.Info("WebSocket connection established")

	conn.SetReadLimit(requestLimit(s.engine.Options().MaxSourceLength))
	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error", "error", err.Error())
			} else {
				logger.Info("WebSocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		switch msg.Type {
		case "ping":
			s.send(conn, WSResponse{Type: "pong"})

		case "eval":
			var payload WSEvalPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				s.sendError(conn, mdwerror.CodeInvalidInput, "invalid eval payload")
				continue
			}

			out := s.eval.Eval(ctx, payload.Source)
			if out.Err != nil {
				s.sendError(conn, mdwerror.GetCode(out.Err), out.Err.Error())
				continue
			}

			s.send(conn, WSResponse{Type: "tokens", Payload: WSTokensPayload{Tokens: out.Tokens}})
			if out.Exit {
				s.send(conn, WSResponse{Type: "bye"})
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "goodbye"),
					time.Now().Add(wsWriteTimeout))
				logger.Info("WebSocket session ended by exit word")
				return
			}
			s.send(conn, WSResponse{Type: "program", Payload: newParseResponse(out.Result)})

		default:
			s.sendError(conn, mdwerror.CodeInvalidInput, "unknown message type: "+msg.Type)
		}
	}
}

func (s *Server) send(conn *websocket.Conn, resp WSResponse) {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(resp); err != nil {
		s.logger.Warn("WebSocket send error", "error", err.Error())
	}
}

func (s *Server) sendError(conn *websocket.Conn, code mdwerror.Code, message string) {
	s.send(conn, WSResponse{
		Type:    "error",
		Payload: WSErrorPayload{Code: code.String(), Message: message},
	})
}
