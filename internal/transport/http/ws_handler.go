package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"crorepati-quiz-service/internal/app"
	"crorepati-quiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

// WSHandler serves one quiz session per websocket connection: the
// presentation layer sends register/answer/restart intents and receives
// state snapshots, cues and errors.
type WSHandler struct {
	newGame  func() *app.Game
	upgrader websocket.Upgrader
}

func NewWSHandler(newGame func() *app.Game) *WSHandler {
	return &WSHandler{
		newGame: newGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type registerPayload struct {
	Name      string `json:"name"`
	ClassName string `json:"className"`
}

type answerPayload struct {
	Option domain.OptionKey `json:"option"`
}

type cuePayload struct {
	Cue domain.Cue `json:"cue"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into a fresh
// game session.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	game := h.newGame()
	defer game.Close()

	events, cancel := game.Subscribe()
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "state", Payload: ev.Snapshot}:
				case <-closeSignals:
					return
				}
				if ev.Cue == "" {
					continue
				}
				select {
				case send <- outboundMessage[any]{Type: "cue", Payload: cuePayload{Cue: ev.Cue}}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "register":
			var payload registerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid register payload")
				continue
			}
			if err := game.Register(r.Context(), payload.Name, payload.ClassName); err != nil {
				send <- errorMessage(userMessage(err))
			}
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid answer payload")
				continue
			}
			if err := game.SubmitAnswer(r.Context(), payload.Option); err != nil {
				send <- errorMessage(userMessage(err))
			}
		case "restart":
			if err := game.Restart(r.Context()); err != nil {
				send <- errorMessage(userMessage(err))
			}
		default:
			send <- errorMessage("unknown message type: " + inbound.Type)
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}

func errorMessage(msg string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: msg}}
}

// userMessage maps well-known failures onto the messages the original game
// shows its players.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoQuestions):
		return "કોઈ પ્રશ્નો ઉપલબ્ધ નથી"
	case errors.Is(err, domain.ErrValidation):
		return "કૃપા કરીને બધી માહિતી ભરો (" + err.Error() + ")"
	default:
		return err.Error()
	}
}
