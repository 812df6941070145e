package network

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"

	"github.com/atakhatri/UNO-sub000/consts"
	"github.com/atakhatri/UNO-sub000/session"
	"github.com/atakhatri/UNO-sub000/store"
	"github.com/atakhatri/UNO-sub000/uno/game"
	"github.com/atakhatri/UNO-sub000/uno/player"
)

type Websocket struct {
	addr  string
	store store.Store
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, st store.Store) Websocket {
	return Websocket{addr: addr, store: st}
}

func (w Websocket) Serve() error {
	http.HandleFunc("/ws", w.serveWs)
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, nil)
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	client := &client{conn: conn, store: w.store}
	defer client.close()
	client.listen()
}

// client is one connected player: a websocket on one side, a session
// controller on the other. Bot seats requested at create time get their own
// controllers against the same store.
type client struct {
	conn  *websocket.Conn
	store store.Store

	writeMu    sync.Mutex
	controller *session.Controller
	bots       []*session.Controller
}

func (c *client) listen() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			c.sendError(consts.ErrorsActionInvalid)
			continue
		}
		if err := c.handle(req); err != nil {
			c.sendError(err)
		}
	}
}

func (c *client) handle(req Request) error {
	if c.controller == nil {
		switch req.Action {
		case ActionCreate:
			return c.create(req)
		case ActionJoin:
			return c.join(req)
		default:
			return consts.ErrorsGameInvalid
		}
	}
	switch req.Action {
	case ActionStart:
		return c.controller.StartGame()
	case ActionPlay:
		if req.Card == nil {
			return consts.ErrorsActionInvalid
		}
		return c.controller.PlayCard(*req.Card, req.HandIndex)
	case ActionDraw:
		return c.controller.DrawCard()
	case ActionColor:
		return c.controller.SelectColor(req.Color)
	case ActionUno:
		return c.controller.CallUno()
	case ActionLeave:
		err := c.controller.LeaveGame()
		c.detachBots()
		c.controller = nil
		return err
	default:
		return consts.ErrorsActionInvalid
	}
}

func (c *client) create(req Request) error {
	ctrl := session.New(session.Config{
		Store:    c.store,
		GameID:   req.GameID,
		UID:      uuid.NewString(),
		Name:     req.Name,
		AutoDraw: consts.PlayTimeout,
		OnState:  c.pushState,
	})
	if err := ctrl.CreateGame(); err != nil {
		return err
	}
	c.controller = ctrl
	c.sendWelcome()

	// Solo and local modes: scripted opponents share the document like any
	// remote player would.
	for _, bot := range player.CreateBots(req.Bots) {
		botCtrl := session.New(session.Config{
			Store:    c.store,
			GameID:   ctrl.GameID(),
			Provider: bot,
		})
		if err := botCtrl.JoinGame(); err != nil {
			log.Error(err)
			continue
		}
		c.bots = append(c.bots, botCtrl)
	}
	return nil
}

func (c *client) join(req Request) error {
	ctrl := session.New(session.Config{
		Store:    c.store,
		GameID:   req.GameID,
		UID:      uuid.NewString(),
		Name:     req.Name,
		AutoDraw: consts.PlayTimeout,
		OnState:  c.pushState,
	})
	if err := ctrl.JoinGame(); err != nil {
		return err
	}
	c.controller = ctrl
	c.sendWelcome()
	return nil
}

func (c *client) pushState(s *game.State) {
	c.send(Response{Type: ResponseState, GameID: s.ID, State: s})
}

func (c *client) sendWelcome() {
	c.send(Response{
		Type:   ResponseWelcome,
		UID:    c.controller.UID(),
		GameID: c.controller.GameID(),
	})
}

func (c *client) sendError(err error) {
	c.send(Response{Type: ResponseError, Message: err.Error()})
}

func (c *client) send(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Error(err)
		return
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Error(err)
	}
}

func (c *client) detachBots() {
	for _, bot := range c.bots {
		bot.Close()
	}
	c.bots = nil
}

func (c *client) close() {
	if c.controller != nil {
		_ = c.controller.LeaveGame()
	}
	c.detachBots()
	_ = c.conn.Close()
}
