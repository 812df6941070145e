// Package network is the browser-facing transport: one websocket per
// player, JSON envelopes in, committed game snapshots out. All rules live
// in the session controller and engine; this layer only frames messages.
package network

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
	"github.com/atakhatri/UNO-sub000/uno/game"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Request is one client envelope.
type Request struct {
	Action    string      `json:"action"`
	GameID    string      `json:"gameId,omitempty"`
	Name      string      `json:"name,omitempty"`
	Bots      int         `json:"bots,omitempty"`
	HandIndex int         `json:"handIndex,omitempty"`
	Card      *card.Card  `json:"card,omitempty"`
	Color     color.Color `json:"color,omitempty"`
}

const (
	ActionCreate = "create"
	ActionJoin   = "join"
	ActionStart  = "start"
	ActionPlay   = "play"
	ActionDraw   = "draw"
	ActionColor  = "color"
	ActionUno    = "uno"
	ActionLeave  = "leave"
)

// Response is one server envelope: a welcome with the assigned identity, a
// pushed snapshot, or a rejection message.
type Response struct {
	Type    string      `json:"type"`
	UID     string      `json:"uid,omitempty"`
	GameID  string      `json:"gameId,omitempty"`
	State   *game.State `json:"state,omitempty"`
	Message string      `json:"message,omitempty"`
}

const (
	ResponseWelcome = "welcome"
	ResponseState   = "state"
	ResponseError   = "error"
)
