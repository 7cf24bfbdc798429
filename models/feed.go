package models

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type FeedHub struct {
	Clients    map[*FeedClient]bool
	Broadcast  chan []byte
	Register   chan *FeedClient
	Unregister chan *FeedClient
}

type FeedClient struct {
	ID     string
	Hub    *FeedHub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID uint
}

type FeedEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		Clients:    make(map[*FeedClient]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *FeedClient),
		Unregister: make(chan *FeedClient),
	}
}

func NewFeedClient(hub *FeedHub, conn *websocket.Conn, userID uint) *FeedClient {
	return &FeedClient{
		ID:     uuid.New().String(),
		Hub:    hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userID,
	}
}
