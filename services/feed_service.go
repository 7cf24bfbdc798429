package services

import (
	"encoding/json"
	"log"

	"blogapi/models"
)

// FeedService fans new-post events out to connected websocket clients.
type FeedService struct {
	hub *models.FeedHub
}

func NewFeedService() *FeedService {
	hub := models.NewFeedHub()
	service := &FeedService{hub: hub}

	go service.Run()

	return service
}

func (f *FeedService) GetHub() *models.FeedHub {
	return f.hub
}

func (f *FeedService) Run() {
	for {
		select {
		case client := <-f.hub.Register:
			f.hub.Clients[client] = true
			log.Printf("Feed client %s registered for user %d", client.ID, client.UserID)

		case client := <-f.hub.Unregister:
			if _, ok := f.hub.Clients[client]; ok {
				delete(f.hub.Clients, client)
				close(client.Send)
				log.Printf("Feed client %s unregistered", client.ID)
			}

		case message := <-f.hub.Broadcast:
			f.broadcastToAll(message)
		}
	}
}

// broadcastToAll drops clients whose send buffer is full instead of
// blocking the hub goroutine.
func (f *FeedService) broadcastToAll(message []byte) {
	for client := range f.hub.Clients {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(f.hub.Clients, client)
		}
	}
}

// BroadcastPostCreated pushes a post_created event to every connected
// client.
func (f *FeedService) BroadcastPostCreated(post *models.Post) {
	event := models.FeedEvent{
		Type: "post_created",
		Data: post,
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling feed event: %v", err)
		return
	}

	f.hub.Broadcast <- messageBytes
}
