package socket

import (
	"context"
	"log"

	"github.com/zhu243450/food-buddies-sub001/services"

	socketio "github.com/googollee/go-socket.io"
)

// NewRecommendationFeed returns a Socket.IO server that pushes match-score
// updates. Clients subscribe with their userId, re-request scores whenever
// they like, and are told via "dinnersChanged" when the open-dinner list
// moves so stale scores can be thrown away.
func NewRecommendationFeed(recommendations *services.RecommendationService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "subscribe", func(s socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in subscribe request")
			return
		}
		log.Printf("👥 Socket %s subscribed as user %s\n", s.ID(), userID)
		s.Join("user:" + userID)
	})

	server.OnEvent("/", "refreshScores", func(s socketio.Conn, userID string) {
		scores, err := recommendations.ScoreOpenDinners(context.TODO(), userID)
		if err != nil {
			log.Printf("❌ Failed to refresh scores for user %s: %v\n", userID, err)
			s.Emit("scoresError", "failed to compute scores")
			return
		}
		s.Emit("scores", scores)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", reason)
	})

	return server
}
