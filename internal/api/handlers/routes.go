package handlers

import (
	"net/http"

	"github.com/deepgram/messenger-relay/internal/api/handlers/webhook"
	"github.com/deepgram/messenger-relay/internal/config"
	"github.com/deepgram/messenger-relay/internal/services"
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, services *services.Services, cfg *config.Config) {
	router.HandleFunc("/", HandleRoot).Methods("GET")

	verifyToken := cfg.Webhook.VerifyToken
	ackPolicy := webhook.NewAckPolicy(cfg.Webhook)

	// Webhook routes, the platform both verifies and delivers on the same path
	router.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		webhook.HandleVerify(verifyToken, w, r)
	}).Methods("GET")
	router.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		webhook.HandleReceive(services.GetResponderService(), ackPolicy, w, r)
	}).Methods("POST")
}
