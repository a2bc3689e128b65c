package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/finproc/transaction-ledger/internal/config"
	"github.com/finproc/transaction-ledger/internal/events/kafka"
	"github.com/finproc/transaction-ledger/internal/interfaces"
	"github.com/finproc/transaction-ledger/internal/ledger"
	"github.com/finproc/transaction-ledger/internal/models"
	modelevents "github.com/finproc/transaction-ledger/internal/models/events"
	"github.com/finproc/transaction-ledger/internal/storage/memory"
	"github.com/finproc/transaction-ledger/internal/storage/postgres"
)

func main() {

	cfg := config.Load()

	var store interfaces.TransactionStore = memory.NewMemoryTransactionStore()
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		store = postgres.NewPostgresTransactionStore(db)
		log.Println("Using postgres transaction store")
	}

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers, "transaction_status")
		log.Println("Publishing status events to", cfg.KafkaBrokers)
	}

	ledgerService := ledger.NewLedger(store)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req struct {
				Amount   float64 `json:"amount"`
				Currency string  `json:"currency"`
			}

			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}

			tx, err := ledgerService.Create(req.Amount, req.Currency)
			if err != nil {
				http.Error(w, err.Error(), statusForError(err))
				return
			}

			if err := ledgerService.Insert(r.Context(), tx); err != nil {
				http.Error(w, err.Error(), statusForError(err))
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(tx)

		case http.MethodGet:
			id, err := uuid.Parse(r.URL.Query().Get("id"))
			if err != nil {
				http.Error(w, "id must be a valid uuid", http.StatusBadRequest)
				return
			}

			tx, err := ledgerService.Get(id)
			if err != nil {
				http.Error(w, err.Error(), statusForError(err))
				return
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(tx)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/transactions/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			ID     uuid.UUID                `json:"id"`
			Status models.TransactionStatus `json:"status"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := ledgerService.Transition(r.Context(), req.ID, req.Status); err != nil {
			http.Error(w, err.Error(), statusForError(err))
			return
		}

		tx, err := ledgerService.Get(req.ID)
		if err != nil {
			http.Error(w, err.Error(), statusForError(err))
			return
		}

		if publisher != nil {
			event := modelevents.TransactionStatusChanged{
				TransactionID: tx.ID,
				Amount:        tx.Amount,
				Currency:      tx.Currency,
				OldStatus:     models.StatusPending,
				NewStatus:     tx.Status,
				OccurredAt:    time.Now().UTC(),
			}
			if err := publisher.Publish("transaction_status", event); err != nil {
				log.Println("failed to publish status event:", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tx)
	})

	http.HandleFunc("/transactions/count", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		count, err := ledgerService.Count()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := struct {
			Count int `json:"count"`
		}{
			Count: count,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})

	log.Println("Starting server on", cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, nil))

}

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateID), errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidAmount), errors.Is(err, models.ErrInvalidCurrency):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
