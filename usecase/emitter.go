package usecase

import (
	"log"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
	"github.com/abkGami/star-damm-honorary-fee/interface/repository"
)

// EventEmitter appends a lifecycle record and logs it. A failed append is
// logged but never aborts the caller: events are an observability
// side-channel, not part of the conservation invariant.
type EventEmitter struct {
	eventRepository *repository.EventRepository
}

func NewEventEmitter(eventRepository *repository.EventRepository) *EventEmitter {
	return &EventEmitter{eventRepository: eventRepository}
}

func (e *EventEmitter) Emit(vault solana.PublicKey, event domain.Event) {
	if e.eventRepository == nil {
		return
	}
	if err := e.eventRepository.Append(vault, event); err != nil {
		log.Printf("🔴 appending %v event for vault %v - %v\n", domain.Kind(event), vault, err.Error())
	}
}
