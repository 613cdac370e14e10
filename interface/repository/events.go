package repository

import (
	"encoding/json"

	"github.com/behrang/sqlbatch"
	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

const (
	sqlEventInsert = `
	insert into events (
			vault, kind, payload, create_time
		)
		values (
			$1, $2, $3::jsonb, now()
		)
`

	sqlEventFindAllForVault = `
	select kind, payload
	from events
	where vault = $1
	order by create_time asc
`
)

// StoredEvent is a payload-opaque record as read back from storage: kind
// names one of the domain.Event structs, and payload is its JSON encoding.
type StoredEvent struct {
	Kind    string
	Payload []byte
}

// EventRepository appends structured lifecycle records. Rows are never
// updated or deleted once written.
type EventRepository struct {
	batchHandler BatchHandler
}

func NewEventRepository(db BatchHandler) *EventRepository {
	return &EventRepository{batchHandler: db}
}

// Append persists event under vault. The caller supplies vault explicitly
// because domain.Event values do not all embed it uniformly across kinds.
func (repo *EventRepository) Append(vault solana.PublicKey, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = repo.batchHandler.Batch(&BatchOptionNormal, []sqlbatch.Command{
		{
			Query:  sqlEventInsert,
			Args:   []interface{}{vault.String(), domain.Kind(event), payload},
			Affect: 1,
		},
	})
	return err
}

func readAllEvents(all interface{}, scan func(...interface{}) error) (interface{}, error) {
	var kind string
	var payload []byte
	err := scan(&kind, &payload)
	list := all.([]StoredEvent)
	if err != nil {
		return list, err
	}
	list = append(list, StoredEvent{Kind: kind, Payload: payload})
	return list, nil
}

func (repo *EventRepository) FindAllForVault(vault solana.PublicKey) ([]StoredEvent, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlEventFindAllForVault,
			Args:    []interface{}{vault.String()},
			Init:    make([]StoredEvent, 0),
			ReadAll: readAllEvents,
		},
	})
	if err != nil {
		return nil, err
	}
	result, _ := results[0].([]StoredEvent)
	return result, nil
}
