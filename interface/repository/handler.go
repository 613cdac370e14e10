package repository

import (
	"database/sql"

	"github.com/behrang/sqlbatch"
)

var (
	BatchOptionNormal = sql.TxOptions{
		ReadOnly:  false,
		Isolation: sql.LevelReadCommitted,
	}

	BatchOptionNormalReadOnly = sql.TxOptions{
		ReadOnly:  true,
		Isolation: sql.LevelReadCommitted,
	}

	// BatchOptionSerializable is used for the progress-record update inside
	// a distribute() call: the read of the current cursor and the write of
	// its advanced value must happen as one atomic step even under
	// concurrent cranks racing the same page.
	BatchOptionSerializable = sql.TxOptions{
		ReadOnly:  false,
		Isolation: sql.LevelSerializable,
	}
)

// BatchHandler is a database handler that executes a batch of SQL commands.
type BatchHandler interface {
	Batch(opts *sql.TxOptions, commands []sqlbatch.Command) ([]interface{}, error)
}
