package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB abstracts the backing store lifecycle so the server can run against
// either Postgres or Mongo depending on DB_TYPE.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
