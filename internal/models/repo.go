package models

import (
	"database/sql"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

type SQLiteRepo struct {
	db *sql.DB
}

func SQLiteNewRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

// MemoryRepo keeps preferences for the lifetime of the process.
type MemoryRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

func MemoryNewRepo() *MemoryRepo {
	return &MemoryRepo{values: make(map[string]string)}
}
