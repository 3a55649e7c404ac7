package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PreferenceColName   = "preferences"
	PreferenceTableName = "preferences"
)

// PreferenceRepo stores small per-visitor string preferences such as the
// theme. A missing key is reported with found == false, not an error.
type PreferenceRepo interface {
	LoadPreference(ctx context.Context, key string) (value string, found bool, err error)
	SavePreference(ctx context.Context, key, value string) error
}

type Preference struct {
	Key       string    `bson:"key" json:"key"`
	Value     string    `bson:"value" json:"value"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (m *MemoryRepo) LoadPreference(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryRepo) SavePreference(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

func (mdb *MongodbRepo) LoadPreference(ctx context.Context, key string) (string, bool, error) {
	col, err := mdb.GetCollection(ctx, PreferenceColName)
	if err != nil {
		return "", false, fmt.Errorf("error getting collection: %v", err)
	}

	var pref Preference
	err = col.FindOne(ctx, bson.M{"key": key}).Decode(&pref)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error finding preference: %w", err)
	}
	return pref.Value, true, nil
}

func (mdb *MongodbRepo) SavePreference(ctx context.Context, key, value string) error {
	col, err := mdb.GetCollection(ctx, PreferenceColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{
		"$set": bson.M{
			"value":      value,
			"updated_at": time.Now(),
		},
		"$setOnInsert": bson.M{
			"key": key,
		},
	}
	_, err = col.UpdateOne(ctx, bson.M{"key": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting preference: %w", err)
	}
	return nil
}

// Migrate creates the preferences table if it does not exist yet.
func (s *SQLiteRepo) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+PreferenceTableName+` (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create preferences table: %w", err)
	}
	return nil
}

func (s *SQLiteRepo) LoadPreference(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM `+PreferenceTableName+` WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load preference %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteRepo) SavePreference(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO `+PreferenceTableName+` (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}
