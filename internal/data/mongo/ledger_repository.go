// Package mongo provides the MongoDB implementation of the ledger
// repository. Entries are stored as single documents with their lines
// embedded, which matches their ownership: lines have no lifecycle outside
// the entry that carries them.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/contabilidade-ledger/internal/domain/ledger"
)

// EntryCollectionName is the name of the ledger collection in MongoDB
const EntryCollectionName = "lancamentos"

// LedgerRepository implements ledger.Repository for MongoDB
type LedgerRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewLedgerRepository creates a new MongoDB ledger repository
func NewLedgerRepository(logger *slog.Logger, db *mongo.Database) ledger.Repository {
	return &LedgerRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts an already-validated entry
func (r *LedgerRepository) Append(ctx context.Context, entry *ledger.Entry) error {
	collection := r.db.Collection(EntryCollectionName)

	if _, err := collection.InsertOne(ctx, entry); err != nil {
		r.logger.Error("Failed to append ledger entry", "entry_id", entry.ID, "error", err)
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return nil
}

// GetByID retrieves an entry by its ID, returning (nil, nil) on a miss
func (r *LedgerRepository) GetByID(ctx context.Context, id string) (*ledger.Entry, error) {
	collection := r.db.Collection(EntryCollectionName)

	var entry ledger.Entry
	err := collection.FindOne(ctx, bson.M{"id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error("Failed to get ledger entry", "entry_id", id, "error", err)
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	return &entry, nil
}

// List returns all entries ordered by creation time, which preserves
// insertion order for this append-only collection
func (r *LedgerRepository) List(ctx context.Context) ([]*ledger.Entry, error) {
	collection := r.db.Collection(EntryCollectionName)

	findOptions := options.Find().SetSort(bson.D{{Key: "criado_em", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		r.logger.Error("Failed to list ledger entries", "error", err)
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*ledger.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode ledger entries: %w", err)
	}

	return entries, nil
}
