package chat

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/deskpin/deskpin/internal/model"
)

// Transcript key layout: msg:<unix-nanos>:<id>. The timestamp prefix keeps
// badger's key iteration in chronological order.
const messageKeyPrefix = "msg:"

// History persists the chat transcript in a BadgerDB store
type History struct {
	db *badger.DB
}

// OpenHistory opens (or creates) the transcript database in dirPath
func OpenHistory(dirPath string) (*History, error) {
	opts := badger.DefaultOptions(dirPath).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open chat history database: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the underlying database
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Append stores one message at the end of the transcript and returns it with
// its minted ID and timestamp.
func (h *History) Append(role model.ChatRole, content string) (model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:        newMessageID(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}

	err := h.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal message: %w", err)
		}
		key := fmt.Sprintf("%s%020d:%s", messageKeyPrefix, msg.CreatedAt.UnixNano(), msg.ID)
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return model.ChatMessage{}, err
	}
	return msg, nil
}

// Recent returns up to limit trailing messages in chronological order. A
// non-positive limit returns the whole transcript.
func (h *History) Recent(limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage

	err := h.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(messageKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var msg model.ChatMessage
				if err := json.Unmarshal(val, &msg); err != nil {
					return fmt.Errorf("failed to unmarshal message: %w", err)
				}
				messages = append(messages, msg)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Key order is already chronological; sort defensively for equal-nano
	// appends
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

// Clear deletes the whole transcript
func (h *History) Clear() error {
	return h.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(messageKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// newMessageID generates a unique message ID using UUID v7 for better uniqueness and time ordering
func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("msg-%d", time.Now().UnixNano())
	}
	return id.String()
}
