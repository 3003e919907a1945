package repository

import (
	"errors"

	"github.com/Avvarivenkatesh0714/ExamPro-GPT/models"
)

var (
	// ErrNotFound means no row matched the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUser means the username is already taken.
	ErrDuplicateUser = errors.New("username already taken")
)

// Store is the narrow persistence surface the handlers use. It is
// backed by a single pooled database handle in production and by an
// in-memory fake in tests.
type Store interface {
	// FindUser returns the user matching the exact username+password
	// pair, or ErrNotFound.
	FindUser(username, password string) (*models.User, error)
	// CreateUser inserts a new user, or returns ErrDuplicateUser when
	// the username is taken.
	CreateUser(username, password string) (*models.User, error)

	// AppendHistory stores one Q&A pair for the user.
	AppendHistory(username, question, answer string) (*models.HistoryRecord, error)
	// ListRecentHistory returns up to limit records, newest first.
	ListRecentHistory(username string, limit int) ([]models.HistoryRecord, error)
	// ListAllHistory returns every record for the user in insertion order.
	ListAllHistory(username string) ([]models.HistoryRecord, error)
	// DeleteHistoryRecord removes the record only when both id and
	// username match, reporting the number of rows removed (0 or 1).
	DeleteHistoryRecord(id uint, username string) (int64, error)
	// DeleteAllHistory removes every record owned by the user.
	DeleteAllHistory(username string) (int64, error)

	// RecordUpload stores metadata for an accepted file upload.
	RecordUpload(username, filename string, size int64) error
}
