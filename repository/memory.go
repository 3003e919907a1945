package repository

import (
	"sync"
	"time"

	"github.com/Avvarivenkatesh0714/ExamPro-GPT/models"
)

// MemoryStore is an in-memory Store used by tests and local tooling.
type MemoryStore struct {
	mu       sync.Mutex
	users    []models.User
	history  []models.HistoryRecord
	uploads  []models.Upload
	nextUser uint
	nextRec  uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextUser: 1, nextRec: 1}
}

func (s *MemoryStore) FindUser(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrDuplicateUser
		}
	}
	user := models.User{ID: s.nextUser, Username: username, Password: password}
	s.nextUser++
	s.users = append(s.users, user)
	return &user, nil
}

func (s *MemoryStore) AppendHistory(username, question, answer string) (*models.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := models.HistoryRecord{
		ID:       s.nextRec,
		Username: username,
		Question: question,
		Answer:   answer,
	}
	s.nextRec++
	s.history = append(s.history, record)
	return &record, nil
}

func (s *MemoryStore) ListRecentHistory(username string, limit int) ([]models.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var records []models.HistoryRecord
	for i := len(s.history) - 1; i >= 0 && len(records) < limit; i-- {
		if s.history[i].Username == username {
			records = append(records, s.history[i])
		}
	}
	return records, nil
}

func (s *MemoryStore) ListAllHistory(username string) ([]models.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var records []models.HistoryRecord
	for _, r := range s.history {
		if r.Username == username {
			records = append(records, r)
		}
	}
	return records, nil
}

func (s *MemoryStore) DeleteHistoryRecord(id uint, username string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.history {
		if r.ID == id && r.Username == username {
			s.history = append(s.history[:i], s.history[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteAllHistory(username string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []models.HistoryRecord
	var removed int64
	for _, r := range s.history {
		if r.Username == username {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.history = kept
	return removed, nil
}

func (s *MemoryStore) RecordUpload(username, filename string, size int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads = append(s.uploads, models.Upload{
		ID:        uint(len(s.uploads) + 1),
		Username:  username,
		Filename:  filename,
		Size:      size,
		CreatedAt: time.Now(),
	})
	return nil
}

// Uploads returns a copy of the recorded upload metadata.
func (s *MemoryStore) Uploads() []models.Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Upload, len(s.uploads))
	copy(out, s.uploads)
	return out
}
