package repository

import (
	"errors"

	"github.com/Avvarivenkatesh0714/ExamPro-GPT/models"
	"gorm.io/gorm"
)

// GormStore implements Store on a shared *gorm.DB handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUser(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(username, password string) (*models.User, error) {
	user := models.User{Username: username, Password: password}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) AppendHistory(username, question, answer string) (*models.HistoryRecord, error) {
	record := models.HistoryRecord{
		Username: username,
		Question: question,
		Answer:   answer,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormStore) ListRecentHistory(username string, limit int) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	err := s.db.Where("username = ?", username).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) ListAllHistory(username string) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	err := s.db.Where("username = ?", username).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) DeleteHistoryRecord(id uint, username string) (int64, error) {
	result := s.db.Where("id = ? AND username = ?", id, username).
		Delete(&models.HistoryRecord{})
	return result.RowsAffected, result.Error
}

func (s *GormStore) DeleteAllHistory(username string) (int64, error) {
	result := s.db.Where("username = ?", username).
		Delete(&models.HistoryRecord{})
	return result.RowsAffected, result.Error
}

func (s *GormStore) RecordUpload(username, filename string, size int64) error {
	upload := models.Upload{
		Username: username,
		Filename: filename,
		Size:     size,
	}
	return s.db.Create(&upload).Error
}
