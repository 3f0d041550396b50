package repositories

import (
	"fmt"
	"time"

	"tweeter/internal/models"

	"gorm.io/gorm"
)

// userRecord is the users table row. Seq keeps insertion order; user_id is
// not unique because duplicate ids are accepted.
type userRecord struct {
	Seq       uint       `gorm:"primaryKey;autoIncrement"`
	UserID    string     `gorm:"type:varchar(36);index"`
	Email     string     `gorm:"type:varchar(255)"`
	FirstName string     `gorm:"type:varchar(50)"`
	LastName  string     `gorm:"type:varchar(50)"`
	BirthDate *time.Time `gorm:"type:date"`
}

func (userRecord) TableName() string { return "users" }

func newUserRecord(user *models.User) userRecord {
	rec := userRecord{
		UserID:    user.UserID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if user.BirthDate != nil {
		t := user.BirthDate.Time
		rec.BirthDate = &t
	}
	return rec
}

func (r userRecord) toModel() models.User {
	user := models.User{
		UserID:    r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
	if r.BirthDate != nil {
		d := models.NewDate(r.BirthDate.Date())
		user.BirthDate = &d
	}
	return user
}

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user row.
func (r *GORMUserRepository) Create(user *models.User) error {
	rec := newUserRecord(user)
	if err := r.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetAll retrieves all users in insertion order.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var recs []userRecord
	if err := r.db.Order("seq").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	users := make([]models.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, rec.toModel())
	}
	return users, nil
}
