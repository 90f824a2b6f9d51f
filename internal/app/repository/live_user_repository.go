package repository

import (
	"github.com/freshkart/freshkart-backend/internal/app/model"
	"gorm.io/gorm"
)

// LiveUserRepository writes promoted accounts into the Users store.
type LiveUserRepository interface {
	CreateSeller(seller *model.LiveSeller) error
	CreateDeliveryAgent(agent *model.LiveDeliveryAgent) error
	SellerEmailExists(email string) (bool, error)
	DeliveryAgentEmailExists(email string) (bool, error)
	FindSellerByEmail(email string) (*model.LiveSeller, error)
	FindDeliveryAgentByEmail(email string) (*model.LiveDeliveryAgent, error)
}

type liveUserRepository struct {
	db *gorm.DB
}

func NewLiveUserRepository(db *gorm.DB) LiveUserRepository {
	return &liveUserRepository{db: db}
}

func (r *liveUserRepository) CreateSeller(seller *model.LiveSeller) error {
	return r.db.Create(seller).Error
}

func (r *liveUserRepository) CreateDeliveryAgent(agent *model.LiveDeliveryAgent) error {
	return r.db.Create(agent).Error
}

func (r *liveUserRepository) SellerEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LiveSeller{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *liveUserRepository) DeliveryAgentEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LiveDeliveryAgent{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *liveUserRepository) FindSellerByEmail(email string) (*model.LiveSeller, error) {
	var seller model.LiveSeller
	if err := r.db.Where("email = ?", email).First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *liveUserRepository) FindDeliveryAgentByEmail(email string) (*model.LiveDeliveryAgent, error) {
	var agent model.LiveDeliveryAgent
	if err := r.db.Where("email = ?", email).First(&agent).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}
