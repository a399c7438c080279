package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/domain/model"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// modelToEntity converts a model.Customer to entity.Customer
func (r *customerRepository) modelToEntity(m *model.Customer) (*entity.Customer, error) {
	if m == nil {
		return nil, nil
	}

	tags := []string{}
	if len(m.Tags) > 0 {
		if err := json.Unmarshal(m.Tags, &tags); err != nil {
			return nil, err
		}
	}

	var userID *string
	if m.UserID != nil {
		s := m.UserID.String()
		userID = &s
	}

	return &entity.Customer{
		ID:               m.ID.String(),
		UserID:           userID,
		PropertyID:       m.PropertyID.String(),
		CompanyID:        m.CompanyID.String(),
		Email:            m.Email,
		FullName:         m.FullName,
		Phone:            m.Phone,
		Status:           entity.CustomerStatus(m.Status),
		Tags:             tags,
		Source:           m.Source,
		TotalBookings:    m.TotalBookings,
		TotalSpent:       m.TotalSpent,
		FirstBookingDate: m.FirstBookingDate,
		LastBookingDate:  m.LastBookingDate,
		LastContactDate:  m.LastContactDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

// entityToModel converts an entity.Customer to model.Customer
func (r *customerRepository) entityToModel(e *entity.Customer) (*model.Customer, error) {
	if e == nil {
		return nil, nil
	}

	m := &model.Customer{
		Email:            e.Email,
		FullName:         e.FullName,
		Phone:            e.Phone,
		Status:           string(e.Status),
		Source:           e.Source,
		TotalBookings:    e.TotalBookings,
		TotalSpent:       e.TotalSpent,
		FirstBookingDate: e.FirstBookingDate,
		LastBookingDate:  e.LastBookingDate,
		LastContactDate:  e.LastContactDate,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}

	if e.ID != "" {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	propertyID, err := uuid.Parse(e.PropertyID)
	if err != nil {
		return nil, err
	}
	m.PropertyID = propertyID

	companyID, err := uuid.Parse(e.CompanyID)
	if err != nil {
		return nil, err
	}
	m.CompanyID = companyID

	if e.UserID != nil {
		userID, err := uuid.Parse(*e.UserID)
		if err != nil {
			return nil, err
		}
		m.UserID = &userID
	}

	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return nil, err
	}
	m.Tags = datatypes.JSON(tags)

	return m, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var customer model.Customer
	err = r.db.WithContext(ctx).Where("id = ?", customerID).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.modelToEntity(&customer)
}

func (r *customerRepository) FindByUserAndCompany(ctx context.Context, userID, companyID string) (*entity.Customer, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, err
	}

	var customer model.Customer
	err = r.db.WithContext(ctx).Where("user_id = ? AND company_id = ?", uid, cid).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.modelToEntity(&customer)
}

func (r *customerRepository) FindByEmailAndProperty(ctx context.Context, email, propertyID string) (*entity.Customer, error) {
	pid, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, err
	}

	var customer model.Customer
	err = r.db.WithContext(ctx).Where("email = ? AND property_id = ?", entity.NormalizeEmail(email), pid).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.modelToEntity(&customer)
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	modelCustomer, err := r.entityToModel(customer)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(modelCustomer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateKey
		}
		return err
	}

	customer.ID = modelCustomer.ID.String()
	return nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	modelCustomer, err := r.entityToModel(customer)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(modelCustomer).Error
}
