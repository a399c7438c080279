package database

import (
	"github.com/staylodge/guest-service/internal/adapter/repository"
	domainRepo "github.com/staylodge/guest-service/internal/domain/repository"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Profile       domainRepo.ProfileRepository
	Customer      domainRepo.CustomerRepository
	Conversation  domainRepo.ConversationRepository
	Promotion     domainRepo.PromotionRepository
	Property      domainRepo.PropertyRepository
	Company       domainRepo.CompanyRepository
	SupportTicket domainRepo.SupportTicketRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Profile:       repository.NewProfileRepository(db),
		Customer:      repository.NewCustomerRepository(db),
		Conversation:  repository.NewConversationRepository(db),
		Promotion:     repository.NewPromotionRepository(db),
		Property:      repository.NewPropertyRepository(db),
		Company:       repository.NewCompanyRepository(db),
		SupportTicket: repository.NewSupportTicketRepository(db),
	}
}
