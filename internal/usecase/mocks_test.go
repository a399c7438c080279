package usecase

import (
	"context"

	"github.com/staylodge/guest-service/internal/domain/entity"
	"github.com/staylodge/guest-service/internal/domain/provider"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) SearchByEmail(ctx context.Context, email string) ([]*entity.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByUserAndCompany(ctx context.Context, userID, companyID string) (*entity.Customer, error) {
	args := m.Called(ctx, userID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmailAndProperty(ctx context.Context, email, propertyID string) (*entity.Customer, error) {
	args := m.Called(ctx, email, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockConversationRepository is a mock implementation of ConversationRepository
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	args := m.Called(ctx, conversation)
	if args.Error(0) == nil && conversation.ID == "" {
		conversation.ID = "conv-generated"
	}
	return args.Error(0)
}

func (m *MockConversationRepository) AddParticipant(ctx context.Context, conversationID, userID string) error {
	args := m.Called(ctx, conversationID, userID)
	return args.Error(0)
}

func (m *MockConversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockConversationRepository) ListByParticipants(ctx context.Context, userIDs []string, propertyID string, archived bool) ([]*entity.Conversation, error) {
	args := m.Called(ctx, userIDs, propertyID, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Conversation), args.Error(1)
}

func (m *MockConversationRepository) ListParticipants(ctx context.Context, conversationID string) ([]*entity.Participant, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Participant), args.Error(1)
}

func (m *MockConversationRepository) FindLastMessage(ctx context.Context, conversationID string) (*entity.Message, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Message), args.Error(1)
}

func (m *MockConversationRepository) CountUnread(ctx context.Context, conversationID, userID string) (int64, error) {
	args := m.Called(ctx, conversationID, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPromotionRepository is a mock implementation of PromotionRepository
type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) FindByID(ctx context.Context, id string) (*entity.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Promotion), args.Error(1)
}

// MockPropertyRepository is a mock implementation of PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

// MockSupportTicketRepository is a mock implementation of SupportTicketRepository
type MockSupportTicketRepository struct {
	mock.Mock
}

func (m *MockSupportTicketRepository) FindByConversationID(ctx context.Context, conversationID string) (*entity.SupportTicket, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SupportTicket), args.Error(1)
}

// MockAuthProvider is a mock implementation of provider.AuthProvider
type MockAuthProvider struct {
	mock.Mock
}

func (m *MockAuthProvider) CreateAccount(ctx context.Context, params provider.CreateAccountParams) (*provider.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Account), args.Error(1)
}

func (m *MockAuthProvider) FindAccountByEmail(ctx context.Context, email string) (*provider.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Account), args.Error(1)
}

func (m *MockAuthProvider) GenerateVerificationLink(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

// MockNotificationDispatcher is a mock implementation of provider.NotificationDispatcher
type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) Send(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// MockMailSender is a mock implementation of provider.MailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendMail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
