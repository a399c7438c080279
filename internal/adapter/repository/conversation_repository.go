package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/domain/model"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"gorm.io/gorm"
)

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// modelToEntity converts a model.Conversation to entity.Conversation
func (r *conversationRepository) modelToEntity(m *model.Conversation) *entity.Conversation {
	if m == nil {
		return nil
	}

	var propertyID *string
	if m.PropertyID != nil {
		s := m.PropertyID.String()
		propertyID = &s
	}

	return &entity.Conversation{
		ID:            m.ID.String(),
		PropertyID:    propertyID,
		Type:          entity.ConversationType(m.Type),
		Archived:      m.Archived,
		LastMessageAt: m.LastMessageAt,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *conversationRepository) messageToEntity(m *model.Message) *entity.Message {
	if m == nil {
		return nil
	}
	return &entity.Message{
		ID:             m.ID.String(),
		ConversationID: m.ConversationID.String(),
		SenderID:       m.SenderID.String(),
		Body:           m.Body,
		Deleted:        m.Deleted,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	m := &model.Conversation{
		Type:      string(conversation.Type),
		Archived:  conversation.Archived,
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.CreatedAt,
	}

	if conversation.PropertyID != nil {
		propertyID, err := uuid.Parse(*conversation.PropertyID)
		if err != nil {
			return err
		}
		m.PropertyID = &propertyID
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	conversation.ID = m.ID.String()
	return nil
}

func (r *conversationRepository) AddParticipant(ctx context.Context, conversationID, userID string) error {
	cid, err := uuid.Parse(conversationID)
	if err != nil {
		return err
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	participant := &model.Participant{
		ConversationID: cid,
		UserID:         uid,
		JoinedAt:       time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *conversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	cid, err := uuid.Parse(message.ConversationID)
	if err != nil {
		return err
	}
	sid, err := uuid.Parse(message.SenderID)
	if err != nil {
		return err
	}

	m := &model.Message{
		ConversationID: cid,
		SenderID:       sid,
		Body:           message.Body,
		CreatedAt:      message.CreatedAt,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Conversation{}).
			Where("id = ?", cid).
			Updates(map[string]interface{}{
				"last_message_at": m.CreatedAt,
				"updated_at":      m.CreatedAt,
			}).Error; err != nil {
			return err
		}

		message.ID = m.ID.String()
		return nil
	})
}

func (r *conversationRepository) ListByParticipants(ctx context.Context, userIDs []string, propertyID string, archived bool) ([]*entity.Conversation, error) {
	if len(userIDs) == 0 {
		return []*entity.Conversation{}, nil
	}

	ids := make([]uuid.UUID, 0, len(userIDs))
	for _, userID := range userIDs {
		uid, err := uuid.Parse(userID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uid)
	}

	pid, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, err
	}

	var conversations []model.Conversation
	err = r.db.WithContext(ctx).
		Joins("JOIN participants ON participants.conversation_id = conversations.id").
		Where("participants.user_id IN ?", ids).
		Where("conversations.property_id = ?", pid).
		Where("conversations.archived = ?", archived).
		Distinct("conversations.*").
		Order("conversations.last_message_at DESC NULLS LAST").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Conversation, 0, len(conversations))
	for i := range conversations {
		result = append(result, r.modelToEntity(&conversations[i]))
	}
	return result, nil
}

func (r *conversationRepository) ListParticipants(ctx context.Context, conversationID string) ([]*entity.Participant, error) {
	cid, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, err
	}

	var participants []model.Participant
	err = r.db.WithContext(ctx).Where("conversation_id = ?", cid).Find(&participants).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Participant, 0, len(participants))
	for i := range participants {
		p := participants[i]
		result = append(result, &entity.Participant{
			ConversationID: p.ConversationID.String(),
			UserID:         p.UserID.String(),
			LastReadAt:     p.LastReadAt,
			JoinedAt:       p.JoinedAt,
		})
	}
	return result, nil
}

func (r *conversationRepository) FindLastMessage(ctx context.Context, conversationID string) (*entity.Message, error) {
	cid, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, err
	}

	var message model.Message
	err = r.db.WithContext(ctx).
		Where("conversation_id = ? AND deleted = ?", cid, false).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.messageToEntity(&message), nil
}

func (r *conversationRepository) CountUnread(ctx context.Context, conversationID, userID string) (int64, error) {
	cid, err := uuid.Parse(conversationID)
	if err != nil {
		return 0, err
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, err
	}

	var participant model.Participant
	err = r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", cid, uid).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	query := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND deleted = ?", cid, uid, false)
	if participant.LastReadAt != nil {
		query = query.Where("created_at > ?", *participant.LastReadAt)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
