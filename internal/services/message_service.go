package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"
)

type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

type MessageSend struct {
	SentTime   time.Time
	ReadTime   *time.Time
	Content    string
	ProductID  *uint64
	SellerID   uint64
	ReceiverID uint64
}

func (s *MessageService) Send(in MessageSend) (*domain.Message, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: messageContent is required", domain.ErrValidation)
	}
	if in.SellerID == 0 || in.ReceiverID == 0 {
		return nil, fmt.Errorf("%w: sellerId and receiverId are required", domain.ErrValidation)
	}
	if in.SentTime.IsZero() {
		in.SentTime = time.Now()
	}

	message := &domain.Message{
		SentTime:   in.SentTime,
		ReadTime:   in.ReadTime,
		Content:    in.Content,
		ProductID:  in.ProductID,
		SellerID:   in.SellerID,
		ReceiverID: in.ReceiverID,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *MessageService) Get(id uint64) (*domain.Message, error) {
	message, err := s.messages.FindByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, fmt.Errorf("%w: message %d", domain.ErrNotFound, id)
	}
	return message, nil
}

type MessagePatch struct {
	ReadTime *time.Time
	Content  *string
}

func (s *MessageService) Update(id uint64, patch MessagePatch) (*domain.Message, error) {
	message, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.ReadTime != nil {
		message.ReadTime = patch.ReadTime
	}
	applyString(&message.Content, patch.Content)

	if err := s.messages.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *MessageService) Delete(id uint64) error {
	return s.messages.Delete(id)
}

func (s *MessageService) ListForUser(userID uint64) ([]domain.Message, error) {
	return s.messages.FindByUserID(userID)
}
