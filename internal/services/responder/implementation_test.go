package responder

import (
	"context"
	"errors"
	"testing"

	"github.com/deepgram/messenger-relay/internal/domain/messenger/models"
	"github.com/deepgram/messenger-relay/internal/domain/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg models.OutboundMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestNewService(t *testing.T) {
	_, err := NewService(nil, &MockSender{})
	assert.Error(t, err)

	_, err = NewService(&MockCompleter{}, nil)
	assert.Error(t, err)

	svc, err := NewService(&MockCompleter{}, &MockSender{})
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestRespond(t *testing.T) {
	upstreamErr := &relay.UpstreamError{Service: "send API", StatusCode: 500, Err: errors.New("boom")}

	tests := []struct {
		name       string
		incoming   models.Message
		setupMocks func(*MockCompleter, *MockSender)
		wantErr    error
		wantSends  int
	}{
		{
			name:     "reply is wrapped as a Response without mid",
			incoming: models.Message{MID: "m_in", Text: "hello"},
			setupMocks: func(c *MockCompleter, s *MockSender) {
				c.On("Complete", mock.Anything, "hello").Return("hi there", nil).Once()
				s.On("Send", mock.Anything, models.OutboundMessage{
					Recipient:     models.Participant{ID: "U1"},
					MessagingType: models.MessagingTypeResponse,
					Message:       models.Message{Text: "hi there"},
				}).Return(nil).Once()
			},
			wantSends: 1,
		},
		{
			name:     "empty completion never reaches the sender",
			incoming: models.Message{Text: "hello"},
			setupMocks: func(c *MockCompleter, s *MockSender) {
				c.On("Complete", mock.Anything, "hello").Return("", relay.ErrEmptyCompletion).Once()
			},
			wantErr:   relay.ErrEmptyCompletion,
			wantSends: 0,
		},
		{
			name:     "send failure is propagated",
			incoming: models.Message{Text: "hello"},
			setupMocks: func(c *MockCompleter, s *MockSender) {
				c.On("Complete", mock.Anything, "hello").Return("hi", nil).Once()
				s.On("Send", mock.Anything, mock.Anything).Return(upstreamErr).Once()
			},
			wantErr:   upstreamErr,
			wantSends: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &MockCompleter{}
			sender := &MockSender{}
			tt.setupMocks(completer, sender)

			svc, err := NewService(completer, sender)
			require.NoError(t, err)

			err = svc.Respond(context.Background(), "U1", tt.incoming)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			completer.AssertExpectations(t)
			sender.AssertExpectations(t)
			sender.AssertNumberOfCalls(t, "Send", tt.wantSends)
		})
	}
}
