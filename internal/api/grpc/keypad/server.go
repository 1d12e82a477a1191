package keypad

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lizzyKeypad/internal/api/grpc/keypadv1"
	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/engine"
	"lizzyKeypad/internal/pkg/numfmt"
	"lizzyKeypad/internal/ports"
)

// Server реализует gRPC KeypadService поверх юзкейса клавиатуры.
type Server struct {
	keypadv1.UnimplementedKeypadServiceServer
	uc  ports.IKeypadUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер клавиатуры.
func New(uc ports.IKeypadUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// Press применяет клавиши к сессии и возвращает дисплей.
func (s *Server) Press(ctx context.Context, req *keypadv1.PressRequest) (*keypadv1.StateResponse, error) {
	state, err := s.uc.Press(ctx, req.GetSessionId(), req.GetKeys()...)
	if err != nil {
		return nil, s.status("press", err)
	}
	return toStateResponse(req.GetSessionId(), state), nil
}

// Display возвращает текущее состояние сессии.
func (s *Server) Display(ctx context.Context, req *keypadv1.DisplayRequest) (*keypadv1.StateResponse, error) {
	state, err := s.uc.Display(ctx, req.GetSessionId())
	if err != nil {
		return nil, s.status("display", err)
	}
	return toStateResponse(req.GetSessionId(), state), nil
}

// Reset удаляет сессию.
func (s *Server) Reset(ctx context.Context, req *keypadv1.ResetRequest) (*keypadv1.ResetResponse, error) {
	if err := s.uc.Reset(ctx, req.GetSessionId()); err != nil {
		return nil, s.status("reset", err)
	}
	return &keypadv1.ResetResponse{}, nil
}

// History возвращает историю операций из use case.
func (s *Server) History(ctx context.Context, _ *keypadv1.HistoryRequest) (*keypadv1.HistoryResponse, error) {
	list, err := s.uc.History(ctx)
	if err != nil {
		return nil, s.status("history", err)
	}
	items := make([]*keypadv1.HistoryItem, len(list))
	for i, op := range list {
		items[i] = &keypadv1.HistoryItem{
			Id:                int64(op.ID),
			SessionId:         op.SessionID,
			Number1:           numfmt.Format(op.Number1),
			Number2:           numfmt.Format(op.Number2),
			Operation:         string(op.Operation),
			Result:            numfmt.Format(op.Result),
			Display:           op.Display,
			TimestampUnixNano: op.Timestamp.UnixNano(),
		}
	}
	return &keypadv1.HistoryResponse{Items: items}, nil
}

// status переводит ошибку юзкейса в gRPC-статус: ErrInvalidRequest → InvalidArgument, остальное → Internal.
func (s *Server) status(op string, err error) error {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.log.Error(op+" failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func toStateResponse(sessionID string, s engine.State) *keypadv1.StateResponse {
	return &keypadv1.StateResponse{
		SessionId: sessionID,
		Display:   s.Display,
		Operator:  string(s.Operator),
		Waiting:   s.WaitingForSecondOperand,
	}
}
