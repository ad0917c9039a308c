package service

import (
	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/microservices/order/repository"
)

type Service struct {
	Orders OrderServiceInterface
}

func New(repo *repository.Repository, emitter TicketEmitter, lg *logger.Logger) *Service {
	return &Service{
		Orders: NewOrderService(repo.Orders, repo.Menu, emitter, lg),
	}
}
