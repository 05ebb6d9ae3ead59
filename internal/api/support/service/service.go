package supportService

import (
	"EditorialAssistant/internal/api/support"
	supportRepository "EditorialAssistant/internal/api/support/repository"
	"EditorialAssistant/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ISupportService interface {
	OpenTicket(ctx context.Context, req support.CreateTicketRequest) (*support.TicketResponse, error)
	GetTicket(ctx context.Context, id string) (*support.TicketResponse, error)
}

type supportService struct {
	log         *logrus.Logger
	supportRepo supportRepository.Repository
	utils       utils.IUtils
}

func NewSupportService(
	log *logrus.Logger,
	supportRepo supportRepository.Repository,
	utils utils.IUtils,
) ISupportService {
	return &supportService{
		log:         log,
		supportRepo: supportRepo,
		utils:       utils,
	}
}
