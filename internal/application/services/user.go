package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"cloud-storage-api/internal/application/ports"
	domain "cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/infrastructure/mq"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             rabbit,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, login, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.CreateUser(ctx, domain.User{
		Login:        login,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: mq.ActionUserCreated,
		UserID: uint64(uRet.ID),
	}

	us.mCounter.WithLabelValues("users_created_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	return us.userRepository.DeleteUser(ctx, id)
}
