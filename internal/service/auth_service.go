package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterData данные формы регистрации
type RegisterData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// AuthService учетные записи и текущий пользователь сессии.
// Пароли хранятся только в виде bcrypt-хеша.
type AuthService struct {
	mu       sync.Mutex
	store    repository.Store
	log      *logrus.Logger
	accounts []domain.Account
	current  *domain.User
}

func NewAuthService(store repository.Store, log *logrus.Logger) *AuthService {
	s := &AuthService{
		store:    store,
		log:      log,
		accounts: repository.LoadCollection[domain.Account](store, repository.KeyUsers, log),
	}
	if u, ok := repository.LoadRecord[domain.User](store, repository.KeyUser, log); ok {
		s.current = &u
	}
	return s
}

// Register создает учетную запись и сразу авторизует ее.
// Совпадение email или телефона с существующей записью — конфликт.
func (s *AuthService) Register(data RegisterData) (*domain.User, error) {
	data.Email = strings.ToLower(strings.TrimSpace(data.Email))
	data.Phone = NormalizePhone(data.Phone)
	if data.FirstName == "" || data.LastName == "" || data.Password == "" {
		return nil, ErrInvalidInput
	}
	if !emailRe.MatchString(data.Email) || !phoneRe.MatchString(data.Phone) {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Email == data.Email || acc.Phone == data.Phone {
			s.log.Warnf("auth: registration conflict for %s", data.Email)
			return nil, ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := domain.Account{
		User: domain.User{
			ID:        uuid.NewString(),
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     data.Email,
			Phone:     data.Phone,
		},
		PasswordHash: string(hash),
	}
	s.accounts = append(s.accounts, acc)
	if err := repository.SaveCollection(s.store, repository.KeyUsers, s.accounts); err != nil {
		s.log.Warnf("auth: persist accounts failed: %v", err)
	}

	s.setCurrentLocked(acc.User)
	s.log.Infof("auth: user %s registered", acc.ID)
	u := acc.User
	return &u, nil
}

// Login ищет запись по email или телефону и сверяет пароль
func (s *AuthService) Login(emailOrPhone, password string) (*domain.User, error) {
	key := strings.ToLower(strings.TrimSpace(emailOrPhone))
	if key == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Email != key && acc.Phone != NormalizePhone(key) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		s.setCurrentLocked(acc.User)
		s.log.Infof("auth: user %s logged in", acc.ID)
		u := acc.User
		return &u, nil
	}
	return nil, ErrInvalidCredentials
}

// Logout сбрасывает текущего пользователя
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := s.store.Remove(repository.KeyUser); err != nil {
		s.log.Warnf("auth: remove current user failed: %v", err)
	}
}

// CurrentUser возвращает авторизованного пользователя или nil
func (s *AuthService) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *AuthService) setCurrentLocked(u domain.User) {
	s.current = &u
	if err := repository.SaveRecord(s.store, repository.KeyUser, u); err != nil {
		s.log.Warnf("auth: persist current user failed: %v", err)
	}
}
