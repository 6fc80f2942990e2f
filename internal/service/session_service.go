package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/unitofwork"
	"techmart-be/pkg/catalog"
	"techmart-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errInvalidSessionToken = errors.New("invalid session token")

type ISessionService interface {
	Resolve(ctx context.Context, token string) (*store.Session, string, error)
	Save(ctx context.Context, session *store.Session) error
	TTL() time.Duration
	IssueToken(sessionId string) (string, error)
	Snapshot(ctx context.Context, session *store.Session) (*dto.SessionResponse, error)
	SetFilters(ctx context.Context, session *store.Session, req *dto.UpdateFiltersRequest) (*dto.FiltersDto, error)
}

type sessionService struct {
	repo       contract.SessionRepository
	uowFactory unitofwork.RepositoryFactory
	secret     []byte
	ttl        time.Duration
	logger     logger.ILogger
}

func NewSessionService(
	repo contract.SessionRepository,
	uowFactory unitofwork.RepositoryFactory,
	secret string,
	ttl time.Duration,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		repo:       repo,
		uowFactory: uowFactory,
		secret:     []byte(secret),
		ttl:        ttl,
		logger:     log,
	}
}

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}

func (s *sessionService) IssueToken(sessionId string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionId,
		"exp": time.Now().Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *sessionService) parseToken(tokenStr string) (string, time.Time, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", time.Time{}, errInvalidSessionToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, errInvalidSessionToken
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", time.Time{}, errInvalidSessionToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", time.Time{}, errInvalidSessionToken
	}
	return sid, exp.Time, nil
}

// Resolve loads the session behind token. Missing, invalid or expired tokens
// start a fresh session; the returned token is non-empty whenever the client
// has to store a new one, which includes refreshing a token past half its life.
func (s *sessionService) Resolve(ctx context.Context, token string) (*store.Session, string, error) {
	if token != "" {
		sid, exp, err := s.parseToken(token)
		if err == nil {
			sess, found, err := s.repo.Get(ctx, sid)
			if err != nil {
				return nil, "", err
			}
			if found {
				if time.Until(exp) > s.ttl/2 {
					return sess, "", nil
				}
				refreshed, err := s.IssueToken(sid)
				if err != nil {
					return nil, "", err
				}
				return sess, refreshed, nil
			}
		}
	}

	sess := store.NewSession(uuid.NewString(), time.Now())
	issued, err := s.IssueToken(sess.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.Debug("SESSION", "Session started", map[string]interface{}{"session_id": sess.ID})
	return sess, issued, nil
}

func (s *sessionService) Save(ctx context.Context, session *store.Session) error {
	if session == nil {
		return nil
	}
	session.LastSeenAt = time.Now()
	return s.repo.Save(ctx, session)
}

// Snapshot reports the header state of the storefront. Reading it consumes
// the flash.
func (s *sessionService) Snapshot(ctx context.Context, session *store.Session) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	flash := session.TakeFlash()
	return &dto.SessionResponse{
		SessionId: session.ID,
		CartCount: session.Cart.Count(),
		CartTotal: session.Cart.Total(priceLookup(indexProducts(products))),
		Filters:   filtersToDto(session.Filters),
		Flash: dto.FlashResponse{
			PurchaseSuccessful: flash.PurchaseSuccessful,
			LastOrderId:        flash.LastOrderId,
			Message:            flash.Message,
		},
	}, nil
}

func (s *sessionService) SetFilters(ctx context.Context, session *store.Session, req *dto.UpdateFiltersRequest) (*dto.FiltersDto, error) {
	filters, err := normalizeFilters(req.Category, req.Search, req.Sort)
	if err != nil {
		return nil, err
	}
	session.Filters = filters
	res := filtersToDto(filters)
	return &res, nil
}

func normalizeFilters(category, search, sortKey string) (store.Filters, error) {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, store.CategoryAll) {
		category = store.CategoryAll
	} else if !entity.Category(category).Valid() {
		return store.Filters{}, fmt.Errorf("%w: %s", entity.ErrInvalidCategory, category)
	}

	sortKey = strings.TrimSpace(sortKey)
	if sortKey == "" {
		sortKey = store.SortByName
	} else if !catalog.ValidSortKey(sortKey) {
		return store.Filters{}, fmt.Errorf("%w: %s", entity.ErrInvalidSortKey, sortKey)
	}

	return store.Filters{Category: category, Search: strings.TrimSpace(search), Sort: sortKey}, nil
}

func filtersToDto(f store.Filters) dto.FiltersDto {
	return dto.FiltersDto{Category: f.Category, Search: f.Search, Sort: f.Sort}
}
