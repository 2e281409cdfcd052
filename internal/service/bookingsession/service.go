package bookingsession

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	confirmationRepo "github.com/m04kA/SkillSlot-BookingService/internal/infra/storage/confirmation"
	sessionRepo "github.com/m04kA/SkillSlot-BookingService/internal/infra/storage/session"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
	resolveAvailability "github.com/m04kA/SkillSlot-BookingService/internal/usecase/resolve_availability"
	"github.com/m04kA/SkillSlot-BookingService/pkg/metrics"
)

const (
	DefaultResolveTimeout     = 10 * time.Second
	DefaultSessionTTL         = 30 * time.Minute
	DefaultConfirmationsLimit = 50
)

// Config параметры сервиса
type Config struct {
	ResolveTimeout time.Duration // Ограничение на один запрос доступности
	SessionTTL     time.Duration // Сессия удаляется после простоя
}

// inflight активное разрешение доступности для сессии
type inflight struct {
	generation uint64
	cancel     context.CancelFunc
}

// Service сервис сессий бронирования
type Service struct {
	sessionRepo      SessionRepository
	confirmationRepo ConfirmationRepository
	resolver         AvailabilityResolver
	metrics          MetricsCollector
	timeProvider     TimeProvider
	logger           Logger
	cfg              Config

	rootCtx    context.Context
	rootCancel context.CancelFunc
	wg         sync.WaitGroup

	mu       sync.Mutex
	inflight map[uuid.UUID]inflight
	closed   bool
}

// NewService создает новый экземпляр сервиса сессий бронирования.
// metrics может быть nil.
func NewService(
	sessionRepo SessionRepository,
	confirmationRepo ConfirmationRepository,
	resolver AvailabilityResolver,
	metricsCollector MetricsCollector,
	cfg Config,
	logger Logger,
) *Service {
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = DefaultResolveTimeout
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	rootCtx, rootCancel := context.WithCancel(context.Background())

	return &Service{
		sessionRepo:      sessionRepo,
		confirmationRepo: confirmationRepo,
		resolver:         resolver,
		metrics:          metricsCollector,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
		cfg:              cfg,
		rootCtx:          rootCtx,
		rootCancel:       rootCancel,
		inflight:         make(map[uuid.UUID]inflight),
	}
}

// GetCalendar строит сетку месяца без сессии. Пустой month означает текущий месяц.
func (s *Service) GetCalendar(_ context.Context, month string) (*models.CalendarResponse, error) {
	now := s.timeProvider.Now()

	m := domain.MonthOf(now)
	if month != "" {
		parsed, err := domain.ParseMonth(month)
		if err != nil {
			return nil, fmt.Errorf("%w: month must be YYYY-MM: %v", ErrInvalidInput, err)
		}
		m = parsed
	}

	calendar := models.FromMonthGrid(domain.BuildMonthGrid(m.First()), now)
	return &calendar, nil
}

// Create открывает сессию бронирования для таланта.
// Требует наличия токена в контексте авторизации.
func (s *Service) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionResponse, error) {
	if !req.Auth.IsAuthenticated() {
		s.logger.Warn("Create: missing session token")
		return nil, ErrUnauthorized
	}

	talentID := strings.TrimSpace(req.TalentID)
	if talentID == "" {
		s.logger.Warn("Create: empty talent id")
		return nil, fmt.Errorf("%w: talentId is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	session := domain.NewBookingSession(uuid.New(), talentID, req.Auth, now)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("Create: failed to store session for talent=%s: %v", talentID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.SessionOpened()
	}

	s.logger.Info("Create: session=%s opened for talent=%s", session.ID, talentID)
	return models.FromDomainSession(session, true, now), nil
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(ctx context.Context, id uuid.UUID, auth domain.SessionContext) (*models.SessionResponse, error) {
	session, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", id, err)
	}

	if err := checkAccess(session, auth); err != nil {
		s.logger.Warn("Get: access denied to session=%s", id)
		return nil, err
	}

	return models.FromDomainSession(session, true, s.timeProvider.Now()), nil
}

// SelectDate выбирает день и запускает асинхронное получение доступности.
// Предыдущий незавершенный запрос отменяется, его результат не будет применен.
func (s *Service) SelectDate(ctx context.Context, id uuid.UUID, auth domain.SessionContext, req *models.SelectDateRequest) (*models.SessionResponse, error) {
	now := s.timeProvider.Now()
	var applied bool

	session, err := s.sessionRepo.Update(ctx, id, func(bs *domain.BookingSession) error {
		if err := checkAccess(bs, auth); err != nil {
			return err
		}

		ticket, ok := bs.SelectDate(req.Day, now)
		if !ok {
			return nil
		}

		// Запуск под блокировкой сессии: порядок регистрации совпадает с порядком поколений
		started := s.startResolution(bs.ID, ticket, &resolveAvailability.Request{
			Session:  bs.Auth,
			TalentID: bs.TalentID,
			Month:    bs.Month,
			Day:      req.Day,
		})
		if !started {
			return ErrShuttingDown
		}
		applied = true
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("SelectDate", id, err)
	}

	if applied {
		s.logger.Info("SelectDate: session=%s date=%s generation=%d",
			id, session.SelectedDate.Format(domain.DateFormat), session.Generation)
	} else {
		s.logger.Info("SelectDate: session=%s day=%d rejected", id, req.Day)
	}

	return models.FromDomainSession(session, applied, now), nil
}

// SelectTime выбирает время; недоступное время не меняет состояние
func (s *Service) SelectTime(ctx context.Context, id uuid.UUID, auth domain.SessionContext, req *models.SelectTimeRequest) (*models.SessionResponse, error) {
	return s.mutate(ctx, "SelectTime", id, auth, func(bs *domain.BookingSession, now time.Time) bool {
		return bs.SelectTime(req.Time, now)
	})
}

// SelectDuration выбирает длительность сессии
func (s *Service) SelectDuration(ctx context.Context, id uuid.UUID, auth domain.SessionContext, req *models.SelectDurationRequest) (*models.SessionResponse, error) {
	return s.mutate(ctx, "SelectDuration", id, auth, func(bs *domain.BookingSession, now time.Time) bool {
		return bs.SelectDuration(req.Duration, now)
	})
}

// ChangeMonth переключает отображаемый месяц
func (s *Service) ChangeMonth(ctx context.Context, id uuid.UUID, auth domain.SessionContext, req *models.ChangeMonthRequest) (*models.SessionResponse, error) {
	if req.Delta != 1 && req.Delta != -1 {
		return nil, fmt.Errorf("%w: delta must be 1 or -1", ErrInvalidInput)
	}

	return s.mutate(ctx, "ChangeMonth", id, auth, func(bs *domain.BookingSession, now time.Time) bool {
		bs.ChangeMonth(req.Delta, now)
		return true
	})
}

// Advance переводит сессию на следующий этап.
// Переход в Completed записывает подтверждение; при ошибке записи этап не меняется.
func (s *Service) Advance(ctx context.Context, id uuid.UUID, auth domain.SessionContext) (*models.SessionResponse, error) {
	now := s.timeProvider.Now()
	var applied bool

	session, err := s.sessionRepo.Update(ctx, id, func(bs *domain.BookingSession) error {
		if err := checkAccess(bs, auth); err != nil {
			return err
		}

		if bs.Stage == domain.StagePaying {
			if err := s.handOff(ctx, bs, now); err != nil {
				return err
			}
		}

		applied = bs.Advance(now)
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("Advance", id, err)
	}

	if applied {
		s.logger.Info("Advance: session=%s stage=%s", id, session.Stage)
		if s.metrics != nil {
			s.metrics.StageEntered(string(session.Stage))
		}
	} else {
		s.logger.Info("Advance: session=%s refused at stage=%s", id, session.Stage)
	}

	return models.FromDomainSession(session, applied, now), nil
}

// Retreat возвращает сессию на предыдущий этап, выбор сохраняется
func (s *Service) Retreat(ctx context.Context, id uuid.UUID, auth domain.SessionContext) (*models.SessionResponse, error) {
	return s.mutate(ctx, "Retreat", id, auth, func(bs *domain.BookingSession, now time.Time) bool {
		return bs.Retreat(now)
	})
}

// Close закрывает сессию и отменяет незавершенный запрос доступности
func (s *Service) Close(ctx context.Context, id uuid.UUID, auth domain.SessionContext) error {
	session, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		return s.mapRepoError("Close", id, err)
	}
	if err := checkAccess(session, auth); err != nil {
		s.logger.Warn("Close: access denied to session=%s", id)
		return err
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Close", id, err)
	}
	s.abandon(id)

	s.logger.Info("Close: session=%s closed", id)
	return nil
}

// GetConfirmation возвращает подтверждение завершенной сессии
func (s *Service) GetConfirmation(ctx context.Context, id uuid.UUID, auth domain.SessionContext) (*models.ConfirmationResponse, error) {
	if !auth.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	confirmation, err := s.confirmationRepo.GetBySessionID(ctx, id)
	if err != nil {
		if errors.Is(err, confirmationRepo.ErrConfirmationNotFound) {
			s.logger.Warn("GetConfirmation: no confirmation for session=%s", id)
			return nil, ErrConfirmationNotFound
		}
		s.logger.Error("GetConfirmation: repository error for session=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetConfirmation - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfirmation(confirmation), nil
}

// ListTalentConfirmations возвращает подтвержденные бронирования таланта
func (s *Service) ListTalentConfirmations(ctx context.Context, talentID string, auth domain.SessionContext) (*models.ConfirmationListResponse, error) {
	if !auth.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(talentID) == "" {
		return nil, fmt.Errorf("%w: talentId is required", ErrInvalidInput)
	}

	list, err := s.confirmationRepo.ListByTalent(ctx, talentID, DefaultConfirmationsLimit)
	if err != nil {
		s.logger.Error("ListTalentConfirmations: repository error for talent=%s: %v", talentID, err)
		return nil, fmt.Errorf("%w: ListTalentConfirmations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfirmationList(list), nil
}

// RunJanitor периодически удаляет простаивающие сессии, пока ctx не отменен
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ExpireSessions(ctx)
		}
	}
}

// ExpireSessions удаляет сессии, простаивающие дольше SessionTTL
func (s *Service) ExpireSessions(ctx context.Context) int {
	before := s.timeProvider.Now().Add(-s.cfg.SessionTTL)
	expired := s.sessionRepo.DeleteExpired(ctx, before)

	for _, id := range expired {
		s.abandon(id)
	}
	if len(expired) > 0 {
		s.logger.Info("ExpireSessions: %d sessions expired", len(expired))
	}
	return len(expired)
}

// Shutdown отменяет все незавершенные запросы и ждет завершения горутин
func (s *Service) Shutdown(ctx context.Context) error {
	// После closed новые горутины не стартуют, wg.Add не пересекается с wg.Wait
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.rootCancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// mutate применяет синхронный переход; отклоненный переход не является ошибкой
func (s *Service) mutate(
	ctx context.Context,
	op string,
	id uuid.UUID,
	auth domain.SessionContext,
	fn func(bs *domain.BookingSession, now time.Time) bool,
) (*models.SessionResponse, error) {
	now := s.timeProvider.Now()
	var applied bool

	session, err := s.sessionRepo.Update(ctx, id, func(bs *domain.BookingSession) error {
		if err := checkAccess(bs, auth); err != nil {
			return err
		}
		applied = fn(bs, now)
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}

	s.logger.Info("%s: session=%s applied=%t", op, id, applied)
	return models.FromDomainSession(session, applied, now), nil
}

// handOff записывает подтверждение при переходе в Completed
func (s *Service) handOff(ctx context.Context, bs *domain.BookingSession, now time.Time) error {
	confirmation := bs.Confirmation(now)
	if confirmation == nil {
		return fmt.Errorf("%w: session %s has incomplete selection at payment stage", ErrInternal, bs.ID)
	}

	_, err := s.confirmationRepo.Create(ctx, confirmation)
	if err != nil && !errors.Is(err, confirmationRepo.ErrAlreadyExists) {
		s.logger.Error("Advance: failed to record confirmation for session=%s: %v", bs.ID, err)
		return fmt.Errorf("%w: failed to record confirmation: %v", ErrInternal, err)
	}

	s.logger.Info("Advance: confirmation recorded for session=%s, talent=%s, date=%s, time=%s",
		bs.ID, bs.TalentID, confirmation.BookingDate.Format(domain.DateFormat), confirmation.StartTime)
	return nil
}

// startResolution отменяет предыдущий запрос сессии и запускает новый.
// Возвращает false, если сервис уже остановлен.
func (s *Service) startResolution(id uuid.UUID, ticket domain.ResolveTicket, req *resolveAvailability.Request) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.inflight[id]; ok {
		prev.cancel()
		delete(s.inflight, id)
	}
	if s.closed {
		return false
	}

	ctx, cancel := context.WithTimeout(s.rootCtx, s.cfg.ResolveTimeout)
	s.inflight[id] = inflight{generation: ticket.Generation, cancel: cancel}

	s.wg.Add(1)
	go s.resolve(ctx, cancel, id, ticket, req)
	return true
}

func (s *Service) resolve(
	ctx context.Context,
	cancel context.CancelFunc,
	id uuid.UUID,
	ticket domain.ResolveTicket,
	req *resolveAvailability.Request,
) {
	defer s.wg.Done()
	defer cancel()

	started := time.Now()
	resp, resolveErr := s.resolver.Execute(ctx, req)
	elapsed := time.Since(started).Seconds()

	var applied bool
	_, err := s.sessionRepo.Update(context.Background(), id, func(bs *domain.BookingSession) error {
		now := s.timeProvider.Now()
		if resolveErr != nil {
			applied = bs.FailAvailability(ticket, now)
		} else {
			applied = bs.ApplyAvailability(ticket, resp.Result, now)
		}
		return nil
	})

	s.finishResolution(id, ticket.Generation)

	switch {
	case err != nil:
		s.logger.Info("resolve: session=%s gone, result dropped", id)
		s.observe(metrics.LookupOutcomeStale, elapsed)
	case !applied:
		s.logger.Info("resolve: session=%s generation=%d superseded, result discarded", id, ticket.Generation)
		s.observe(metrics.LookupOutcomeStale, elapsed)
	case resolveErr != nil:
		s.logger.Warn("resolve: session=%s date=%s lookup failed: %v",
			id, ticket.Date.Format(domain.DateFormat), resolveErr)
		s.observe(metrics.LookupOutcomeFailed, elapsed)
	default:
		s.observe(metrics.LookupOutcomeOK, elapsed)
	}
}

func (s *Service) finishResolution(id uuid.UUID, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.inflight[id]; ok && cur.generation == generation {
		delete(s.inflight, id)
	}
}

// abandon отменяет незавершенный запрос удаленной сессии
func (s *Service) abandon(id uuid.UUID) {
	s.mu.Lock()
	if cur, ok := s.inflight[id]; ok {
		cur.cancel()
		delete(s.inflight, id)
	}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SessionClosed()
	}
}

func (s *Service) observe(outcome string, seconds float64) {
	if s.metrics != nil {
		s.metrics.ObserveLookup(outcome, seconds)
	}
}

func (s *Service) mapRepoError(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		s.logger.Warn("%s: session=%s not found", op, id)
		return ErrSessionNotFound
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrInternal), errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrShuttingDown):
		s.logger.Warn("%s: session=%s: %v", op, id, err)
		return err
	default:
		s.logger.Error("%s: session=%s repository error: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// checkAccess сессия доступна только с тем токеном, с которым была открыта
func checkAccess(bs *domain.BookingSession, auth domain.SessionContext) error {
	if !auth.IsAuthenticated() || bs.Auth.Token != auth.Token {
		return ErrAccessDenied
	}
	return nil
}
